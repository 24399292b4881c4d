package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ports"
	"github.com/renato0307/fieldscan/internal/scanner"
	"github.com/renato0307/fieldscan/internal/theme"
)

// zoneTitles are the display names of position zones
var zoneTitles = map[string]string{
	domain.GantryZone:         "Gantry",
	domain.ZoneCounterArea:    "Counter Area",
	domain.ZoneFOBTZone:       "FOBT Zone",
	domain.ZoneOffGantry:      "Off Gantry",
	domain.ZoneOppositeGantry: "Opposite Gantry",
	domain.ZoneSportsZone:     "Sports Zone",
}

func zoneTitle(zone string) string {
	if t, ok := zoneTitles[zone]; ok {
		return t
	}
	return zone
}

// SessionModel lists the positions of a session and opens the scanner for
// the selected one
type SessionModel struct {
	ctx      context.Context
	cursor   int
	devMode  bool
	help     help.Model
	keys     ListKeys
	order    []domain.Position
	progress progress.Model
	queued   int
	runner   ScanRunner
	scanner  *ScannerModel
	session  *domain.Session
	sound    ports.SoundPlayer
	width    int
}

// NewSessionModel creates the session screen
func NewSessionModel(ctx context.Context, session *domain.Session, runner ScanRunner, sound ports.SoundPlayer, devMode bool) *SessionModel {
	m := &SessionModel{
		ctx:      ctx,
		devMode:  devMode,
		help:     help.New(),
		keys:     NewListKeys(),
		progress: progress.New(progress.WithGradient(string(theme.ColorProgressStart), string(theme.ColorProgressEnd)), progress.WithWidth(40)),
		runner:   runner,
		session:  session,
		sound:    sound,
	}
	m.order = orderedPositions(session.Layout)
	return m
}

// orderedPositions groups the layout by zone, keeping layout order
func orderedPositions(layout []domain.Position) []domain.Position {
	zones, byZone := domain.PositionsByZone(layout)
	out := make([]domain.Position, 0, len(layout))
	for _, z := range zones {
		out = append(out, byZone[z]...)
	}
	return out
}

// Session returns the session as last saved
func (m *SessionModel) Session() *domain.Session {
	return m.session
}

func (m *SessionModel) Init() tea.Cmd {
	return nil
}

func (m *SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.help.Width = size.Width
	}

	if closed, ok := msg.(ScannerClosedMsg); ok {
		m.scanner = nil
		if closed.Update != nil {
			m.session = closed.Update.Session
			if closed.Update.Queued {
				m.queued++
			}
			m.advance()
		}
		return m, nil
	}

	if m.scanner != nil {
		_, cmd := m.scanner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.order)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Open):
		return m, m.openScanner()
	}
	return m, nil
}

func (m *SessionModel) openScanner() tea.Cmd {
	if len(m.order) == 0 {
		return nil
	}
	pos := m.order[m.cursor]

	var capture *scanner.Capture
	notes := ""
	if prev, ok := m.session.ResultFor(pos.ID); ok {
		capture = scanner.FromResult(prev)
		notes = prev.Notes
	}

	m.scanner = NewScannerModel(m.ctx, m.runner, m.sound, m.session.ID, pos, capture, notes)
	if m.width > 0 {
		m.scanner.Update(tea.WindowSizeMsg{Width: m.width})
	}
	return m.scanner.Init()
}

// advance moves the cursor to the next position without a complete result
func (m *SessionModel) advance() {
	for i := 1; i <= len(m.order); i++ {
		next := (m.cursor + i) % len(m.order)
		if r, ok := m.session.ResultFor(m.order[next].ID); !ok || !r.IsComplete() {
			m.cursor = next
			return
		}
	}
}

func (m *SessionModel) View() string {
	if m.scanner != nil {
		return m.scanner.View()
	}

	p := m.session.Progress()

	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, fmt.Sprintf("%s (%s) - %s", m.session.SiteName, m.session.SiteCode, m.session.ConfigName)))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(p.TotalPercentage / 100))
	b.WriteString(theme.NormalStyle.Render(fmt.Sprintf("  %d/%d positions", p.TotalCompleted, p.TotalPositions)))
	b.WriteString("\n")
	b.WriteString(theme.LabelStyle.Render("Gantry"))
	b.WriteString(fmt.Sprintf("%d/%d   ", p.GantryCompleted, p.GantryTotal))
	b.WriteString(theme.LabelStyle.Render("Additional"))
	b.WriteString(fmt.Sprintf("%d/%d", p.AdditionalCompleted, p.AdditionalTotal))
	b.WriteString("\n")
	if m.queued > 0 {
		b.WriteString(theme.WarningStyle.Render(fmt.Sprintf("Offline: %d update(s) queued", m.queued)))
		b.WriteString("\n")
	}

	zone := ""
	for i, pos := range m.order {
		if pos.Zone != zone {
			zone = pos.Zone
			b.WriteString(theme.ZoneHeaderStyle.Render(zoneTitle(zone)))
			b.WriteString("\n")
		}
		b.WriteString(m.renderPosition(i, pos))
		b.WriteString("\n")
	}

	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *SessionModel) renderPosition(i int, pos domain.Position) string {
	mark := "○"
	style := theme.PositionPendingStyle
	if r, ok := m.session.ResultFor(pos.ID); ok && r.IsComplete() {
		mark = "✓"
		style = theme.PositionDoneStyle
	}
	line := fmt.Sprintf(" %s %s", mark, pos.Label)
	if i == m.cursor {
		return theme.PositionSelectedStyle.Render(line)
	}
	return style.Render(line)
}
