package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ports"
	"github.com/renato0307/fieldscan/internal/scanner"
	"github.com/renato0307/fieldscan/internal/services"
	"github.com/renato0307/fieldscan/internal/theme"
	"github.com/renato0307/fieldscan/logging"
)

// ScanRunner starts simulated scans and stores captures.
// *services.ScanService implements it.
type ScanRunner interface {
	StartScan(ctx context.Context) *scanner.Task
	SaveCapture(ctx context.Context, sessionID, positionID string, capture *scanner.Capture, notes string) (*services.ScanUpdate, error)
}

type scannerState int

const (
	scannerIdle scannerState = iota
	scannerScanning
	scannerManual
	scannerSaving
)

// ScannerModel captures the equipment of one position
type ScannerModel struct {
	capture   *scanner.Capture
	ctx       context.Context
	editing   bool
	err       error
	help      help.Model
	keys      ScannerKeys
	manual    *ManualForm
	notes     string
	now       func() time.Time
	position  domain.Position
	progress  progress.Model
	runner    ScanRunner
	sessionID string
	snapshot  scanner.Snapshot
	sound     ports.SoundPlayer
	spinner   spinner.Model
	state     scannerState
	status    string
	task      *scanner.Task
	width     int
}

// NewScannerModel creates the scanner screen for a position. capture may
// hold an earlier result; nil starts empty.
func NewScannerModel(
	ctx context.Context,
	runner ScanRunner,
	sound ports.SoundPlayer,
	sessionID string,
	position domain.Position,
	capture *scanner.Capture,
	notes string,
) *ScannerModel {
	if capture == nil {
		capture = scanner.NewCapture()
	}
	return &ScannerModel{
		capture:   capture,
		ctx:       ctx,
		help:      help.New(),
		keys:      NewScannerKeys(),
		notes:     notes,
		now:       time.Now,
		position:  position,
		progress:  progress.New(progress.WithGradient(string(theme.ColorProgressStart), string(theme.ColorProgressEnd)), progress.WithWidth(40)),
		runner:    runner,
		sessionID: sessionID,
		sound:     sound,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.SpinnerStyle)),
		state:     scannerIdle,
	}
}

// Capture returns the capture being edited
func (m *ScannerModel) Capture() *scanner.Capture {
	return m.capture
}

func (m *ScannerModel) Init() tea.Cmd {
	return nil
}

func (m *ScannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case scanUpdateMsg:
		if msg.task != m.task {
			return m, nil
		}
		m.snapshot = msg.snapshot
		return m, waitForSnapshot(msg.task)

	case scanFinishedMsg:
		return m, m.handleScanFinished(msg)

	case scanSavedMsg:
		return m, m.handleSaved(msg)

	case spinner.TickMsg:
		if m.state != scannerScanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.state == scannerManual {
		return m, m.updateManual(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m, m.handleKey(keyMsg)
}

func (m *ScannerModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.state == scannerSaving {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.cancelScan()
		return func() tea.Msg { return ScannerClosedMsg{} }

	case key.Matches(msg, m.keys.Scan):
		return m.startScan()

	case key.Matches(msg, m.keys.Manual):
		return m.openForm(NewManualForm, false)

	case key.Matches(msg, m.keys.Edit):
		if m.state == scannerScanning {
			return nil
		}
		return m.openForm(NewEditForm, true)

	case key.Matches(msg, m.keys.Photo):
		if m.state == scannerScanning {
			return nil
		}
		method := domain.PhotoManual
		if m.capture.Photo != nil {
			method = domain.PhotoRetake
		}
		m.capture.TakePhoto(method, m.now())
		m.status = "Photo captured"
		return nil

	case key.Matches(msg, m.keys.Save):
		return m.save()
	}
	return nil
}

func (m *ScannerModel) openForm(newForm func(ManualEntry) *ManualForm, editing bool) tea.Cmd {
	m.cancelScan()
	values := m.capture.Values()
	m.manual = newForm(ManualEntry{
		AssetTag:     values[domain.FieldAssetTag],
		ModelID:      values[domain.FieldModelID],
		Notes:        m.notes,
		SerialNumber: values[domain.FieldSerialNumber],
	})
	m.editing = editing
	m.state = scannerManual
	m.err = nil
	return m.manual.Init()
}

func (m *ScannerModel) startScan() tea.Cmd {
	if m.state == scannerScanning {
		return nil
	}
	m.capture = scanner.NewCapture()
	m.task = m.runner.StartScan(m.ctx)
	m.snapshot = m.task.Snapshot()
	m.state = scannerScanning
	m.err = nil
	m.status = ""
	logging.Logger.Debug("Scan started", "position", m.position.ID)
	return tea.Batch(waitForSnapshot(m.task), m.spinner.Tick)
}

func (m *ScannerModel) cancelScan() {
	if m.task != nil && m.state == scannerScanning {
		m.task.Cancel()
		m.state = scannerIdle
	}
	m.task = nil
}

func (m *ScannerModel) handleScanFinished(msg scanFinishedMsg) tea.Cmd {
	if msg.task != m.task {
		return nil
	}
	m.task = nil
	m.state = scannerIdle
	m.snapshot = msg.snapshot

	if msg.err != nil {
		m.status = "Scan cancelled"
		return nil
	}

	m.capture.ApplySnapshot(msg.snapshot)
	m.status = "Scan complete"
	m.play(ports.SoundScanComplete)
	return nil
}

func (m *ScannerModel) updateManual(msg tea.Msg) tea.Cmd {
	_, cmd := m.manual.Update(msg)
	if !m.manual.Completed {
		return cmd
	}

	entry, ok := m.manual.Result()
	m.manual = nil
	m.state = scannerIdle
	if !ok {
		return nil
	}
	if m.editing {
		m.applyEdits(entry)
		return nil
	}

	m.capture.ApplyManual(entry.ModelID, entry.SerialNumber, entry.AssetTag)
	m.notes = entry.Notes
	m.status = "Values entered, take a photo to document them"
	return nil
}

// applyEdits corrects captured values in place. The photo is kept.
func (m *ScannerModel) applyEdits(entry ManualEntry) {
	values := m.capture.Values()
	edits := map[string]string{
		domain.FieldAssetTag:     entry.AssetTag,
		domain.FieldModelID:      entry.ModelID,
		domain.FieldSerialNumber: entry.SerialNumber,
	}
	for field, value := range edits {
		if value == values[field] {
			continue
		}
		if err := m.capture.Edit(field, value); err != nil {
			logging.Logger.Debug("Failed to edit field", "field", field, "error", err)
		}
	}
	m.notes = entry.Notes
	m.status = "Values edited"
}

func (m *ScannerModel) save() tea.Cmd {
	if m.state == scannerScanning {
		return nil
	}
	if err := m.capture.CheckReady(); err != nil {
		m.err = errors.New(domain.IncompleteCaptureMessage)
		m.play(ports.SoundRefused)
		return nil
	}

	m.state = scannerSaving
	ctx, runner, sessionID, positionID := m.ctx, m.runner, m.sessionID, m.position.ID
	capture, notes := m.capture, m.notes
	return func() tea.Msg {
		update, err := runner.SaveCapture(ctx, sessionID, positionID, capture, notes)
		return scanSavedMsg{err: err, update: update}
	}
}

func (m *ScannerModel) handleSaved(msg scanSavedMsg) tea.Cmd {
	m.state = scannerIdle
	if msg.err != nil {
		logging.Logger.Error("Failed to save scan", "position", m.position.ID, "error", msg.err)
		m.err = msg.err
		m.play(ports.SoundRefused)
		return nil
	}
	m.play(ports.SoundSaved)
	update := msg.update
	return func() tea.Msg { return ScannerClosedMsg{Update: update} }
}

func (m *ScannerModel) play(event string) {
	if m.sound == nil {
		return
	}
	if err := m.sound.PlaySoundForEvent(event); err != nil {
		logging.Logger.Debug("Failed to play sound", "event", event, "error", err)
	}
}

func (m *ScannerModel) View() string {
	var b strings.Builder
	b.WriteString(renderHeader(false, m.position.Label))
	b.WriteString("\n")

	if m.state == scannerManual && m.manual != nil {
		b.WriteString(m.manual.View())
		return b.String()
	}

	b.WriteString(m.renderPhase())
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.snapshot.Progress / 100))
	b.WriteString("\n\n")

	fields := m.capture.Fields
	if m.state == scannerScanning {
		fields = m.snapshot.Fields
	}
	b.WriteString(m.renderField("Model ID", domain.FieldModelID, fields.ModelID))
	b.WriteString(m.renderField("Serial Number", domain.FieldSerialNumber, fields.SerialNumber))
	b.WriteString(m.renderField("Asset Tag", domain.FieldAssetTag, fields.AssetTag))

	b.WriteString("\n")
	b.WriteString(theme.LabelStyle.Render("Photo"))
	if m.capture.Photo != nil {
		b.WriteString(theme.CapturedStyle.Render("✓ " + string(m.capture.Photo.Method)))
	} else {
		b.WriteString(theme.IdleStyle.Render("none"))
	}
	b.WriteString("\n")

	if m.notes != "" {
		b.WriteString(theme.LabelStyle.Render("Notes"))
		b.WriteString(theme.NormalStyle.Render(m.notes))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.err, m.errorWidth())))
	case m.state == scannerSaving:
		b.WriteString(theme.NormalStyle.Render("Saving..."))
	case m.status != "":
		b.WriteString(theme.SuccessStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *ScannerModel) errorWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 80
}

func (m *ScannerModel) renderPhase() string {
	switch m.state {
	case scannerScanning:
		return m.spinner.View() + " " + theme.ScanningStyle.Render(phaseText(m.snapshot.Phase))
	default:
		if m.capture.ReadyToSave() {
			return theme.CapturedStyle.Render("Ready to save")
		}
		return theme.IdleStyle.Render("Press s to scan or m to enter values")
	}
}

func phaseText(p scanner.Phase) string {
	switch p {
	case scanner.PhaseInitializing:
		return "Initializing camera..."
	case scanner.PhaseDetecting:
		return "Detecting labels..."
	case scanner.PhaseCompleted:
		return "Completed"
	default:
		return "Idle"
	}
}

func (m *ScannerModel) renderField(label, name string, f scanner.FieldState) string {
	var value string
	switch f.Status {
	case scanner.FieldCaptured:
		value = theme.CapturedStyle.Render(f.Value)
		if f.Confidence > 0 && f.Confidence < 100 {
			value += theme.IdleStyle.Render(fmt.Sprintf(" (%.0f%%)", f.Confidence))
		}
	case scanner.FieldScanning:
		value = theme.ScanningStyle.Render("reading...")
	default:
		value = theme.IdleStyle.Render("-")
	}

	line := theme.LabelStyle.Render(label) + value
	if msg := m.capture.Errors[name]; msg != "" && m.state != scannerScanning {
		line += "  " + theme.ErrorStyle.Render(msg)
	}
	return line + "\n"
}
