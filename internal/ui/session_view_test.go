package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/services"
)

func testSession(t *testing.T) *domain.Session {
	t.Helper()
	cfg, err := domain.GenerateConfiguration(domain.Config5Over1, domain.BrandCoral)
	require.NoError(t, err)
	layout, err := domain.ExpandLayout(cfg)
	require.NoError(t, err)
	return &domain.Session{
		ConfigName:  cfg.Name,
		ID:          "session-1",
		Layout:      layout,
		ScanResults: []domain.ScanResult{},
		SiteCode:    "L1234",
		SiteName:    "Leeds Central",
		Status:      domain.StatusActive,
	}
}

func TestSessionModel_Navigation(t *testing.T) {
	session := testSession(t)
	m := NewSessionModel(context.Background(), session, newRunner(), nil, false)

	m.Update(keyPress("up"))
	assert.Equal(t, 0, m.cursor)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)

	for range len(session.Layout) + 3 {
		m.Update(keyPress("j"))
	}
	assert.Equal(t, len(session.Layout)-1, m.cursor)

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSessionModel_OpensScannerAndAdvancesAfterSave(t *testing.T) {
	session := testSession(t)
	m := NewSessionModel(context.Background(), session, newRunner(), nil, false)

	m.Update(keyPress("enter"))
	require.NotNil(t, m.scanner)
	assert.Equal(t, m.order[0].ID, m.scanner.position.ID)

	saved := *session
	saved.ScanResults = []domain.ScanResult{{
		AssetTag:     "123456",
		ModelID:      "43BDL4550D/00",
		PositionID:   m.order[0].ID,
		SerialNumber: "AU0A1234567890",
	}}
	m.Update(ScannerClosedMsg{Update: &services.ScanUpdate{Queued: true, Session: &saved}})

	assert.Nil(t, m.scanner)
	assert.Equal(t, 1, m.cursor, "moves to the next unscanned position")
	assert.Equal(t, 1, m.Session().Progress().TotalCompleted)
	assert.Contains(t, m.View(), "1 update(s) queued")
}

func TestSessionModel_ViewGroupsZones(t *testing.T) {
	m := NewSessionModel(context.Background(), testSession(t), newRunner(), nil, false)

	view := m.View()
	assert.Contains(t, view, "Gantry")
	assert.Contains(t, view, "Sports Zone")
	assert.Contains(t, view, "Leeds Central (L1234)")
}
