package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ports"
	"github.com/renato0307/fieldscan/internal/ui"
	"github.com/renato0307/fieldscan/logging"
)

// ScanCmd opens the terminal scanner
type ScanCmd struct {
	Dev     bool   `help:"Enable development mode (shows version info in the header)"`
	ID      string `arg:"" help:"Session id"`
	NoSound bool   `help:"Disable sound cues"`
}

// Run executes the TUI
func (s *ScanCmd) Run(cli *CLI) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session, err := cli.Container.SessionService.GetSession(ctx, s.ID)
	if err != nil {
		return err
	}
	if session.Status != domain.StatusActive {
		return fmt.Errorf("session %s is %s, only active sessions can be scanned", session.ID, session.Status)
	}

	var sound ports.SoundPlayer = cli.Container.SoundPlayer
	if s.NoSound {
		sound = nil
	}

	logging.Logger.Info("Starting scanner TUI", "session", session.ID)
	model := ui.NewSessionModel(ctx, session, cli.Container.ScanService, sound, s.Dev)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	final := model.Session()
	progress := final.Progress()
	fmt.Printf("%s (%s): %d/%d positions scanned\n",
		final.SiteName, final.SiteCode, progress.TotalCompleted, progress.TotalPositions)

	pending, err := cli.Container.SyncService.PendingCount(ctx)
	if err == nil && pending > 0 {
		fmt.Printf("%d update(s) queued offline, run 'fieldscan sync' when back online\n", pending)
	}
	if progress.IsComplete() {
		fmt.Printf("All positions scanned, complete with: fieldscan sessions complete %s\n", final.ID)
	}
	return nil
}
