package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/fieldscan/internal/scanner"
	"github.com/renato0307/fieldscan/internal/services"
)

// scanUpdateMsg carries an intermediate simulator snapshot
type scanUpdateMsg struct {
	snapshot scanner.Snapshot
	task     *scanner.Task
}

// scanFinishedMsg is sent once the simulator task has ended
type scanFinishedMsg struct {
	err      error
	snapshot scanner.Snapshot
	task     *scanner.Task
}

// scanSavedMsg reports the outcome of saving a capture
type scanSavedMsg struct {
	err    error
	update *services.ScanUpdate
}

// ScannerClosedMsg tells the parent the scanner screen was left. Update is
// set when a result was saved.
type ScannerClosedMsg struct {
	Update *services.ScanUpdate
}

// waitForSnapshot reads the next snapshot of a running task
func waitForSnapshot(task *scanner.Task) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-task.Updates()
		if !ok {
			<-task.Done()
			return scanFinishedMsg{err: task.Err(), snapshot: task.Snapshot(), task: task}
		}
		return scanUpdateMsg{snapshot: snap, task: task}
	}
}
