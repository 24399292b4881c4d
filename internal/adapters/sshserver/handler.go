package sshserver

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ui"
	"github.com/renato0307/fieldscan/logging"
)

func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	logging.Logger.Info("New SSH session",
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	return s.modelFor(sess.Context(), sess.Command()), []tea.ProgramOption{tea.WithAltScreen()}
}

// modelFor builds the scanner screen for the session named by args
func (s *Server) modelFor(ctx context.Context, args []string) tea.Model {
	if len(args) != 1 {
		return errorModel{fmt.Errorf("usage: ssh -t <host> <session-id>")}
	}

	session, err := s.sessions.GetSession(ctx, args[0])
	if err != nil {
		logging.Logger.Warn("SSH session refused", "session", args[0], "error", err)
		return errorModel{err}
	}
	if session.Status != domain.StatusActive {
		return errorModel{fmt.Errorf("session %s is %s, only active sessions can be scanned", session.ID, session.Status)}
	}

	// no sound on remote terminals
	return ui.NewSessionModel(ctx, session, s.runner, nil, false)
}

// errorModel shows an error and quits on the first key
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return e, tea.Quit
	}
	return e, nil
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n\nPress any key to disconnect.\n", e.err)
}
