// Package sshserver serves the terminal scanner over SSH, so a tablet or a
// laptop without the binary can scan a session with a plain ssh client:
//
//	ssh -p 2222 -t host <session-id>
package sshserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ui"
	"github.com/renato0307/fieldscan/logging"
)

const shutdownTimeout = 30 * time.Second

// SessionLoader loads a session by id
type SessionLoader interface {
	GetSession(ctx context.Context, id string) (*domain.Session, error)
}

// Config holds the listener settings
type Config struct {
	Addr               string
	AuthorizedKeysPath string
	HostKeyPath        string
}

// Server is the SSH front end of the scanner
type Server struct {
	addr           string
	authorizedKeys string
	runner         ui.ScanRunner
	sessions       SessionLoader
	wishServer     *ssh.Server
}

// NewServer creates the SSH server. The host key is generated on first use.
func NewServer(cfg Config, sessions SessionLoader, runner ui.ScanRunner) (*Server, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create host key directory: %w", err)
	}

	s := &Server{
		addr:           cfg.Addr,
		authorizedKeys: cfg.AuthorizedKeysPath,
		runner:         runner,
		sessions:       sessions,
	}

	// Middleware executes last to first
	wishServer, err := wish.NewServer(
		wish.WithAddress(cfg.Addr),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(s.authenticate),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}
	s.wishServer = wishServer
	return s, nil
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("Starting SSH server", "address", s.addr)
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}
	return nil
}
