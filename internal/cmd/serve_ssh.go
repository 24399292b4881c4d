package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/renato0307/fieldscan/internal/adapters/sshserver"
	"github.com/renato0307/fieldscan/paths"
)

// ServeSSHCmd serves the terminal scanner over SSH
type ServeSSHCmd struct {
	Addr           string `help:"Listen address" default:":2222" env:"FIELDSCAN_SSH_ADDR"`
	AuthorizedKeys string `help:"authorized_keys file listing the allowed client keys" default:"~/.ssh/authorized_keys"`
}

// Run executes the serve-ssh command
func (s *ServeSSHCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, err := sshserver.NewServer(sshserver.Config{
		Addr:               s.Addr,
		AuthorizedKeysPath: paths.ExpandPath(s.AuthorizedKeys),
		HostKeyPath:        filepath.Join(paths.GetHome(), "ssh", "id_ed25519"),
	}, cli.Container.SessionService, cli.Container.ScanService)
	if err != nil {
		return err
	}

	fmt.Printf("SSH scanner listening on %s, connect with: ssh -t -p <port> <host> <session-id>\n", s.Addr)
	return server.ListenAndServe(ctx)
}
