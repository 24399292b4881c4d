package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/renato0307/fieldscan/internal/api"
)

// ServeCmd runs the HTTP API
type ServeCmd struct {
	Addr    string   `help:"Listen address" default:":8080" env:"FIELDSCAN_ADDR"`
	Origins []string `help:"Allowed CORS origins (default: any)" env:"FIELDSCAN_CORS_ORIGINS"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(
		cli.Container.SessionService,
		cli.Container.SiteService,
		cli.Container.ExportService,
		cli.Container.SyncService,
	)
	return server.ListenAndServe(ctx, s.Addr, s.Origins)
}
