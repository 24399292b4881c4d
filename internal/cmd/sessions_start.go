package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/fieldscan/internal/services"
	"github.com/renato0307/fieldscan/logging"
)

// SessionsStartCmd starts a session
type SessionsStartCmd struct {
	Configuration string `help:"Configuration id or name; defaults to the site's first" short:"c"`
	Notes         string `help:"Session notes"`
	Site          string `arg:"" help:"Site id or code"`
}

// Run executes the start command
func (s *SessionsStartCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logging.Logger.Debug("Executing sessions start command", "site", s.Site, "configuration", s.Configuration)

	selection, err := cli.Container.SiteService.SelectSite(ctx, s.Site)
	if err != nil {
		return err
	}
	if selection.Fallback {
		fmt.Printf("Site %s has no usable configuration, using %s\n",
			selection.Site.Code, selection.Configurations[0].Name)
	}

	configuration := s.Configuration
	if configuration == "" && selection.Fallback {
		configuration = selection.Configurations[0].Name
	}

	session, err := cli.Container.SessionService.CreateSession(ctx, services.CreateSessionParams{
		Configuration: configuration,
		Notes:         s.Notes,
		SiteID:        selection.Site.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	fmt.Printf("Session %s started at %s (%s), %s, %d positions\n",
		session.ID, session.SiteName, session.SiteCode, session.ConfigName, len(session.Layout))
	fmt.Printf("Scan with: fieldscan scan %s\n", session.ID)
	return nil
}
