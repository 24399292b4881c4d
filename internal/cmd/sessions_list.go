package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ports"
)

// SessionsListCmd lists sessions, most recently updated first
type SessionsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of sessions (0 = all)" default:"0"`
	Site   string `help:"Only sessions of this site id"`
	Status string `help:"Only sessions with this status: active, completed or exported"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	status := domain.SessionStatus(s.Status)
	if status != "" && !status.Valid() {
		return fmt.Errorf("unknown status %q", s.Status)
	}

	sessions, err := cli.Container.SessionService.ListSessions(context.Background(), ports.SessionFilter{
		Limit:  s.Limit,
		SiteID: s.Site,
		Status: status,
	})
	if err != nil {
		return err
	}

	if s.Format == "json" {
		return printJSON(sessions)
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tSITE\tCONFIGURATION\tSTATUS\tPROGRESS\tUPDATED")
	for _, session := range sessions {
		p := session.Progress()
		updated := session.LastUpdated
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%s\n",
			session.ID, session.SiteCode, session.ConfigName, session.Status,
			p.TotalCompleted, p.TotalPositions, formatTime(&updated))
	}
	return w.Flush()
}
