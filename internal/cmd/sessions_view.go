package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/fieldscan/internal/domain"
)

// SessionsViewCmd shows one session
type SessionsViewCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"Session id"`
}

// Run executes the view command
func (s *SessionsViewCmd) Run(cli *CLI) error {
	session, err := cli.Container.SessionService.GetSession(context.Background(), s.ID)
	if err != nil {
		return err
	}
	if s.Format == "json" {
		return printJSON(session)
	}

	p := session.Progress()
	w := newTable()
	fmt.Fprintf(w, "Session:\t%s\n", session.ID)
	fmt.Fprintf(w, "Site:\t%s (%s)\n", session.SiteName, session.SiteCode)
	fmt.Fprintf(w, "Configuration:\t%s\n", session.ConfigName)
	fmt.Fprintf(w, "Status:\t%s\n", session.Status)
	fmt.Fprintf(w, "Started:\t%s\n", formatTime(&session.StartTime))
	fmt.Fprintf(w, "Ended:\t%s\n", formatTime(session.EndTime))
	fmt.Fprintf(w, "Progress:\t%d/%d (%.0f%%)\n", p.TotalCompleted, p.TotalPositions, p.TotalPercentage)
	if session.SessionNotes != "" {
		fmt.Fprintf(w, "Notes:\t%s\n", session.SessionNotes)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	w = newTable()
	fmt.Fprintln(w, "POSITION\tMODEL ID\tSERIAL NUMBER\tASSET TAG\tMETHOD")
	for _, pos := range session.Layout {
		r, ok := session.ResultFor(pos.ID)
		if !ok {
			fmt.Fprintf(w, "%s\t-\t-\t-\t-\n", pos.Label)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", pos.Label, dash(r.ModelID), dash(r.SerialNumber), dash(r.AssetTag), r.CaptureMethod)
	}
	return w.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// SessionsProgressCmd shows progress counts
type SessionsProgressCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"Session id"`
}

// Run executes the progress command
func (s *SessionsProgressCmd) Run(cli *CLI) error {
	p, err := cli.Container.SessionService.GetProgress(context.Background(), s.ID)
	if err != nil {
		return err
	}
	if s.Format == "json" {
		return printJSON(p)
	}
	printProgress(p)
	return nil
}

func printProgress(p domain.Progress) {
	w := newTable()
	fmt.Fprintf(w, "Gantry:\t%d/%d\t%.0f%%\n", p.GantryCompleted, p.GantryTotal, p.GantryPercentage)
	fmt.Fprintf(w, "Additional:\t%d/%d\t%.0f%%\n", p.AdditionalCompleted, p.AdditionalTotal, p.AdditionalPercentage)
	fmt.Fprintf(w, "Total:\t%d/%d\t%.0f%%\n", p.TotalCompleted, p.TotalPositions, p.TotalPercentage)
	w.Flush()
}

// SessionsCompleteCmd marks a session completed
type SessionsCompleteCmd struct {
	Force bool   `help:"Complete even when positions are still missing" short:"f"`
	ID    string `arg:"" help:"Session id"`
}

// Run executes the complete command
func (s *SessionsCompleteCmd) Run(cli *CLI) error {
	session, err := cli.Container.SessionService.CompleteSession(context.Background(), s.ID, s.Force)
	if err != nil {
		return err
	}
	fmt.Printf("Session %s completed in %s\n", session.ID, session.Duration().Round(time.Second))
	return nil
}

// SessionsNotesCmd replaces the session notes
type SessionsNotesCmd struct {
	ID    string `arg:"" help:"Session id"`
	Notes string `arg:"" help:"New notes (empty clears)" optional:""`
}

// Run executes the notes command
func (s *SessionsNotesCmd) Run(cli *CLI) error {
	if _, err := cli.Container.SessionService.UpdateNotes(context.Background(), s.ID, s.Notes); err != nil {
		return err
	}
	fmt.Printf("Notes updated for session %s\n", s.ID)
	return nil
}
