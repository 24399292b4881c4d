package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/renato0307/fieldscan/internal/domain"
)

// SessionsRecordCmd stores the equipment of one position without the
// terminal scanner, from typed values or a simulated scan
type SessionsRecordCmd struct {
	AssetTag     string `help:"Asset tag (6 digits)" name:"asset"`
	ID           string `arg:"" help:"Session id"`
	ModelID      string `help:"Model ID" name:"model"`
	Notes        string `help:"Position notes"`
	Position     string `arg:"" help:"Position id (e.g. ctv-1)"`
	Scan         bool   `help:"Run a simulated scan instead of using typed values"`
	SerialNumber string `help:"Serial number" name:"serial"`
}

// Run executes the record command
func (s *SessionsRecordCmd) Run(cli *CLI) error {
	ctx := context.Background()
	scans := cli.Container.ScanService

	capture, pos, err := scans.NewCapture(ctx, s.ID, s.Position)
	if err != nil {
		return err
	}

	if s.Scan {
		task := scans.StartScan(ctx)
		snapshot := task.Wait()
		if err := task.Err(); err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		capture.ApplySnapshot(snapshot)
	} else {
		values := capture.Values()
		capture.ApplyManual(
			orDefault(s.ModelID, values[domain.FieldModelID]),
			orDefault(s.SerialNumber, values[domain.FieldSerialNumber]),
			orDefault(s.AssetTag, values[domain.FieldAssetTag]),
		)
		capture.TakePhoto(domain.PhotoManual, time.Now())
	}

	update, err := scans.SaveCapture(ctx, s.ID, pos.ID, capture, s.Notes)
	if errors.Is(err, domain.ErrIncompleteCapture) {
		fields := make([]string, 0, len(capture.Errors))
		for field := range capture.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, capture.Errors[field])
		}
		return errors.New(domain.IncompleteCaptureMessage)
	}
	if err != nil {
		return err
	}

	action := "recorded"
	if update.Replaced {
		action = "replaced"
	}
	if update.Queued {
		action += " (offline, queued)"
	}
	p := update.Session.Progress()
	fmt.Printf("%s %s, %d/%d positions scanned\n", pos.Label, action, p.TotalCompleted, p.TotalPositions)
	return nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
