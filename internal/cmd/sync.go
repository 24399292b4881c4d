package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/fieldscan/internal/domain"
)

// SyncCmd replays the offline outbox
type SyncCmd struct {
	Status bool `help:"Only show how many updates are queued"`
}

// Run executes the sync command
func (s *SyncCmd) Run(cli *CLI) error {
	ctx := context.Background()

	if s.Status {
		pending, err := cli.Container.SyncService.PendingCount(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%d update(s) queued\n", pending)
		return nil
	}

	result, err := cli.Container.SyncService.Replay(ctx)
	if errors.Is(err, domain.ErrOffline) {
		fmt.Printf("Still offline, %d update(s) remain queued\n", result.Pending)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Applied %d queued update(s), %d remaining\n", result.Applied, result.Pending)
	return nil
}
