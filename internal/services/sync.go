package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ports"
	"github.com/renato0307/fieldscan/logging"
)

// maxConcurrentReplays bounds how many sessions replay at once
const maxConcurrentReplays = 4

// SyncService replays session updates queued while offline
type SyncService struct {
	connectivity ports.ConnectivityChecker
	outbox       ports.Outbox
	sessionRepo  ports.SessionRepository
}

// NewSyncService creates a new SyncService
func NewSyncService(
	sessionRepo ports.SessionRepository,
	outbox ports.Outbox,
	connectivity ports.ConnectivityChecker,
) *SyncService {
	return &SyncService{
		connectivity: connectivity,
		outbox:       outbox,
		sessionRepo:  sessionRepo,
	}
}

// PendingCount returns the number of queued updates
func (s *SyncService) PendingCount(ctx context.Context) (int64, error) {
	return s.outbox.PendingCount(ctx)
}

// Replay applies queued snapshots. Sessions are replayed concurrently;
// the entries of one session are applied strictly in order. Each snapshot
// carries every scan queued before it, so the latest one wins. Each applied entry is removed from the outbox, so a failed
// replay can be resumed. Returns domain.ErrOffline when still offline.
func (s *SyncService) Replay(ctx context.Context) (ReplayResult, error) {
	if !s.connectivity.Online(ctx) {
		count, _ := s.outbox.PendingCount(ctx)
		return ReplayResult{Pending: count}, domain.ErrOffline
	}

	pending, err := s.outbox.Pending(ctx)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("failed to read outbox: %w", err)
	}
	if len(pending) == 0 {
		return ReplayResult{}, nil
	}

	logging.Logger.Info("Replaying queued session updates", "sessions", len(pending))

	var applied atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReplays)

	for sessionID, entries := range pending {
		g.Go(func() error {
			for _, entry := range entries {
				if err := s.apply(gctx, entry); err != nil {
					logging.Logger.Error("Replay failed",
						"session", sessionID,
						"seq", entry.Seq,
						"error", err)
					return fmt.Errorf("session %s seq %d: %w", sessionID, entry.Seq, err)
				}
				applied.Add(1)
			}
			return nil
		})
	}

	waitErr := g.Wait()

	result := ReplayResult{Applied: int(applied.Load())}
	if count, err := s.outbox.PendingCount(ctx); err == nil {
		result.Pending = count
	}
	if waitErr != nil {
		return result, fmt.Errorf("failed to replay outbox: %w", waitErr)
	}

	logging.Logger.Info("Replay finished", "applied", result.Applied, "pending", result.Pending)
	return result, nil
}

func (s *SyncService) apply(ctx context.Context, entry ports.OutboxEntry) error {
	snapshot, err := decodeSnapshot(entry.Payload)
	if err != nil {
		return err
	}
	for i := range snapshot.ScanResults {
		snapshot.ScanResults[i].Synced = true
	}

	stored, err := s.sessionRepo.Get(ctx, snapshot.ID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		err = s.sessionRepo.Create(ctx, snapshot)
	case err == nil:
		mergeSnapshot(stored, snapshot)
		err = s.sessionRepo.Update(ctx, *stored)
	}
	if err != nil {
		return err
	}

	return s.outbox.Remove(ctx, entry.ID)
}

func decodeSnapshot(payload []byte) (domain.Session, error) {
	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return domain.Session{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	session.Normalize()
	return session, nil
}

// mergeSnapshot takes the scan results of a queued snapshot. Status and
// notes stay as stored, they are never queued.
func mergeSnapshot(stored *domain.Session, snapshot domain.Session) {
	stored.ScanResults = snapshot.ScanResults
	if snapshot.LastUpdated.After(stored.LastUpdated) {
		stored.LastUpdated = snapshot.LastUpdated
	}
}
