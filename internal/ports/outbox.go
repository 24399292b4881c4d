package ports

import (
	"context"
	"time"
)

// OutboxEntry is a session snapshot saved while offline
type OutboxEntry struct {
	CreatedAt time.Time
	ID        string
	Payload   []byte
	Seq       int64
	SessionID string
}

// Outbox queues session updates made while offline, keyed by session id
type Outbox interface {
	Enqueue(ctx context.Context, sessionID string, payload []byte) (*OutboxEntry, error)
	// Pending returns queued entries grouped by session, each group in
	// enqueue order
	Pending(ctx context.Context) (map[string][]OutboxEntry, error)
	// Latest returns the newest queued entry of a session, nil when none
	Latest(ctx context.Context, sessionID string) (*OutboxEntry, error)
	PendingCount(ctx context.Context) (int64, error)
	Remove(ctx context.Context, id string) error
}

// ConnectivityChecker reports whether the store is reachable
type ConnectivityChecker interface {
	Online(ctx context.Context) bool
}
