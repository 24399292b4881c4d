package ports

import (
	"context"

	"github.com/renato0307/fieldscan/internal/domain"
)

// SessionFilter narrows session listings
type SessionFilter struct {
	Limit  int
	SiteID string
	Status domain.SessionStatus
}

// SessionReader reads session data
type SessionReader interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, filter SessionFilter) ([]domain.Session, error)
}

// SessionWriter creates and replaces sessions. Update sends the whole
// session, including the full scan_results list.
type SessionWriter interface {
	Create(ctx context.Context, session domain.Session) error
	Update(ctx context.Context, session domain.Session) error
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionWriter
}
