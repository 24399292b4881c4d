package ports

import (
	"context"
	"time"

	"github.com/renato0307/fieldscan/internal/domain"
)

// SiteReader reads sites
type SiteReader interface {
	GetSite(ctx context.Context, id string) (*domain.Site, error)
	GetSiteByCode(ctx context.Context, code string) (*domain.Site, error)
	ListSites(ctx context.Context) ([]domain.Site, error)
}

// SiteWriter stores sites
type SiteWriter interface {
	SaveSite(ctx context.Context, site domain.Site) error
	TouchSite(ctx context.Context, id string, visitedAt time.Time) error
}

// SiteRepository is the composite interface
type SiteRepository interface {
	SiteReader
	SiteWriter
}
