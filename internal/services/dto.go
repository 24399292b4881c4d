package services

import (
	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/export"
)

// CreateSessionParams contains parameters for starting a session
type CreateSessionParams struct {
	// Configuration selects by id or name; empty picks the site's first
	Configuration string
	Notes         string
	SiteID        string
}

// ScanUpdate is the outcome of saving a scan result
type ScanUpdate struct {
	Queued   bool
	Replaced bool
	Session  *domain.Session
}

// ReplayResult summarises an outbox replay
type ReplayResult struct {
	Applied int
	Pending int64
}

// SiteSelection is a site together with the configurations offered for it
type SiteSelection struct {
	Configurations []domain.Configuration
	Fallback       bool
	Site           *domain.Site
}

// ImportResult summarises a site import
type ImportResult struct {
	Imported int
	Skipped  map[string]string
}

// ExportParams contains parameters for exporting a session
type ExportParams struct {
	Config       *domain.ExportConfig
	Format       export.Format
	MarkExported bool
	OutDir       string
	SessionID    string
	// TemplateName loads a saved export template; ignored when Config is set
	TemplateName string
	// UseExcelTemplate fills the active spreadsheet template for xlsx
	UseExcelTemplate bool
}

// ExportResult is a rendered export
type ExportResult struct {
	Data     []byte
	FileName string
	Path     string
	Session  *domain.Session
}
