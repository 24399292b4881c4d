package storage

import (
	"time"

	"github.com/renato0307/fieldscan/internal/domain"
)

// SiteModel is the GORM model for sites table
type SiteModel struct {
	Address          string                 `gorm:"not null;default:''"`
	Brand            string                 `gorm:"not null;default:'';check:brand IN ('Coral','Ladbrokes','Betfred','')"`
	Code             string                 `gorm:"not null;uniqueIndex:idx_site_code"`
	Configurations   []domain.Configuration `gorm:"serializer:json"`
	CreatedAt        time.Time
	Documents        []domain.Document `gorm:"serializer:json"`
	ID               string            `gorm:"primaryKey"`
	InstallationDate *time.Time        `gorm:"default:null"`
	LastVisited      *time.Time        `gorm:"default:null"`
	Name             string            `gorm:"not null;default:''"`
	ReferencePhotos  []string          `gorm:"serializer:json"`
	SiteContacts     []domain.Contact  `gorm:"serializer:json"`
	Status           string            `gorm:"not null;default:''"`
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (SiteModel) TableName() string { return "sites" }

// SessionModel is the GORM model for sessions table. Layout and scan
// results are stored whole, as the session is always read and replaced as
// one document.
type SessionModel struct {
	Brand        string `gorm:"not null;default:''"`
	ConfigID     string `gorm:"not null;default:''"`
	ConfigName   string `gorm:"not null;default:''"`
	CreatedAt    time.Time
	EndTime      *time.Time          `gorm:"default:null"`
	ExportedAt   *time.Time          `gorm:"default:null"`
	ID           string              `gorm:"primaryKey"`
	LastUpdated  time.Time           `gorm:"not null;index:idx_last_updated"`
	Layout       []domain.Position   `gorm:"serializer:json"`
	ScanResults  []domain.ScanResult `gorm:"serializer:json"`
	SessionNotes string              `gorm:"not null;default:''"`
	SiteCode     string              `gorm:"not null;default:''"`
	SiteID       string              `gorm:"not null;index:idx_site_id"`
	SiteName     string              `gorm:"not null;default:''"`
	StartTime    time.Time           `gorm:"not null"`
	Status       string              `gorm:"not null;default:'active';index:idx_status;check:status IN ('active','completed','exported')"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// OutboxModel is the GORM model for queued offline session updates
type OutboxModel struct {
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	Payload   []byte `gorm:"not null"`
	Seq       int64  `gorm:"not null;index:idx_outbox_seq"`
	SessionID string `gorm:"not null;index:idx_outbox_session"`
}

// TableName specifies the table name for GORM
func (OutboxModel) TableName() string { return "session_outbox" }

// ExportTemplateModel is the GORM model for named export configurations
type ExportTemplateModel struct {
	Config    domain.ExportConfig `gorm:"serializer:json"`
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex:idx_export_template_name"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ExportTemplateModel) TableName() string { return "export_templates" }

// ExcelTemplateModel is the GORM model for uploaded spreadsheet templates
type ExcelTemplateModel struct {
	ConfigMappings map[string]string `gorm:"serializer:json"`
	CreatedAt      time.Time
	FilePath       string `gorm:"not null"`
	FileSize       int64  `gorm:"not null;default:0"`
	ID             string `gorm:"primaryKey"`
	IsActive       bool   `gorm:"not null;default:false;index:idx_excel_active"`
	Name           string `gorm:"not null;default:''"`
	UpdatedAt      time.Time
	UploadDate     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ExcelTemplateModel) TableName() string { return "excel_templates" }
