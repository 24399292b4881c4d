package domain

import "time"

// Column is an exportable scan result column
type Column string

const (
	ColumnSiteCode     Column = "site_code"
	ColumnPosition     Column = "position"
	ColumnModelID      Column = "model_id"
	ColumnSerialNumber Column = "serial_number"
	ColumnAssetTag     Column = "asset_tag"
	ColumnTimestamp    Column = "timestamp"
	ColumnNotes        Column = "notes"
	ColumnPhotoURL     Column = "photo_url"
)

// Columns returns every column in canonical export order
func Columns() []Column {
	return []Column{
		ColumnSiteCode,
		ColumnPosition,
		ColumnModelID,
		ColumnSerialNumber,
		ColumnAssetTag,
		ColumnTimestamp,
		ColumnNotes,
		ColumnPhotoURL,
	}
}

// Header returns the CSV header of the column, e.g. Model_ID
func (c Column) Header() string {
	switch c {
	case ColumnSiteCode:
		return "Site_Code"
	case ColumnPosition:
		return "Position"
	case ColumnModelID:
		return "Model_ID"
	case ColumnSerialNumber:
		return "Serial_Number"
	case ColumnAssetTag:
		return "Asset_Tag"
	case ColumnTimestamp:
		return "Timestamp"
	case ColumnNotes:
		return "Notes"
	case ColumnPhotoURL:
		return "Photo_URL"
	default:
		return string(c)
	}
}

// SortKey orders exported results
type SortKey string

const (
	SortByModel    SortKey = "model"
	SortByPosition SortKey = "position"
	SortByTime     SortKey = "time"
)

// Date format templates offered for exports
const (
	DateFormatISO      = "yyyy-MM-dd'T'HH:mm:ss'Z'"
	DateFormatStandard = "yyyy-MM-dd HH:mm:ss"
	DateFormatUK       = "dd/MM/yyyy HH:mm"
	DateFormatUS       = "MM/dd/yyyy HH:mm"
	DateFormatDateOnly = "yyyy-MM-dd"
)

// ExportConfig selects the columns, order and date format of an export
type ExportConfig struct {
	Columns    map[Column]bool `json:"columns"`
	DateFormat string          `json:"dateFormat"`
	SortBy     SortKey         `json:"sortBy"`
}

// DefaultExportConfig returns the configuration used when none is chosen
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Columns: map[Column]bool{
			ColumnSiteCode:     true,
			ColumnPosition:     true,
			ColumnModelID:      true,
			ColumnSerialNumber: true,
			ColumnAssetTag:     true,
			ColumnTimestamp:    true,
			ColumnNotes:        false,
			ColumnPhotoURL:     false,
		},
		DateFormat: DateFormatISO,
		SortBy:     SortByPosition,
	}
}

// SelectedColumns returns the enabled columns in canonical order
func (c ExportConfig) SelectedColumns() []Column {
	var cols []Column
	for _, col := range Columns() {
		if c.Columns[col] {
			cols = append(cols, col)
		}
	}
	return cols
}

// ExportTemplate is a named, reusable export configuration
type ExportTemplate struct {
	Config    ExportConfig `json:"config"`
	CreatedAt time.Time    `json:"created_at"`
	ID        string       `json:"id"`
	Name      string       `json:"name"`
}

// ExcelTemplate is an uploaded spreadsheet used as the base of XLSX exports.
// At most one template is active.
type ExcelTemplate struct {
	ConfigMappings map[string]string `json:"config_mappings"`
	FilePath       string            `json:"file_path"`
	FileSize       int64             `json:"file_size"`
	ID             string            `json:"id"`
	IsActive       bool              `json:"is_active"`
	Name           string            `json:"name"`
	UploadDate     time.Time         `json:"upload_date"`
}
