// Package export renders session scan results as CSV, JSON and XLSX.
// Renderers are pure: they never touch the filesystem.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/renato0307/fieldscan/internal/domain"
)

// Format is an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	case "":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// Config selects columns, order and date format
type Config = domain.ExportConfig

// DefaultConfig returns the configuration used when none is chosen
func DefaultConfig() Config {
	return domain.DefaultExportConfig()
}

// SortResults returns a stably sorted copy of results. Position sorts by
// label, model by model id, time by timestamp with unreadable timestamps
// last. Unknown keys keep the stored order.
func SortResults(results []domain.ScanResult, key domain.SortKey) []domain.ScanResult {
	out := slices.Clone(results)
	switch key {
	case domain.SortByPosition:
		slices.SortStableFunc(out, func(a, b domain.ScanResult) int {
			return strings.Compare(a.PositionLabel, b.PositionLabel)
		})
	case domain.SortByModel:
		slices.SortStableFunc(out, func(a, b domain.ScanResult) int {
			return strings.Compare(a.ModelID, b.ModelID)
		})
	case domain.SortByTime:
		slices.SortStableFunc(out, func(a, b domain.ScanResult) int {
			ta, okA := ParseTimestamp(a.Timestamp)
			tb, okB := ParseTimestamp(b.Timestamp)
			switch {
			case okA && okB:
				return ta.Compare(tb)
			case okA:
				return -1
			case okB:
				return 1
			default:
				return 0
			}
		})
	}
	return out
}

// cell returns the value of one column for a result
func cell(session domain.Session, r domain.ScanResult, col domain.Column, dateFormat string) string {
	switch col {
	case domain.ColumnSiteCode:
		return session.SiteCode
	case domain.ColumnPosition:
		return r.PositionLabel
	case domain.ColumnModelID:
		return r.ModelID
	case domain.ColumnSerialNumber:
		return r.SerialNumber
	case domain.ColumnAssetTag:
		return r.AssetTag
	case domain.ColumnTimestamp:
		return FormatTimestamp(r.Timestamp, dateFormat)
	case domain.ColumnNotes:
		return r.Notes
	case domain.ColumnPhotoURL:
		return r.PhotoURL
	default:
		return ""
	}
}

// Table returns the header and rows for the selected columns
func Table(session domain.Session, cfg Config) ([]string, [][]string) {
	cols := cfg.SelectedColumns()
	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.Header()
	}

	results := SortResults(session.ScanResults, cfg.SortBy)
	rows := make([][]string, len(results))
	for i, r := range results {
		row := make([]string, len(cols))
		for j, col := range cols {
			row[j] = cell(session, r, col, cfg.DateFormat)
		}
		rows[i] = row
	}
	return header, rows
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// RenderCSV renders a header line and one line per result. Every cell is
// quoted; lines are joined with \n and there is no trailing newline.
func RenderCSV(session domain.Session, cfg Config) string {
	header, rows := Table(session, cfg)

	lines := make([]string, 0, len(rows)+1)
	for _, row := range append([][]string{header}, rows...) {
		quoted := make([]string, len(row))
		for i, c := range row {
			quoted[i] = quote(c)
		}
		lines = append(lines, strings.Join(quoted, ","))
	}
	return strings.Join(lines, "\n")
}

type sessionInfo struct {
	SiteName       string     `json:"site_name"`
	SiteCode       string     `json:"site_code"`
	ConfigName     string     `json:"config_name"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	TotalPositions int        `json:"total_positions"`
}

// jsonRow fields are in column order; nil fields are not selected
type jsonRow struct {
	SiteCode     *string `json:"site_code,omitempty"`
	Position     *string `json:"position,omitempty"`
	ModelID      *string `json:"model_id,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	AssetTag     *string `json:"asset_tag,omitempty"`
	Timestamp    *string `json:"timestamp,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	PhotoURL     *string `json:"photo_url,omitempty"`
}

type jsonDocument struct {
	SessionInfo sessionInfo `json:"session_info"`
	ScanResults []jsonRow   `json:"scan_results"`
}

func ptr(s string) *string { return &s }

// RenderJSON renders session info and the selected columns of each result,
// indented with two spaces. Notes and photo URL are left out when empty.
func RenderJSON(session domain.Session, cfg Config) (string, error) {
	results := SortResults(session.ScanResults, cfg.SortBy)

	doc := jsonDocument{
		SessionInfo: sessionInfo{
			SiteName:       session.SiteName,
			SiteCode:       session.SiteCode,
			ConfigName:     session.ConfigName,
			StartTime:      session.StartTime,
			EndTime:        session.EndTime,
			TotalPositions: len(results),
		},
		ScanResults: make([]jsonRow, 0, len(results)),
	}

	on := cfg.Columns
	for _, r := range results {
		var row jsonRow
		if on[domain.ColumnSiteCode] {
			row.SiteCode = ptr(session.SiteCode)
		}
		if on[domain.ColumnPosition] {
			row.Position = ptr(r.PositionLabel)
		}
		if on[domain.ColumnModelID] {
			row.ModelID = ptr(r.ModelID)
		}
		if on[domain.ColumnSerialNumber] {
			row.SerialNumber = ptr(r.SerialNumber)
		}
		if on[domain.ColumnAssetTag] {
			row.AssetTag = ptr(r.AssetTag)
		}
		if on[domain.ColumnTimestamp] {
			row.Timestamp = ptr(FormatTimestamp(r.Timestamp, cfg.DateFormat))
		}
		if on[domain.ColumnNotes] && r.Notes != "" {
			row.Notes = ptr(r.Notes)
		}
		if on[domain.ColumnPhotoURL] && r.PhotoURL != "" {
			row.PhotoURL = ptr(r.PhotoURL)
		}
		doc.ScanResults = append(doc.ScanResults, row)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// FileName returns {site_code}_{yyyy-MM-dd}.{ext}
func FileName(siteCode string, format Format, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", siteCode, now.Format("2006-01-02"), format)
}

// ContentType returns the MIME type of a format
func ContentType(format Format) string {
	switch format {
	case FormatJSON:
		return "application/json"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv"
	}
}

// Render renders the session in the given format
func Render(session domain.Session, cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return []byte(RenderCSV(session, cfg)), nil
	case FormatJSON:
		out, err := RenderJSON(session, cfg)
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	case FormatXLSX:
		return RenderXLSX(session, cfg)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
