package domain

import (
	"strings"
	"time"
)

// CaptureMethod records how the identifiers of a scan were obtained
type CaptureMethod string

const (
	CaptureManual CaptureMethod = "manual"
	CaptureOCR    CaptureMethod = "ocr"
)

// PhotoMethod records how the evidence photo was taken
type PhotoMethod string

const (
	PhotoManual PhotoMethod = "manual"
	PhotoRetake PhotoMethod = "retake"
	PhotoScan   PhotoMethod = "scan"
)

// ScanResult holds the captured identifiers for one position
type ScanResult struct {
	AssetTag        string        `json:"asset_tag"`
	CaptureMethod   CaptureMethod `json:"capture_method"`
	Confidence      int           `json:"confidence"`
	ModelID         string        `json:"model_id"`
	Notes           string        `json:"notes"`
	PhotoCapturedAt *time.Time    `json:"photo_captured_at"`
	PhotoMethod     PhotoMethod   `json:"photo_method"`
	PhotoURL        string        `json:"photo_url"`
	PositionID      string        `json:"position_id"`
	PositionLabel   string        `json:"position_label"`
	SerialNumber    string        `json:"serial_number"`
	Synced          bool          `json:"synced"`
	// Timestamp is kept as received so malformed values survive export
	Timestamp string `json:"timestamp"`
}

// IsComplete reports whether all three identifiers are present
func (r ScanResult) IsComplete() bool {
	return strings.TrimSpace(r.ModelID) != "" &&
		strings.TrimSpace(r.SerialNumber) != "" &&
		strings.TrimSpace(r.AssetTag) != ""
}

// Time parses Timestamp as RFC 3339
func (r ScanResult) Time() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, r.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
