package domain

import (
	"fmt"
	"time"
)

// SessionStatus is the lifecycle state of a session. States only move
// forward: active, completed, exported.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
	StatusExported  SessionStatus = "exported"
)

func (s SessionStatus) rank() int {
	switch s {
	case StatusActive:
		return 1
	case StatusCompleted:
		return 2
	case StatusExported:
		return 3
	default:
		return 0
	}
}

// Valid reports whether s is a known status
func (s SessionStatus) Valid() bool {
	return s.rank() > 0
}

// CanTransitionTo reports whether the status may move to next
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	return s.Valid() && next.Valid() && next.rank() > s.rank()
}

// Session is one engineer's visit to one site under one configuration
type Session struct {
	Brand        Brand         `json:"brand"`
	ConfigID     string        `json:"config_id"`
	ConfigName   string        `json:"config_name"`
	EndTime      *time.Time    `json:"end_time"`
	ExportedAt   *time.Time    `json:"exported_at"`
	ID           string        `json:"id"`
	LastUpdated  time.Time     `json:"last_updated"`
	Layout       []Position    `json:"layout"`
	ScanResults  []ScanResult  `json:"scan_results"`
	SessionNotes string        `json:"session_notes"`
	SiteCode     string        `json:"site_code"`
	SiteID       string        `json:"site_id"`
	SiteName     string        `json:"site_name"`
	StartTime    time.Time     `json:"start_time"`
	Status       SessionStatus `json:"status"`
}

// Normalize fills in fields older or remote records may lack: nil slices
// become empty, positions without a zone get one derived from their row,
// and an unknown status is treated as active.
func (s *Session) Normalize() {
	if s.Layout == nil {
		s.Layout = []Position{}
	}
	if s.ScanResults == nil {
		s.ScanResults = []ScanResult{}
	}
	for i := range s.Layout {
		p := &s.Layout[i]
		if p.Zone == "" && (p.Row == RowTop || p.Row == RowBottom) {
			p.Zone = GantryZone
		}
		if p.Type == "" && p.Zone != GantryZone && p.Zone != "" {
			p.Type = PositionAdditional
		}
	}
	if !s.Status.Valid() {
		s.Status = StatusActive
	}
}

// Position looks up a layout position by id
func (s Session) Position(id string) (Position, bool) {
	for _, p := range s.Layout {
		if p.ID == id {
			return p, true
		}
	}
	return Position{}, false
}

// ResultFor returns the scan result recorded for a position
func (s Session) ResultFor(positionID string) (ScanResult, bool) {
	for _, r := range s.ScanResults {
		if r.PositionID == positionID {
			return r, true
		}
	}
	return ScanResult{}, false
}

// IsScanned reports whether any result exists for the position
func (s Session) IsScanned(positionID string) bool {
	_, ok := s.ResultFor(positionID)
	return ok
}

// UpsertResult replaces the result for the same position or appends it.
// Returns true when an existing result was replaced.
func (s *Session) UpsertResult(result ScanResult) bool {
	for i := range s.ScanResults {
		if s.ScanResults[i].PositionID == result.PositionID {
			s.ScanResults[i] = result
			return true
		}
	}
	s.ScanResults = append(s.ScanResults, result)
	return false
}

// Progress computes the completion metrics of the session
func (s Session) Progress() Progress {
	return CalculateProgress(s.Layout, s.ScanResults)
}

// Transition moves the session to next, stamping the matching timestamp
func (s *Session) Transition(next SessionStatus, now time.Time) error {
	if !s.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Status, next)
	}
	switch next {
	case StatusCompleted:
		s.EndTime = &now
	case StatusExported:
		if s.EndTime == nil {
			s.EndTime = &now
		}
		s.ExportedAt = &now
	}
	s.Status = next
	s.LastUpdated = now
	return nil
}

// Duration returns the time between start and end, or zero when the
// session has not ended
func (s Session) Duration() time.Duration {
	if s.EndTime == nil {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}
