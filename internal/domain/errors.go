package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrAdminNotConfigured   = errors.New("admin password not set")
	ErrDuplicatePositionID  = errors.New("duplicate position id in layout")
	ErrIncompleteCapture    = errors.New("incomplete capture")
	ErrInvalidPassword      = errors.New("invalid password")
	ErrInvalidSite          = errors.New("invalid site")
	ErrInvalidTransition    = errors.New("invalid session status transition")
	ErrNoConfiguration      = errors.New("site has no usable configuration")
	ErrOffline              = errors.New("store is offline")
	ErrSessionIncomplete    = errors.New("session has incomplete positions")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSiteNotFound         = errors.New("site not found")
	ErrTemplateNotFound     = errors.New("export template not found")
	ErrTransient            = errors.New("transient store error")
	ErrUnknownConfiguration = errors.New("unknown configuration")
	ErrUnknownPosition      = errors.New("position not in session layout")
)

// IncompleteCaptureMessage is shown to the engineer when a save is refused
const IncompleteCaptureMessage = "Please ensure all data fields are valid and a photo is captured for documentation."

// FieldErrors carries per-field validation messages. It matches
// ErrInvalidSite with errors.Is.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e[k]
	}
	return ErrInvalidSite.Error() + ": " + strings.Join(parts, "; ")
}

func (e FieldErrors) Is(target error) bool {
	return target == ErrInvalidSite
}
