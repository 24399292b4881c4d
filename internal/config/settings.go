package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/paths"
)

// Defaults applied when a setting is absent
const (
	DefaultAdminSessionHours = 8
	DefaultListRetries       = 3
	DefaultListRetryDelayMs  = 1000
	DefaultMaxLogFiles       = 1000
)

// User is a field engineer registered on this device
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
}

// Settings represents the structure of $FIELDSCAN_HOME/settings.json
type Settings struct {
	AdminAuthExpiry       *time.Time  `json:"admin_auth_expiry,omitempty"`
	AdminPasswordHash     string      `json:"admin_password_hash,omitempty"`
	AdminSessionHours     *int        `json:"admin_session_hours,omitempty"`
	Debug                 *bool       `json:"debug,omitempty"`
	ExportColumns         StringArray `json:"export_columns,omitempty"`
	ExportDir             string      `json:"export_dir,omitempty"`
	FallbackConfiguration string      `json:"fallback_configuration,omitempty"`
	ListRetries           *int        `json:"list_retries,omitempty"`
	ListRetryDelayMs      *int        `json:"list_retry_delay_ms,omitempty"`
	MaxLogFiles           *int        `json:"max_log_files,omitempty"`
	OfflineMode           *bool       `json:"offline_mode,omitempty"`
	OnboardingCompleted   *bool       `json:"onboarding_completed,omitempty"`
	ProbeURL              string      `json:"probe_url,omitempty"`
	Sound                 *bool       `json:"sound,omitempty"`
	Users                 []User      `json:"users,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = ParseList(str)
	return nil
}

// ParseList splits a comma-separated string and trims whitespace
func ParseList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Validate checks values that would otherwise fail late
func (s *Settings) Validate() error {
	if f := s.FallbackConfiguration; f != "" && f != domain.FallbackRandom && !domain.IsKnownConfiguration(f) {
		return fmt.Errorf("fallback_configuration: unknown configuration %q (use %q or one of %s)",
			f, domain.FallbackRandom, strings.Join(domain.ConfigurationNames(), ", "))
	}
	for _, c := range s.ExportColumns {
		if !isColumn(c) {
			return fmt.Errorf("export_columns: unknown column %q", c)
		}
	}
	if s.AdminSessionHours != nil && *s.AdminSessionHours <= 0 {
		return fmt.Errorf("admin_session_hours must be positive")
	}
	if s.ListRetries != nil && *s.ListRetries < 1 {
		return fmt.Errorf("list_retries must be at least 1")
	}
	return nil
}

func isColumn(name string) bool {
	for _, c := range domain.Columns() {
		if string(c) == name {
			return true
		}
	}
	return false
}

// Fallback returns the configuration policy for sites without one
func (s *Settings) Fallback() string {
	if s.FallbackConfiguration == "" {
		return domain.FallbackRandom
	}
	return s.FallbackConfiguration
}

// IsOffline reports whether offline mode is forced
func (s *Settings) IsOffline() bool {
	return s.OfflineMode != nil && *s.OfflineMode
}

// SoundEnabled reports whether scanner sound cues play. Defaults to true.
func (s *Settings) SoundEnabled() bool {
	return s.Sound == nil || *s.Sound
}

// IsOnboarded reports whether first-run setup was completed
func (s *Settings) IsOnboarded() bool {
	return s.OnboardingCompleted != nil && *s.OnboardingCompleted
}

// AdminSession returns how long an admin login stays valid
func (s *Settings) AdminSession() time.Duration {
	hours := DefaultAdminSessionHours
	if s.AdminSessionHours != nil {
		hours = *s.AdminSessionHours
	}
	return time.Duration(hours) * time.Hour
}

// ListRetryPolicy returns the attempts and base delay for listing sessions
func (s *Settings) ListRetryPolicy() (int, time.Duration) {
	attempts, delay := DefaultListRetries, DefaultListRetryDelayMs
	if s.ListRetries != nil {
		attempts = *s.ListRetries
	}
	if s.ListRetryDelayMs != nil {
		delay = *s.ListRetryDelayMs
	}
	return attempts, time.Duration(delay) * time.Millisecond
}

// ExportConfig returns the default export configuration, restricted to
// ExportColumns when set
func (s *Settings) ExportConfig() domain.ExportConfig {
	cfg := domain.DefaultExportConfig()
	if len(s.ExportColumns) == 0 {
		return cfg
	}
	for col := range cfg.Columns {
		cfg.Columns[col] = false
	}
	for _, c := range s.ExportColumns {
		cfg.Columns[domain.Column(c)] = true
	}
	return cfg
}

// ExportPath returns the directory exports are written to
func (s *Settings) ExportPath() string {
	if s.ExportDir != "" {
		return paths.ExpandPath(s.ExportDir)
	}
	return paths.GetExportPath()
}

// LoadSettings loads settings from path. Returns empty Settings if the
// file doesn't exist (not an error).
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to path
func SaveSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
