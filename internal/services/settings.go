package services

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/renato0307/fieldscan/internal/config"
	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/logging"
)

// SettingsService updates device settings and writes them back to disk
type SettingsService struct {
	settings     *config.Settings
	settingsPath string
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settings *config.Settings, settingsPath string) *SettingsService {
	return &SettingsService{
		settings:     settings,
		settingsPath: settingsPath,
	}
}

// Settings returns the loaded settings
func (s *SettingsService) Settings() *config.Settings {
	return s.settings
}

func (s *SettingsService) save() error {
	if err := s.settings.Validate(); err != nil {
		return err
	}
	if err := config.SaveSettings(s.settingsPath, s.settings); err != nil {
		logging.Logger.Error("Failed to save settings", "error", err)
		return err
	}
	return nil
}

// AddUser registers a field engineer. The email must be unique.
func (s *SettingsService) AddUser(name, email, role string) (*config.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, fmt.Errorf("user name is required")
	}
	if msg := domain.ValidateEmail(email); msg != "" {
		return nil, fmt.Errorf("%s", msg)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}
	for _, u := range s.settings.Users {
		if strings.EqualFold(u.Email, email) {
			return nil, fmt.Errorf("user %s already exists", email)
		}
	}

	user := config.User{Email: email, Name: name, Role: role}
	s.settings.Users = append(s.settings.Users, user)
	if err := s.save(); err != nil {
		return nil, err
	}
	logging.Logger.Info("User added", "email", email)
	return &user, nil
}

// CompleteOnboarding records that first-run setup finished
func (s *SettingsService) CompleteOnboarding() error {
	done := true
	s.settings.OnboardingCompleted = &done
	return s.save()
}

// SetOfflineMode forces the store offline, or clears the override
func (s *SettingsService) SetOfflineMode(offline bool) error {
	logging.Logger.Info("Setting offline mode", "offline", offline)
	s.settings.OfflineMode = &offline
	return s.save()
}

// SetFallbackConfiguration sets the policy for sites without a
// configuration: "random" or a configuration name
func (s *SettingsService) SetFallbackConfiguration(policy string) error {
	prev := s.settings.FallbackConfiguration
	s.settings.FallbackConfiguration = policy
	if err := s.save(); err != nil {
		s.settings.FallbackConfiguration = prev
		return err
	}
	return nil
}

// SetExportColumns sets the default export columns. Empty restores the
// built-in defaults.
func (s *SettingsService) SetExportColumns(columns []string) error {
	prev := s.settings.ExportColumns
	s.settings.ExportColumns = columns
	if err := s.save(); err != nil {
		s.settings.ExportColumns = prev
		return err
	}
	return nil
}
