package services

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/renato0307/fieldscan/internal/config"
	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/logging"
)

// AdminService guards admin-only operations with a single password
type AdminService struct {
	now          func() time.Time
	settings     *config.Settings
	settingsPath string
}

// NewAdminService creates a new AdminService. Changes are written back to
// settingsPath.
func NewAdminService(settings *config.Settings, settingsPath string) *AdminService {
	return &AdminService{
		now:          time.Now,
		settings:     settings,
		settingsPath: settingsPath,
	}
}

// IsConfigured reports whether an admin password was set
func (s *AdminService) IsConfigured() bool {
	return s.settings.AdminPasswordHash != ""
}

// SetPassword replaces the admin password and ends any admin session
func (s *AdminService) SetPassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("admin password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.settings.AdminPasswordHash = string(hash)
	s.settings.AdminAuthExpiry = nil
	if err := config.SaveSettings(s.settingsPath, s.settings); err != nil {
		return err
	}
	logging.Logger.Info("Admin password updated")
	return nil
}

// Login checks the password and starts an admin session lasting
// Settings.AdminSession
func (s *AdminService) Login(password string) (time.Time, error) {
	if !s.IsConfigured() {
		return time.Time{}, domain.ErrAdminNotConfigured
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.settings.AdminPasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		logging.Logger.Warn("Admin login rejected")
		return time.Time{}, domain.ErrInvalidPassword
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to verify password: %w", err)
	}

	expiry := s.now().Add(s.settings.AdminSession()).UTC()
	s.settings.AdminAuthExpiry = &expiry
	if err := config.SaveSettings(s.settingsPath, s.settings); err != nil {
		return time.Time{}, err
	}

	logging.Logger.Info("Admin logged in", "expires", expiry)
	return expiry, nil
}

// Logout ends the admin session
func (s *AdminService) Logout() error {
	s.settings.AdminAuthExpiry = nil
	return config.SaveSettings(s.settingsPath, s.settings)
}

// IsAuthenticated reports whether an admin session is valid at now
func (s *AdminService) IsAuthenticated(now time.Time) bool {
	return s.settings.AdminAuthExpiry != nil && now.Before(*s.settings.AdminAuthExpiry)
}
