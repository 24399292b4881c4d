package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/fieldscan/internal/config"
	"github.com/renato0307/fieldscan/internal/domain"
)

func newSettingsService(t *testing.T) (*SettingsService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	return NewSettingsService(&config.Settings{}, path), path
}

func TestSettingsService_AddUser(t *testing.T) {
	service, path := newSettingsService(t)

	user, err := service.AddUser(" Ana Lopes ", "ana@example.com", "installer")
	require.NoError(t, err)
	assert.Equal(t, "Ana Lopes", user.Name)

	_, err = service.AddUser("Ana Again", "ANA@example.com", "installer")
	assert.ErrorContains(t, err, "already exists")

	_, err = service.AddUser("", "bob@example.com", "installer")
	assert.ErrorContains(t, err, "name is required")

	_, err = service.AddUser("Bob", "bob@example", "installer")
	assert.ErrorContains(t, err, "Invalid email format")

	stored, err := config.LoadSettings(path)
	require.NoError(t, err)
	require.Len(t, stored.Users, 1)
	assert.Equal(t, "ana@example.com", stored.Users[0].Email)
}

func TestSettingsService_Fallback(t *testing.T) {
	service, path := newSettingsService(t)

	require.NoError(t, service.SetFallbackConfiguration(domain.Config4Over4))
	assert.Equal(t, domain.Config4Over4, service.Settings().Fallback())

	err := service.SetFallbackConfiguration("7 over 7")
	require.Error(t, err)
	assert.Equal(t, domain.Config4Over4, service.Settings().Fallback(), "previous policy kept")

	stored, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Config4Over4, stored.FallbackConfiguration)
}

func TestSettingsService_ExportColumns(t *testing.T) {
	service, _ := newSettingsService(t)

	require.NoError(t, service.SetExportColumns([]string{"position", "serial_number"}))
	assert.Equal(t, config.StringArray{"position", "serial_number"}, service.Settings().ExportColumns)

	require.Error(t, service.SetExportColumns([]string{"colour"}))
	assert.Equal(t, config.StringArray{"position", "serial_number"}, service.Settings().ExportColumns)
}

func TestSettingsService_OfflineAndOnboarding(t *testing.T) {
	service, path := newSettingsService(t)

	require.NoError(t, service.SetOfflineMode(true))
	require.NoError(t, service.CompleteOnboarding())

	stored, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.True(t, stored.IsOffline())
	assert.True(t, stored.IsOnboarded())
}
