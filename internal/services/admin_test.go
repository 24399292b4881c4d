package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/fieldscan/internal/config"
	"github.com/renato0307/fieldscan/internal/domain"
)

func TestAdminLogin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	settings := &config.Settings{}
	service := NewAdminService(settings, path)
	service.now = func() time.Time { return testNow }

	_, err := service.Login("secret")
	assert.ErrorIs(t, err, domain.ErrAdminNotConfigured)

	assert.Error(t, service.SetPassword("123"), "short passwords are rejected")
	require.NoError(t, service.SetPassword("hunter22"))
	assert.True(t, service.IsConfigured())

	_, err = service.Login("wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
	assert.False(t, service.IsAuthenticated(testNow))

	expiry, err := service.Login("hunter22")
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(8*time.Hour), expiry)
	assert.True(t, service.IsAuthenticated(testNow.Add(time.Hour)))
	assert.False(t, service.IsAuthenticated(testNow.Add(9*time.Hour)))

	stored, err := config.LoadSettings(path)
	require.NoError(t, err)
	require.NotNil(t, stored.AdminAuthExpiry)
	assert.True(t, expiry.Equal(*stored.AdminAuthExpiry))
	assert.NotContains(t, stored.AdminPasswordHash, "hunter22")

	require.NoError(t, service.Logout())
	assert.False(t, service.IsAuthenticated(testNow.Add(time.Hour)))
}

func TestSettingsService(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	service := NewSettingsService(&config.Settings{}, path)

	user, err := service.AddUser("Sam Field", "sam@example.com", "engineer")
	require.NoError(t, err)
	assert.Equal(t, "Sam Field", user.Name)

	_, err = service.AddUser("Sam Again", "SAM@example.com", "")
	assert.Error(t, err, "emails are unique")

	_, err = service.AddUser("No Mail", "nope", "")
	assert.Error(t, err)

	require.NoError(t, service.CompleteOnboarding())
	require.NoError(t, service.SetOfflineMode(true))
	require.NoError(t, service.SetFallbackConfiguration(domain.Config5Straight))
	assert.Error(t, service.SetFallbackConfiguration("9 over 9"))

	stored, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.True(t, stored.IsOnboarded())
	assert.True(t, stored.IsOffline())
	assert.Equal(t, domain.Config5Straight, stored.Fallback())
	require.Len(t, stored.Users, 1)
	assert.Equal(t, "sam@example.com", stored.Users[0].Email)
}
