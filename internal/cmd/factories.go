package cmd

import (
	"github.com/renato0307/fieldscan/internal/adapters/connectivity"
	adaptersound "github.com/renato0307/fieldscan/internal/adapters/sound"
	adapterstorage "github.com/renato0307/fieldscan/internal/adapters/storage"
	"github.com/renato0307/fieldscan/internal/config"
	"github.com/renato0307/fieldscan/internal/scanner"
	"github.com/renato0307/fieldscan/internal/services"
	"github.com/renato0307/fieldscan/paths"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	AdminService    *services.AdminService
	ExportService   *services.ExportService
	ScanService     *services.ScanService
	SessionService  *services.SessionService
	SettingsService *services.SettingsService
	SiteService     *services.SiteService
	SyncService     *services.SyncService

	SoundPlayer *adaptersound.Player

	// Internal - for cleanup only
	repo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired.
// forceOffline overrides the offline_mode setting for this run only.
func NewContainer(settings *config.Settings, settingsPath string, forceOffline bool) (*Container, error) {
	// Create adapters
	repo, err := adapterstorage.NewSQLiteRepository(paths.GetDBPath())
	if err != nil {
		return nil, err
	}

	offline := func() bool { return forceOffline || settings.IsOffline() }
	checker := connectivity.NewChecker(settings.ProbeURL, offline, connectivity.DefaultTimeout)
	soundPlayer := adaptersound.NewPlayer(settings.SoundEnabled())
	simulator := scanner.NewSimulator(scanner.DefaultOptions())

	retries, retryDelay := settings.ListRetryPolicy()

	// Create services
	sessionService := services.NewSessionService(repo, repo, repo, checker,
		services.WithFallback(settings.Fallback(), nil),
		services.WithListRetry(retries, retryDelay),
	)

	return &Container{
		AdminService:    services.NewAdminService(settings, settingsPath),
		ExportService:   services.NewExportService(sessionService, repo, settings.ExportConfig()),
		ScanService:     services.NewScanService(sessionService, checker, simulator),
		SessionService:  sessionService,
		SettingsService: services.NewSettingsService(settings, settingsPath),
		SiteService:     services.NewSiteService(repo, sessionService),
		SyncService:     services.NewSyncService(repo, repo, checker),
		SoundPlayer:     soundPlayer,
		repo:            repo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
