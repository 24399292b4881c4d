package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/renato0307/fieldscan/internal/config"
	"github.com/renato0307/fieldscan/logging"
	"github.com/renato0307/fieldscan/paths"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Offline     bool             `help:"Force offline mode: scan saves are queued until the next sync" env:"FIELDSCAN_OFFLINE"`

	Scan      ScanCmd      `cmd:"" help:"Open the terminal scanner for a session" default:"withargs"`
	Sites     SitesCmd     `cmd:"sites" help:"Manage sites (list, show, add, import)"`
	Sessions  SessionsCmd  `cmd:"sessions" help:"Manage scanning sessions"`
	Export    ExportCmd    `cmd:"export" help:"Export a session as CSV, JSON or XLSX"`
	Templates TemplatesCmd `cmd:"templates" help:"Manage export templates"`
	Sync      SyncCmd      `cmd:"sync" help:"Replay scan updates queued while offline"`
	Admin     AdminCmd     `cmd:"admin" help:"Admin login and password"`
	Users     UsersCmd     `cmd:"users" help:"Manage field engineers"`
	Settings  SettingsCmd  `cmd:"settings" help:"Show or change settings"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the HTTP API"`
	ServeSSH  ServeSSHCmd  `cmd:"serve-ssh" help:"Serve the terminal scanner over SSH"`

	// Internal fields (not flags)
	Container    *Container       `kong:"-"`
	settings     *config.Settings `kong:"-"`
	settingsPath string           `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings, path string) {
	c.settings = settings
	c.settingsPath = path
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings == nil {
		c.settings = &config.Settings{}
		c.settingsPath = paths.GetSettingsPath()
	}

	if c.MaxLogFiles == config.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("FIELDSCAN_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}
	if !c.Debug {
		if _, hasEnv := os.LookupEnv("FIELDSCAN_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Container after logging: the gorm logger writes through logging.Logger
	container, err := NewContainer(c.settings, c.settingsPath, c.Offline)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// requireAdmin fails unless an admin login is still valid
func (c *CLI) requireAdmin() error {
	admin := c.Container.AdminService
	if !admin.IsConfigured() {
		return nil
	}
	if !admin.IsAuthenticated(time.Now()) {
		return fmt.Errorf("admin login required: run 'fieldscan admin login'")
	}
	return nil
}
