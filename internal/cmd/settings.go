package cmd

import (
	"fmt"
	"sort"

	"github.com/renato0307/fieldscan/internal/config"
	"github.com/renato0307/fieldscan/internal/domain"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Columns  SettingsColumnsCmd  `cmd:"columns" help:"Set the default export columns"`
	Fallback SettingsFallbackCmd `cmd:"fallback" help:"Set the configuration used for sites without one"`
	Meta     SettingsMetaCmd     `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Offline  SettingsOfflineCmd  `cmd:"offline" help:"Force offline mode on or off"`
	Onboard  SettingsOnboardCmd  `cmd:"onboard" help:"Mark first-run setup as done"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": cli.settingsPath,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", cli.settingsPath)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for k := range example {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := newTable()
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("All settings are optional and have sensible defaults.")
	if !cli.settings.IsOnboarded() {
		fmt.Println("First run? Set an admin password with 'fieldscan admin set-password'.")
	}
	return nil
}

// SettingsFallbackCmd sets the fallback configuration policy
type SettingsFallbackCmd struct {
	Policy string `arg:"" help:"'random' or a configuration name such as '5 over 1'"`
}

// Run executes the fallback command
func (s *SettingsFallbackCmd) Run(cli *CLI) error {
	if err := cli.requireAdmin(); err != nil {
		return err
	}
	if err := cli.Container.SettingsService.SetFallbackConfiguration(s.Policy); err != nil {
		return err
	}
	fmt.Printf("Fallback configuration set to '%s'\n", s.Policy)
	return nil
}

// SettingsColumnsCmd sets the default export columns
type SettingsColumnsCmd struct {
	Columns []string `arg:"" optional:"" help:"Columns, in any order; none restores all"`
}

// Run executes the columns command
func (s *SettingsColumnsCmd) Run(cli *CLI) error {
	if err := cli.requireAdmin(); err != nil {
		return err
	}
	if err := cli.Container.SettingsService.SetExportColumns(s.Columns); err != nil {
		return err
	}
	if len(s.Columns) == 0 {
		fmt.Printf("Export columns reset to all %d columns\n", len(domain.Columns()))
		return nil
	}
	fmt.Printf("Export columns set to %v\n", s.Columns)
	return nil
}

// SettingsOfflineCmd toggles forced offline mode
type SettingsOfflineCmd struct {
	State string `arg:"" help:"on or off" enum:"on,off"`
}

// Run executes the offline command
func (s *SettingsOfflineCmd) Run(cli *CLI) error {
	if err := cli.Container.SettingsService.SetOfflineMode(s.State == "on"); err != nil {
		return err
	}
	fmt.Printf("Offline mode %s\n", s.State)
	return nil
}

// SettingsOnboardCmd completes onboarding
type SettingsOnboardCmd struct{}

// Run executes the onboard command
func (s *SettingsOnboardCmd) Run(cli *CLI) error {
	if err := cli.Container.SettingsService.CompleteOnboarding(); err != nil {
		return err
	}
	fmt.Println("Onboarding completed")
	return nil
}
