package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/fieldscan/internal/cmd"
	"github.com/renato0307/fieldscan/internal/config"
	"github.com/renato0307/fieldscan/paths"
	"github.com/renato0307/fieldscan/version"
)

func main() {
	// FIELDSCAN_* from $FIELDSCAN_HOME/.env, before kong reads env tags
	if err := config.LoadEnv(paths.GetEnvFilePath()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Load settings from $FIELDSCAN_HOME/settings.json
	settingsPath := paths.GetSettingsPath()
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{} // Use empty settings
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings, settingsPath)
	ctx := kong.Parse(&cli,
		kong.Name("fieldscan"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
