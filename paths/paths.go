package paths

import (
	"os"
	"path/filepath"
)

// GetHome returns FIELDSCAN_HOME or ~/.fieldscan default
func GetHome() string {
	home := os.Getenv("FIELDSCAN_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".fieldscan"
		}
		return filepath.Join(homeDir, ".fieldscan")
	}
	return ExpandPath(home)
}

// GetDBPath returns $FIELDSCAN_HOME/fieldscan.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "fieldscan.db")
}

// GetExportPath returns $FIELDSCAN_HOME/exports
func GetExportPath() string {
	return filepath.Join(GetHome(), "exports")
}

// GetSettingsPath returns $FIELDSCAN_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetEnvFilePath returns $FIELDSCAN_HOME/.env
func GetEnvFilePath() string {
	return filepath.Join(GetHome(), ".env")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
