package ui

import (
	"fmt"

	"github.com/renato0307/fieldscan/internal/theme"
	"github.com/renato0307/fieldscan/version"
)

// renderHeader renders the app name, the tagline and an optional subtitle.
// devMode adds the build information.
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("FieldScan")
	if devMode {
		commit := version.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s",
			version.Version, commit, version.Date))
	}

	result := appNameLine + "\n" + theme.TaglineStyle.Render(version.Tagline)
	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}
	return result + "\n"
}
