package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "39" // Blue - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Field status colors
const (
	ColorCaptured Color = "2" // Green - value read
	ColorIdle     Color = "8" // Gray - not started
	ColorScanning Color = "3" // Yellow - reading
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorSuccess   Color = "42"  // Green - saved
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "214" // Orange - offline, queued
)

// Accent colors
const (
	ColorProgressEnd   Color = "#00C853"
	ColorProgressStart Color = "#2979FF"
	ColorSelected      Color = "237"
	ColorSpinner       Color = "205" // Pink
)
