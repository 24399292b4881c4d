package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(16)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Field status styles
var (
	CapturedStyle = lipgloss.NewStyle().
			Foreground(ColorCaptured).
			Bold(true)

	IdleStyle = lipgloss.NewStyle().
			Foreground(ColorIdle)

	ScanningStyle = lipgloss.NewStyle().
			Foreground(ColorScanning)
)

// Message styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Position list styles
var (
	PositionDoneStyle = lipgloss.NewStyle().
				Foreground(ColorCaptured)

	PositionPendingStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	PositionSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelected).
				Bold(true)

	ZoneHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			Padding(1, 0, 0, 0)
)

// SpinnerStyle colours the scan spinner
var SpinnerStyle = lipgloss.NewStyle().Foreground(ColorSpinner)
