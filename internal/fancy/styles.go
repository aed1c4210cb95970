package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

// Common styles that can be used across the application
var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	ComponentStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	GroupStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	LauncherStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)

	PluginStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ReporterStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// GroupText styles a group name
func GroupText(text string) string {
	return GroupStyle.Render(text)
}

// LauncherText styles a launcher description
func LauncherText(text string) string {
	return LauncherStyle.Render(text)
}

// PluginText styles a plugin name
func PluginText(text string) string {
	return PluginStyle.Render(text)
}

// ReporterText styles a reporter name
func ReporterText(text string) string {
	return ReporterStyle.Render(text)
}

// ValidText styles valid status text (green)
func ValidText(text string) string {
	return PluginStyle.Render(text)
}

// ErrorText styles error text (red)
func ErrorText(text string) string {
	return ErrorStyle.Render(text)
}

// PathText styles file paths (gray)
func PathText(text string) string {
	return InfoStyle.Render(text)
}

// CountText styles count numbers (cyan)
func CountText(text string) string {
	return ComponentStyle.Render(text)
}
