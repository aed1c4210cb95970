package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/manolakis/webrunner/internal/fancy"
)

// Resource type styling constants
var (
	// GroupStyle defines the style for group names (orange)
	GroupStyle = lipgloss.NewStyle().Foreground(fancy.ColorOrange)

	// LauncherStyle defines the style for browser launchers (magenta)
	LauncherStyle = lipgloss.NewStyle().Foreground(fancy.ColorMagenta)

	// PluginStyle defines the style for plugin names (green)
	PluginStyle = lipgloss.NewStyle().Foreground(fancy.ColorGreen)

	// ReporterStyle defines the style for reporter names (yellow)
	ReporterStyle = lipgloss.NewStyle().Foreground(fancy.ColorYellow)

	// SectionHeaderStyle defines the style for section headers
	SectionHeaderStyle = lipgloss.NewStyle().Foreground(fancy.ColorWhite).Bold(true)
)

// Group styling functions
func GroupName(name string) string {
	return GroupStyle.Render(name)
}

// Launcher styling functions
func LauncherName(name string) string {
	return LauncherStyle.Render(name)
}

func LauncherRef(names []string) string {
	if len(names) == 0 {
		return "Browsers: none"
	}

	formatted := make([]string, len(names))
	for i, name := range names {
		formatted[i] = LauncherStyle.Render(name)
	}

	return fmt.Sprintf("Browsers: %s", strings.Join(formatted, ", "))
}

// Plugin styling functions
func PluginName(name string) string {
	return PluginStyle.Render(name)
}

// Reporter styling functions
func ReporterName(name string) string {
	return ReporterStyle.Render(name)
}

// Section formatting functions
func FormatSection(name string, count int) string {
	if count <= 0 {
		return SectionHeaderStyle.Render(name)
	}
	return SectionHeaderStyle.Render(fmt.Sprintf("%s (%d)", name, count))
}
