// Package cli holds the plain-terminal output helpers used by the
// non-interactive commands.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColorTheme represents a set of colors for the CLI
type ColorTheme struct {
	Name        string
	Success     string
	Error       string
	Warning     string
	Info        string
	Header      string
	Logo        string
	BoxOutline  string
	Highlight   string
	Description string
}

// Available themes, named like the config themes
var (
	DefaultTheme = ColorTheme{
		Name:        "default",
		Success:     colorGreen,
		Error:       colorRed,
		Warning:     colorYellow,
		Info:        colorCyan,
		Header:      colorGreen + colorBold,
		Logo:        colorGreen,
		BoxOutline:  colorGreen,
		Highlight:   colorCyan,
		Description: "Green brand theme",
	}

	DarkTheme = ColorTheme{
		Name:        "dark",
		Success:     "\033[38;5;114m",
		Error:       "\033[38;5;167m",
		Warning:     "\033[38;5;179m",
		Info:        "\033[38;5;245m",
		Header:      "\033[38;5;78m" + colorBold,
		Logo:        "\033[38;5;78m",
		BoxOutline:  "\033[38;5;236m",
		Highlight:   "\033[38;5;114m",
		Description: "Dark mode theme",
	}

	LightTheme = ColorTheme{
		Name:        "light",
		Success:     "\033[38;5;28m",
		Error:       "\033[38;5;160m",
		Warning:     "\033[38;5;130m",
		Info:        "\033[38;5;240m",
		Header:      "\033[38;5;28m" + colorBold,
		Logo:        "\033[38;5;28m",
		BoxOutline:  "\033[38;5;250m",
		Highlight:   "\033[38;5;34m",
		Description: "Light terminal theme",
	}

	OceanTheme = ColorTheme{
		Name:        "ocean",
		Success:     "\033[38;5;51m",
		Error:       "\033[38;5;203m",
		Warning:     "\033[38;5;222m",
		Info:        "\033[38;5;248m",
		Header:      "\033[38;5;31m" + colorBold,
		Logo:        "\033[38;5;31m",
		BoxOutline:  "\033[38;5;24m",
		Highlight:   "\033[38;5;51m",
		Description: "Teal and cyan",
	}
)

// AvailableThemes lists all themes
var AvailableThemes = []ColorTheme{DefaultTheme, DarkTheme, LightTheme, OceanTheme}

// CurrentTheme is the active theme
var CurrentTheme = DefaultTheme

// Terminal colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// SetTheme sets the current theme by name
func SetTheme(themeName string) bool {
	for _, theme := range AvailableThemes {
		if theme.Name == themeName {
			CurrentTheme = theme
			return true
		}
	}
	return false
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, CurrentTheme.Success+"✓ "+message+colorReset)
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintln(w, CurrentTheme.Error+"✗ "+message+colorReset)
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintln(w, CurrentTheme.Warning+"! "+message+colorReset)
}

// PrintInfo prints an informational message
func PrintInfo(w io.Writer, message string) {
	fmt.Fprintln(w, CurrentTheme.Info+"ℹ "+message+colorReset)
}

// PrintHeader prints a section header
func PrintHeader(w io.Writer, message string) {
	fmt.Fprintln(w, "\n"+CurrentTheme.Header+message+colorReset)
	fmt.Fprintln(w, strings.Repeat("─", lipgloss.Width(message)))
}

// DrawBox creates a colored box around content
func DrawBox(content, color string) string {
	lines := strings.Split(content, "\n")
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, lipgloss.Width(line))
	}

	var b strings.Builder
	b.WriteString(color + "┌" + strings.Repeat("─", maxLen+2) + "┐\n")
	for _, line := range lines {
		b.WriteString("│ " + line + strings.Repeat(" ", maxLen-lipgloss.Width(line)) + " │\n")
	}
	b.WriteString("└" + strings.Repeat("─", maxLen+2) + "┘" + colorReset)
	return b.String()
}

// DrawBoxWithTheme creates a colored box using the current theme
func DrawBoxWithTheme(content string) string {
	return DrawBox(content, CurrentTheme.BoxOutline)
}

// DrawLogo returns the banner shown above the help text.
func DrawLogo() string {
	logo := `
  ___       _     _ _
 / _ \ _ __| |__ (_) |_ ___ _ __
| | | | '__| '_ \| | __/ _ \ '__|
| |_| | |  | |_) | | ||  __/ |
 \___/|_|  |_.__/|_|\__\___|_|
`
	return CurrentTheme.Logo + logo + colorReset
}
