package styles

import (
	"orbiter/internal/site"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the configurable colors.
type Palette struct {
	Primary string
	Accent  string
	Muted   string
	Border  string
}

// DefaultPalette matches the default config theme.
var DefaultPalette = Palette{
	Primary: "#16A34A",
	Accent:  "#4ADE80",
	Muted:   "#A3A3A3",
	Border:  "#262626",
}

// Theme defines the UI styles derived from a palette
type Theme struct {
	Brand      lipgloss.Style
	Link       lipgloss.Style
	ActiveLink lipgloss.Style
	Chevron    lipgloss.Style
	Dropdown   lipgloss.Style
	Entry      lipgloss.Style
	EntryHint  lipgloss.Style
	Drawer     lipgloss.Style
	Rule       lipgloss.Style

	PageTitle  lipgloss.Style
	Heading    lipgloss.Style
	Subheading lipgloss.Style
	Body       lipgloss.Style
	Note       lipgloss.Style

	Help    lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Focused lipgloss.Style
}

// NewTheme builds the styles for p.
func NewTheme(p Palette) *Theme {
	primary := lipgloss.Color(p.Primary)
	accent := lipgloss.Color(p.Accent)
	muted := lipgloss.Color(p.Muted)
	border := lipgloss.Color(p.Border)

	return &Theme{
		Brand:      lipgloss.NewStyle().Bold(true).Foreground(primary),
		Link:       lipgloss.NewStyle(),
		ActiveLink: lipgloss.NewStyle().Foreground(accent).Underline(true),
		Chevron:    lipgloss.NewStyle().Foreground(muted),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Entry:     lipgloss.NewStyle(),
		EntryHint: lipgloss.NewStyle().Foreground(muted),
		Drawer:    lipgloss.NewStyle().Padding(0, 2),
		Rule:      lipgloss.NewStyle().Foreground(border),

		PageTitle:  lipgloss.NewStyle().Bold(true).Foreground(primary),
		Heading:    lipgloss.NewStyle().Bold(true),
		Subheading: lipgloss.NewStyle().Foreground(accent),
		Body:       lipgloss.NewStyle(),
		Note:       lipgloss.NewStyle().Foreground(muted).Italic(true),

		Help:    lipgloss.NewStyle().Foreground(muted),
		Status:  lipgloss.NewStyle().Foreground(muted),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
		Success: lipgloss.NewStyle().Foreground(accent),
		Focused: lipgloss.NewStyle().Foreground(primary).Bold(true),
	}
}

// PageStyles adapts the theme for page layout.
func (t *Theme) PageStyles() site.Styles {
	return site.Styles{
		Title:      t.PageTitle,
		Heading:    t.Heading,
		Subheading: t.Subheading,
		Body:       t.Body,
		Note:       t.Note,
	}
}
