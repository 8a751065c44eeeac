package components

import (
	"strings"

	"orbiter/internal/nav"
	"orbiter/internal/site"
	"orbiter/internal/tui/common"
	"orbiter/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const (
	chevronDown = "▾"
	chevronUp   = "▴"
	hamburger   = "☰"
	linkGap     = 3
)

// HeaderState is what the header needs to render one frame.
type HeaderState struct {
	Brand      string
	Links      []site.Link
	ActivePath string
	Nav        nav.State
	Catalogs   map[nav.Menu]nav.Catalog
	Width      int
}

func (s HeaderState) rotated(m nav.Menu) bool {
	return m != nav.MenuNone && s.Nav.ActiveMenu == m
}

func chevron(rotated bool) string {
	if rotated {
		return chevronUp
	}
	return chevronDown
}

// RenderHeader renders the header bar, an open desktop dropdown and the
// bottom rule. Zones are in screen coordinates with the header at row 0.
func RenderHeader(s HeaderState, th *styles.Theme) ([]string, common.Zones) {
	if s.Nav.Mode == nav.Mobile {
		return renderMobileHeader(s, th)
	}

	var (
		bar   strings.Builder
		zones common.Zones
		x     int
	)
	write := func(text string, style lipgloss.Style) int {
		start := x
		bar.WriteString(style.Render(text))
		x += lipgloss.Width(text)
		return start
	}

	write(" ", th.Link)
	start := write(s.Brand, th.Brand)
	zones = append(zones, common.Zone{Kind: common.ZoneLink, Rect: common.Rect{X: start, Y: 0, W: lipgloss.Width(s.Brand), H: 1}, Target: "/"})

	triggerX := map[nav.Menu]int{}
	for _, link := range s.Links {
		write(strings.Repeat(" ", linkGap), th.Link)

		style := th.Link
		if link.Path == s.ActivePath {
			style = th.ActiveLink
		}
		m := link.NavMenu()
		start := write(link.Label, style)
		if m == nav.MenuNone {
			zones = append(zones, common.Zone{Kind: common.ZoneLink, Rect: common.Rect{X: start, Y: 0, W: lipgloss.Width(link.Label), H: 1}, Target: link.Path})
			continue
		}

		write(" ", th.Link)
		zones = append(zones, common.Zone{
			Kind:   common.ZoneTrigger,
			Rect:   common.Rect{X: start, Y: 0, W: lipgloss.Width(link.Label) + 1, H: 1},
			Menu:   m,
			Target: link.Path,
		})
		cx := write(chevron(s.rotated(m)), th.Chevron)
		zones = append(zones, common.Zone{Kind: common.ZoneChevron, Rect: common.Rect{X: cx, Y: 0, W: 1, H: 1}, Menu: m})
		triggerX[m] = start
	}

	lines := []string{bar.String()}

	if m := s.Nav.ActiveMenu; m != nav.MenuNone {
		if cat, ok := s.Catalogs[m]; ok && len(cat.Entries) > 0 {
			box, boxZones := renderDropdown(cat, triggerX[m], s.Width, th)
			lines = append(lines, box...)
			zones = append(zones, boxZones...)
		}
	}

	lines = append(lines, th.Rule.Render(strings.Repeat("─", max(s.Width, 1))))
	return lines, zones
}

func renderDropdown(cat nav.Catalog, x, width int, th *styles.Theme) ([]string, common.Zones) {
	labels := make([]string, len(cat.Entries))
	for i, e := range cat.Entries {
		labels[i] = th.Entry.Render(e.Label)
	}
	box := th.Dropdown.Render(strings.Join(labels, "\n"))
	boxW, boxH := lipgloss.Width(box), lipgloss.Height(box)
	if x+boxW > width {
		x = max(width-boxW, 0)
	}

	pad := strings.Repeat(" ", x)
	raw := strings.Split(box, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = pad + l
	}

	// The box starts on row 1, directly below the bar.
	zones := common.Zones{{Kind: common.ZoneDropdown, Rect: common.Rect{X: x, Y: 1, W: boxW, H: boxH}, Menu: cat.Menu}}
	for i, e := range cat.Entries {
		zones = append(zones, common.Zone{
			Kind:   common.ZoneEntry,
			Rect:   common.Rect{X: x + 1, Y: 2 + i, W: boxW - 2, H: 1},
			Menu:   cat.Menu,
			Target: e.ID,
		})
	}
	return lines, zones
}

func renderMobileHeader(s HeaderState, th *styles.Theme) ([]string, common.Zones) {
	brand := " " + th.Brand.Render(s.Brand)
	used := 1 + lipgloss.Width(s.Brand)
	iconX := max(s.Width-2, used+1)
	bar := brand + strings.Repeat(" ", iconX-used) + th.Link.Render(hamburger)

	zones := common.Zones{
		{Kind: common.ZoneLink, Rect: common.Rect{X: 1, Y: 0, W: lipgloss.Width(s.Brand), H: 1}, Target: "/"},
		{Kind: common.ZoneToggle, Rect: common.Rect{X: iconX, Y: 0, W: 1, H: 1}},
	}
	return []string{bar, th.Rule.Render(strings.Repeat("─", max(s.Width, 1)))}, zones
}
