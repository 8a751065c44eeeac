package components

import (
	"strings"

	"orbiter/internal/nav"
	"orbiter/internal/tui/common"
	"orbiter/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const closeLabel = "✕ Close"

// RenderDrawer renders the full-screen mobile menu into a width x height
// area whose top row is screen row top.
func RenderDrawer(s HeaderState, top, height int, th *styles.Theme) (string, common.Zones) {
	width := max(s.Width, 1)
	zones := common.Zones{{Kind: common.ZoneDrawer, Rect: common.Rect{X: 0, Y: top, W: width, H: height}}}

	var lines []string
	row := func(text string) int {
		lines = append(lines, text)
		return top + len(lines) - 1
	}

	closeX := max(width-lipgloss.Width(closeLabel)-2, 0)
	y := row(strings.Repeat(" ", closeX) + th.Link.Render(closeLabel))
	zones = append(zones, common.Zone{Kind: common.ZoneClose, Rect: common.Rect{X: closeX, Y: y, W: lipgloss.Width(closeLabel), H: 1}})
	row("")

	const indent = 2
	for _, link := range s.Links {
		style := th.Link
		if link.Path == s.ActivePath {
			style = th.ActiveLink
		}
		m := link.NavMenu()
		text := strings.Repeat(" ", indent) + style.Render(link.Label)
		if m != nav.MenuNone {
			text += " " + th.Chevron.Render(chevron(s.rotated(m)))
		}
		y := row(text)
		zones = append(zones, common.Zone{Kind: common.ZoneDrawerLink, Rect: common.Rect{X: indent, Y: y, W: lipgloss.Width(link.Label), H: 1}, Target: link.Path})
		if m == nav.MenuNone {
			continue
		}
		zones = append(zones, common.Zone{Kind: common.ZoneDrawerTrigger, Rect: common.Rect{X: indent + lipgloss.Width(link.Label) + 1, Y: y, W: 1, H: 1}, Menu: m})

		if !s.rotated(m) {
			continue
		}
		for _, e := range s.Catalogs[m].Entries {
			y := row(strings.Repeat(" ", indent+2) + th.EntryHint.Render("• ") + th.Entry.Render(e.Label))
			zones = append(zones, common.Zone{
				Kind:   common.ZoneDrawerEntry,
				Rect:   common.Rect{X: indent + 2, Y: y, W: lipgloss.Width(e.Label) + 2, H: 1},
				Menu:   m,
				Target: e.ID,
			})
		}
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	// zones on the rows cut off above are off screen
	visible := zones[:0]
	for _, z := range zones {
		if z.Rect.Y < top+height {
			visible = append(visible, z)
		}
	}
	return strings.Join(lines, "\n"), visible
}
