package common

import "orbiter/internal/nav"

// ZoneKind identifies what a screen zone does when clicked or hovered.
type ZoneKind int

const (
	ZoneLink ZoneKind = iota
	ZoneTrigger
	ZoneChevron
	ZoneDropdown
	ZoneEntry
	ZoneToggle
	ZoneDrawer
	ZoneClose
	ZoneDrawerLink
	ZoneDrawerTrigger
	ZoneDrawerEntry
)

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset moves r down by dy rows.
func (r Rect) Offset(dy int) Rect {
	r.Y += dy
	return r
}

// Zone is an interactive rectangle of the rendered screen.
type Zone struct {
	Kind   ZoneKind
	Rect   Rect
	Menu   nav.Menu
	Target string
}

// Container reports whether the zone only groups other zones.
func (z Zone) Container() bool {
	return z.Kind == ZoneDropdown || z.Kind == ZoneDrawer
}

// Zones is the hit map of one frame.
type Zones []Zone

// At returns the most specific zone under (x, y).
func (zs Zones) At(x, y int) (Zone, bool) {
	var container *Zone
	for i := range zs {
		if !zs[i].Rect.Contains(x, y) {
			continue
		}
		if !zs[i].Container() {
			return zs[i], true
		}
		if container == nil {
			container = &zs[i]
		}
	}
	if container != nil {
		return *container, true
	}
	return Zone{}, false
}

// HoverMenu returns the dropdown whose hover region contains (x, y). A
// hover region is the trigger, its chevron and its open list.
func (zs Zones) HoverMenu(x, y int) nav.Menu {
	for _, z := range zs {
		switch z.Kind {
		case ZoneTrigger, ZoneChevron, ZoneDropdown, ZoneEntry:
			if z.Menu != nav.MenuNone && z.Rect.Contains(x, y) {
				return z.Menu
			}
		}
	}
	return nav.MenuNone
}

// Inside reports whether (x, y) lies in the navigation subtree used for
// outside-click detection: dropdown triggers, their lists and the drawer.
func (zs Zones) Inside(x, y int) bool {
	for _, z := range zs {
		switch z.Kind {
		case ZoneTrigger, ZoneChevron, ZoneDropdown, ZoneEntry, ZoneDrawer,
			ZoneClose, ZoneDrawerLink, ZoneDrawerTrigger, ZoneDrawerEntry:
			if z.Rect.Contains(x, y) {
				return true
			}
		}
	}
	return false
}

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	HeaderLines() []string
	Body() string
	BodyHeight() int
	ShowHelp() bool
	HelpView() string
	StatusView() string
}
