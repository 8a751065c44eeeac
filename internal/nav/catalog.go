// Package nav implements the site header's navigation controller.
//
// Controller is the only type that mutates navigation state. It composes a
// viewport classifier, a drawer scroll lock, an outside-click watcher, a
// hover-intent debouncer and a section-scroll navigator, and talks to its
// host only through the small capability interfaces declared in this
// package (Window, Document, Router, ScrollLocker, Scheduler, Region).
//
// All methods must be called from a single event loop.
package nav

import "strings"

// Menu identifies a header dropdown.
type Menu int

const (
	MenuNone Menu = iota
	MenuSolutions
	MenuProducts
)

// Menus lists the dropdowns in header order.
var Menus = []Menu{MenuSolutions, MenuProducts}

func (m Menu) String() string {
	switch m {
	case MenuSolutions:
		return "solutions"
	case MenuProducts:
		return "products"
	default:
		return "none"
	}
}

// ParseMenu maps a catalog name to its Menu.
func ParseMenu(s string) (Menu, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solutions":
		return MenuSolutions, true
	case "products":
		return MenuProducts, true
	case "", "none":
		return MenuNone, true
	}
	return MenuNone, false
}

// Entry is one item of a dropdown catalog.
type Entry struct {
	ID    string
	Label string
}

// Catalog is the read-only list behind one dropdown. BasePath is the page
// whose sections the entries anchor to.
type Catalog struct {
	Menu     Menu
	BasePath string
	Entries  []Entry
}

// Lookup finds the entry with id.
func (c Catalog) Lookup(id string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Target returns the URL an entry resolves to.
func (c Catalog) Target(id string) string {
	return SectionURL(c.BasePath, id)
}

// SectionURL joins a page path and an anchor into basePath#anchorID.
func SectionURL(basePath, anchorID string) string {
	return basePath + "#" + anchorID
}

// SplitURL separates the path and fragment of a site URL.
func SplitURL(url string) (path, fragment string) {
	if i := strings.IndexByte(url, '#'); i >= 0 {
		return url[:i], url[i+1:]
	}
	return url, ""
}
