// Package site holds the Network Orbiter content, its in-memory router and
// the page layouts the front ends render.
package site

import (
	_ "embed"
	"os"
	"regexp"
	"strings"

	"orbiter/internal/errors"
	"orbiter/internal/nav"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var builtin []byte

// Link is a top-level header link.
type Link struct {
	Label string   `yaml:"label"`
	Path  string   `yaml:"path"`
	Menu  string   `yaml:"menu"`
	Match []string `yaml:"match"`

	menu     nav.Menu
	patterns []glob.Glob
}

// NavMenu returns the dropdown attached to the link, if any.
func (l Link) NavMenu() nav.Menu { return l.menu }

// Item is one catalog entry with its page copy.
type Item struct {
	ID        string `yaml:"id"`
	NavLabel  string `yaml:"nav_label"`
	ShortText string `yaml:"short_text"`
	Heading   string `yaml:"heading"`
	Intro     string `yaml:"intro"`
	Datasheet string `yaml:"datasheet"`
}

// CatalogPage is a page built from a catalog, one section per item.
type CatalogPage struct {
	BasePath string `yaml:"base_path"`
	Title    string `yaml:"title"`
	Intro    string `yaml:"intro"`
	Items    []Item `yaml:"items"`
}

// Block is a free-standing page section.
type Block struct {
	ID      string `yaml:"id"`
	Heading string `yaml:"heading"`
	Intro   string `yaml:"intro"`
	Embed   string `yaml:"embed"`
}

// FooterLink is a footer entry.
type FooterLink struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// Footer is the site footer.
type Footer struct {
	Groups []struct {
		Title string       `yaml:"title"`
		Links []FooterLink `yaml:"links"`
	} `yaml:"groups"`
	Social    []string `yaml:"social"`
	Policies  []string `yaml:"policies"`
	Copyright string   `yaml:"copyright"`
}

// Content is the full site.
type Content struct {
	Brand     string      `yaml:"brand"`
	Links     []Link      `yaml:"links"`
	Solutions CatalogPage `yaml:"solutions"`
	Products  CatalogPage `yaml:"products"`
	Home      []Block     `yaml:"home"`
	About     []Block     `yaml:"about"`
	Contact   []Block     `yaml:"contact"`
	Footer    Footer      `yaml:"footer"`
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases label and replaces each run of characters outside
// [a-z0-9] with a single dash.
func Slugify(label string) string {
	return slugRe.ReplaceAllString(strings.ToLower(label), "-")
}

// Load parses the built-in content.
func Load() (*Content, error) {
	return Parse(builtin, "builtin")
}

// LoadFile parses content from path.
func LoadFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewContentError("content file not found", path, errors.ContentNotFound, err)
		}
		return nil, errors.NewContentError("error reading content file", path, errors.InvalidContent, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates content. source names the origin in errors.
func Parse(data []byte, source string) (*Content, error) {
	c := &Content{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.NewContentError("error parsing content", source, errors.InvalidContent, err)
	}
	if err := c.prepare(source); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Content) prepare(source string) error {
	invalid := func(msg string) error {
		return errors.NewContentError(msg, source, errors.InvalidContent, nil)
	}

	if strings.TrimSpace(c.Brand) == "" {
		return invalid("brand is empty")
	}

	for _, cat := range []*CatalogPage{&c.Solutions, &c.Products} {
		if !strings.HasPrefix(cat.BasePath, "/") {
			return invalid("catalog base path must begin with /: " + cat.BasePath)
		}
		if len(cat.Items) == 0 {
			return invalid("catalog " + cat.BasePath + " has no items")
		}
		seen := make(map[string]bool, len(cat.Items))
		for i := range cat.Items {
			item := &cat.Items[i]
			if strings.TrimSpace(item.NavLabel) == "" {
				return invalid("catalog " + cat.BasePath + " has an item without a label")
			}
			if item.ID == "" {
				item.ID = Slugify(item.NavLabel)
			}
			if item.Heading == "" {
				item.Heading = item.NavLabel
			}
			if seen[item.ID] {
				return invalid("duplicate id " + item.ID + " in " + cat.BasePath)
			}
			seen[item.ID] = true
		}
	}

	for i := range c.Links {
		link := &c.Links[i]
		if link.Label == "" || !strings.HasPrefix(link.Path, "/") {
			return invalid("link needs a label and an absolute path")
		}
		m, ok := nav.ParseMenu(link.Menu)
		if !ok {
			return invalid("unknown menu " + link.Menu)
		}
		link.menu = m
		if len(link.Match) == 0 {
			link.Match = []string{link.Path}
		}
		link.patterns = link.patterns[:0]
		for _, pattern := range link.Match {
			g, err := glob.Compile(pattern, '/')
			if err != nil {
				return errors.NewContentError("invalid match pattern "+pattern, source, errors.InvalidContent, err)
			}
			link.patterns = append(link.patterns, g)
		}
	}

	for _, blocks := range [][]Block{c.Home, c.About, c.Contact} {
		seen := make(map[string]bool, len(blocks))
		for _, b := range blocks {
			if b.ID == "" || seen[b.ID] {
				return invalid("page sections need unique ids")
			}
			seen[b.ID] = true
		}
	}
	return nil
}

// CatalogPage returns the page behind a dropdown.
func (c *Content) CatalogPage(m nav.Menu) (*CatalogPage, bool) {
	switch m {
	case nav.MenuSolutions:
		return &c.Solutions, true
	case nav.MenuProducts:
		return &c.Products, true
	}
	return nil, false
}

// Catalog returns the dropdown entries for m.
func (c *Content) Catalog(m nav.Menu) nav.Catalog {
	page, ok := c.CatalogPage(m)
	if !ok {
		return nav.Catalog{Menu: m}
	}
	entries := make([]nav.Entry, len(page.Items))
	for i, item := range page.Items {
		entries[i] = nav.Entry{ID: item.ID, Label: item.NavLabel}
	}
	return nav.Catalog{Menu: m, BasePath: page.BasePath, Entries: entries}
}

// Catalogs returns every dropdown catalog in header order.
func (c *Content) Catalogs() []nav.Catalog {
	out := make([]nav.Catalog, 0, len(nav.Menus))
	for _, m := range nav.Menus {
		out = append(out, c.Catalog(m))
	}
	return out
}

// BasePath returns the page a dropdown's entries anchor to.
func (c *Content) BasePath(m nav.Menu) string {
	if page, ok := c.CatalogPage(m); ok {
		return page.BasePath
	}
	return ""
}

// ActiveLink returns the header link whose patterns match path.
func (c *Content) ActiveLink(path string) (Link, bool) {
	for _, link := range c.Links {
		for _, g := range link.patterns {
			if g.Match(path) {
				return link, true
			}
		}
	}
	return Link{}, false
}

// LinkFor returns the header link that owns menu m.
func (c *Content) LinkFor(m nav.Menu) (Link, bool) {
	for _, link := range c.Links {
		if link.menu == m && m != nav.MenuNone {
			return link, true
		}
	}
	return Link{}, false
}
