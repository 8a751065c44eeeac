package site

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// EmbedLeadForm marks a section that hosts the demo request form.
const EmbedLeadForm = "lead-form"

// FooterID is the anchor of the footer on every page.
const FooterID = "footer-main"

// Section is one anchored block of a page.
type Section struct {
	ID         string
	Heading    string
	Subheading string
	Body       string
	Note       string
	Embed      string
}

// Page is a routed page.
type Page struct {
	Path     string
	Title    string
	Found    bool
	Sections []Section
}

// Styles are applied while laying out a page.
type Styles struct {
	Title      lipgloss.Style
	Heading    lipgloss.Style
	Subheading lipgloss.Style
	Body       lipgloss.Style
	Note       lipgloss.Style
}

// PlainStyles lays pages out without decoration.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Title: s, Heading: s, Subheading: s, Body: s, Note: s}
}

// Layout is a page rendered to lines. Anchors maps section ids to the line
// their heading starts on.
type Layout struct {
	Lines   []string
	Anchors map[string]int
}

// Content returns the layout as one string.
func (l Layout) Content() string {
	return strings.Join(l.Lines, "\n")
}

// Page resolves path. Unknown paths yield a not-found page with Found false.
func (c *Content) Page(path string) Page {
	var p Page
	switch path {
	case "/":
		p = Page{Title: c.Brand, Sections: blocks(c.Home)}
	case c.Solutions.BasePath:
		p = catalogPage(&c.Solutions)
	case c.Products.BasePath:
		p = catalogPage(&c.Products)
	case "/about":
		p = Page{Title: "About", Sections: blocks(c.About)}
	case "/contact", "/demo":
		p = Page{Title: "Contact", Sections: blocks(c.Contact)}
	default:
		p = Page{Title: "Page not found", Sections: []Section{{
			ID:      "not-found",
			Heading: "404",
			Body:    fmt.Sprintf("Nothing lives at %s. Use the menu to find your way back.", path),
		}}}
		p.Path = path
		p.Sections = append(p.Sections, c.footerSection())
		return p
	}
	p.Path = path
	p.Found = true
	p.Sections = append(p.Sections, c.footerSection())
	return p
}

func blocks(bs []Block) []Section {
	out := make([]Section, 0, len(bs))
	for _, b := range bs {
		out = append(out, Section{ID: b.ID, Heading: b.Heading, Body: b.Intro, Embed: b.Embed})
	}
	return out
}

func catalogPage(cat *CatalogPage) Page {
	p := Page{Title: cat.Title}
	p.Sections = append(p.Sections, Section{ID: "overview", Body: cat.Intro})
	for _, item := range cat.Items {
		s := Section{ID: item.ID, Heading: item.Heading, Subheading: item.ShortText, Body: item.Intro}
		if item.Datasheet != "" {
			s.Note = "Datasheet: " + item.Datasheet
		}
		p.Sections = append(p.Sections, s)
	}
	return p
}

func (c *Content) footerSection() Section {
	var b strings.Builder
	for i, g := range c.Footer.Groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.ToUpper(g.Title))
		for _, l := range g.Links {
			b.WriteString("\n  " + l.Label)
		}
	}
	b.WriteString("\n\n" + strings.Join(c.Footer.Social, " · "))
	b.WriteString("\n" + strings.Join(c.Footer.Policies, " · "))
	return Section{
		ID:      FooterID,
		Heading: c.Brand,
		Body:    b.String(),
		Note:    fmt.Sprintf("© %d %s", time.Now().Year(), c.Footer.Copyright),
	}
}

// Layout renders the page at width. embeds supplies pre-rendered content
// for sections with an Embed key.
func (p Page) Layout(width int, st Styles, embeds map[string]string) Layout {
	if width < 20 {
		width = 20
	}
	wrap := lipgloss.NewStyle().Width(width)

	out := Layout{Anchors: make(map[string]int, len(p.Sections))}
	add := func(style lipgloss.Style, text string) {
		if text == "" {
			return
		}
		rendered := style.Render(wrap.Render(text))
		out.Lines = append(out.Lines, strings.Split(rendered, "\n")...)
	}

	add(st.Title, p.Title)
	out.Lines = append(out.Lines, "")

	for _, s := range p.Sections {
		out.Anchors[s.ID] = len(out.Lines)
		add(st.Heading, s.Heading)
		add(st.Subheading, s.Subheading)
		add(st.Body, s.Body)
		if s.Embed != "" {
			if view, ok := embeds[s.Embed]; ok && view != "" {
				out.Lines = append(out.Lines, "")
				out.Lines = append(out.Lines, strings.Split(view, "\n")...)
			}
		}
		add(st.Note, s.Note)
		out.Lines = append(out.Lines, "")
	}
	return out
}
