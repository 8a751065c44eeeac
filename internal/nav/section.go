package nav

import "orbiter/internal/log"

// DefaultHeaderClearance is subtracted from a section's offset so the sticky
// header does not cover its heading.
const DefaultHeaderClearance = 100

// Router is the routing collaborator.
type Router interface {
	CurrentPath() string
	Navigate(url string)
}

// Document is the page the header sits on.
type Document interface {
	// ElementTop returns the top of the element with id relative to the
	// top of the viewport.
	ElementTop(id string) (int, bool)
	ScrollY() int
	ScrollTo(top int, smooth bool)
	// ReplaceURL rewrites the current history entry without navigating.
	ReplaceURL(url string)
	// SetHash assigns the location fragment directly.
	SetHash(fragment string)
}

// SectionOutcome reports how GoToSection resolved its target.
type SectionOutcome int

const (
	// Scrolled means the anchor was on the current page and was scrolled to.
	Scrolled SectionOutcome = iota
	// HashFallback means the anchor was not rendered yet and the fragment
	// was assigned instead.
	HashFallback
	// Navigated means the router was asked to load another page.
	Navigated
)

func (o SectionOutcome) String() string {
	switch o {
	case Scrolled:
		return "scrolled"
	case HashFallback:
		return "hash"
	default:
		return "navigated"
	}
}

// SectionNavigator scrolls to catalog anchors, crossing pages when needed.
type SectionNavigator struct {
	router    Router
	doc       Document
	clearance int
	smooth    bool
}

// NewSectionNavigator creates a navigator.
func NewSectionNavigator(router Router, doc Document, clearance int, smooth bool) *SectionNavigator {
	return &SectionNavigator{router: router, doc: doc, clearance: clearance, smooth: smooth}
}

// GoToSection brings anchorID on basePath into view. On the current page it
// scrolls to an absolute offset, so repeated calls land in the same place.
// On another page it only navigates; the destination page scrolls once it
// has rendered.
func (s *SectionNavigator) GoToSection(basePath, anchorID string) SectionOutcome {
	target := SectionURL(basePath, anchorID)
	logger := log.LogWithFields(log.F("path", basePath), log.F("anchor", anchorID))

	if s.router.CurrentPath() != basePath {
		s.router.Navigate(target)
		logger.Debug("Navigating to section")
		return Navigated
	}

	top, ok := s.doc.ElementTop(anchorID)
	if !ok {
		s.doc.SetHash(anchorID)
		logger.Debug("Section not rendered, assigned fragment")
		return HashFallback
	}

	offset := top + s.doc.ScrollY() - s.clearance
	if offset < 0 {
		offset = 0
	}
	s.doc.ScrollTo(offset, s.smooth)
	s.doc.ReplaceURL(target)
	logger.With(log.F("offset", offset)).Debug("Scrolled to section")
	return Scrolled
}
