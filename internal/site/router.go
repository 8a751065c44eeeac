package site

import (
	"orbiter/internal/log"
	"orbiter/internal/nav"
)

// Location is one history entry.
type Location struct {
	Path     string
	Fragment string
}

// URL formats the location as path#fragment.
func (l Location) URL() string {
	if l.Fragment == "" {
		return l.Path
	}
	return nav.SectionURL(l.Path, l.Fragment)
}

// ParseLocation splits a site URL.
func ParseLocation(url string) Location {
	path, frag := nav.SplitURL(url)
	if path == "" {
		path = "/"
	}
	return Location{Path: path, Fragment: frag}
}

// ChangeKind says why the location changed.
type ChangeKind int

const (
	Push ChangeKind = iota
	Pop
	HashChange
)

// Change is delivered to router subscribers.
type Change struct {
	Kind     ChangeKind
	Location Location
	// PathChanged is false when only the fragment moved.
	PathChanged bool
}

// Router is an in-memory browser history.
type Router struct {
	history   []Location
	listeners map[int]func(Change)
	nextID    int
}

// NewRouter starts at url.
func NewRouter(url string) *Router {
	return &Router{
		history:   []Location{ParseLocation(url)},
		listeners: make(map[int]func(Change)),
	}
}

// OnChange subscribes to location changes.
func (r *Router) OnChange(fn func(Change)) (unsubscribe func()) {
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	return func() { delete(r.listeners, id) }
}

// Current returns the top history entry.
func (r *Router) Current() Location {
	return r.history[len(r.history)-1]
}

// CurrentPath returns the path of the top entry.
func (r *Router) CurrentPath() string {
	return r.Current().Path
}

// Navigate pushes url and notifies subscribers.
func (r *Router) Navigate(url string) {
	prev := r.Current()
	loc := ParseLocation(url)
	r.history = append(r.history, loc)
	log.LogWithFields(log.F("url", loc.URL())).Debug("Router push")
	r.emit(Change{Kind: Push, Location: loc, PathChanged: loc.Path != prev.Path})
}

// ReplaceURL rewrites the top entry without notifying.
func (r *Router) ReplaceURL(url string) {
	r.history[len(r.history)-1] = ParseLocation(url)
}

// SetHash updates the top entry's fragment and notifies subscribers so
// the page can jump to it.
func (r *Router) SetHash(fragment string) {
	top := &r.history[len(r.history)-1]
	top.Fragment = fragment
	r.emit(Change{Kind: HashChange, Location: *top})
}

// Back pops the top entry. It reports false at the start of history.
func (r *Router) Back() bool {
	if len(r.history) < 2 {
		return false
	}
	prev := r.Current()
	r.history = r.history[:len(r.history)-1]
	loc := r.Current()
	r.emit(Change{Kind: Pop, Location: loc, PathChanged: loc.Path != prev.Path})
	return true
}

// Depth returns the number of history entries.
func (r *Router) Depth() int {
	return len(r.history)
}

func (r *Router) emit(c Change) {
	for _, fn := range r.listeners {
		fn(c)
	}
}
