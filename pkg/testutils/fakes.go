package testutils

import (
	"sort"
	"time"

	"orbiter/internal/nav"
)

// FakeWindow is a nav.Window driven by the test.
type FakeWindow struct {
	width   int
	nextID  int
	resize  map[int]func(int)
	scroll  map[int]func()
	pointer map[int]func(nav.Point)
}

// NewFakeWindow creates a window of the given width.
func NewFakeWindow(width int) *FakeWindow {
	return &FakeWindow{
		width:   width,
		resize:  make(map[int]func(int)),
		scroll:  make(map[int]func()),
		pointer: make(map[int]func(nav.Point)),
	}
}

func (w *FakeWindow) Width() int { return w.width }

func (w *FakeWindow) OnResize(fn func(int)) func() {
	id := w.id()
	w.resize[id] = fn
	return func() { delete(w.resize, id) }
}

func (w *FakeWindow) OnScroll(fn func()) func() {
	id := w.id()
	w.scroll[id] = fn
	return func() { delete(w.scroll, id) }
}

func (w *FakeWindow) OnPointerDown(fn func(nav.Point)) func() {
	id := w.id()
	w.pointer[id] = fn
	return func() { delete(w.pointer, id) }
}

// Resize changes the width and notifies listeners.
func (w *FakeWindow) Resize(width int) {
	w.width = width
	for _, fn := range w.resize {
		fn(width)
	}
}

// Scroll notifies scroll listeners.
func (w *FakeWindow) Scroll() {
	for _, fn := range w.scroll {
		fn()
	}
}

// PointerDown notifies pointer-down listeners.
func (w *FakeWindow) PointerDown(p nav.Point) {
	for _, fn := range w.pointer {
		fn(p)
	}
}

// Listeners returns the number of live subscriptions.
func (w *FakeWindow) Listeners() int {
	return len(w.resize) + len(w.scroll) + len(w.pointer)
}

func (w *FakeWindow) id() int {
	w.nextID++
	return w.nextID
}

// ScrollCall records one ScrollTo.
type ScrollCall struct {
	Top    int
	Smooth bool
}

// FakeDocument is a nav.Document with anchors at fixed absolute offsets.
type FakeDocument struct {
	Anchors  map[string]int
	Y        int
	Scrolls  []ScrollCall
	Replaced []string
	Hashes   []string
}

// NewFakeDocument creates a document with the given absolute anchor offsets.
func NewFakeDocument(anchors map[string]int) *FakeDocument {
	if anchors == nil {
		anchors = map[string]int{}
	}
	return &FakeDocument{Anchors: anchors}
}

func (d *FakeDocument) ElementTop(id string) (int, bool) {
	abs, ok := d.Anchors[id]
	if !ok {
		return 0, false
	}
	return abs - d.Y, true
}

func (d *FakeDocument) ScrollY() int { return d.Y }

func (d *FakeDocument) ScrollTo(top int, smooth bool) {
	d.Y = top
	d.Scrolls = append(d.Scrolls, ScrollCall{Top: top, Smooth: smooth})
}

func (d *FakeDocument) ReplaceURL(url string) { d.Replaced = append(d.Replaced, url) }

func (d *FakeDocument) SetHash(fragment string) { d.Hashes = append(d.Hashes, fragment) }

// FakeRouter is a nav.Router recording navigations.
type FakeRouter struct {
	Path      string
	Navigated []string
}

func (r *FakeRouter) CurrentPath() string { return r.Path }

func (r *FakeRouter) Navigate(url string) { r.Navigated = append(r.Navigated, url) }

// FakeLocker is a nav.ScrollLocker recording every call.
type FakeLocker struct {
	Locked bool
	Calls  []bool
}

func (l *FakeLocker) SetScrollLocked(locked bool) {
	l.Locked = locked
	l.Calls = append(l.Calls, locked)
}

// RectRegion is a nav.Region made of rectangles, bounds inclusive.
type RectRegion []Rect

// Rect is an axis-aligned rectangle.
type Rect struct {
	X0, Y0, X1, Y1 int
}

func (r RectRegion) Contains(p nav.Point) bool {
	for _, rc := range r {
		if p.X >= rc.X0 && p.X <= rc.X1 && p.Y >= rc.Y0 && p.Y <= rc.Y1 {
			return true
		}
	}
	return false
}

// ManualScheduler is a nav.Scheduler on a virtual clock.
type ManualScheduler struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
	fired  int
}

type manualTimer struct {
	at   time.Duration
	seq  int
	fn   func()
	live bool
}

func (t *manualTimer) Stop() bool {
	was := t.live
	t.live = false
	return was
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) nav.Timer {
	s.seq++
	t := &manualTimer{at: s.now + d, seq: s.seq, fn: fn, live: true}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward, running due timers in order.
func (s *ManualScheduler) Advance(d time.Duration) {
	end := s.now + d
	for {
		next := s.nextDue(end)
		if next == nil {
			break
		}
		s.now = next.at
		next.live = false
		s.fired++
		next.fn()
	}
	s.now = end
	s.compact()
}

// Pending returns the number of timers that have not fired or stopped.
func (s *ManualScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.live {
			n++
		}
	}
	return n
}

// Fired returns how many timers have run.
func (s *ManualScheduler) Fired() int { return s.fired }

func (s *ManualScheduler) nextDue(end time.Duration) *manualTimer {
	var due []*manualTimer
	for _, t := range s.timers {
		if t.live && t.at <= end {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at == due[j].at {
			return due[i].seq < due[j].seq
		}
		return due[i].at < due[j].at
	})
	return due[0]
}

func (s *ManualScheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if t.live {
			live = append(live, t)
		}
	}
	s.timers = live
}
