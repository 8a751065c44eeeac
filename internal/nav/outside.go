package nav

// Point is a pointer position in host coordinates.
type Point struct {
	X, Y int
}

// Region reports whether a point lies inside the navigation subtree.
type Region interface {
	Contains(p Point) bool
}

// RegionFunc adapts a function to Region.
type RegionFunc func(p Point) bool

// Contains calls f.
func (f RegionFunc) Contains(p Point) bool { return f(p) }

// Window is the host's global event source. Each subscription returns its
// own unsubscribe function.
type Window interface {
	Width() int
	OnResize(fn func(width int)) (unsubscribe func())
	OnScroll(fn func()) (unsubscribe func())
	OnPointerDown(fn func(p Point)) (unsubscribe func())
}

// OutsideClickWatcher calls onOutside for every pointer-down that lands
// outside the registered region.
type OutsideClickWatcher struct {
	region    Region
	onOutside func()
	detach    func()
}

// NewOutsideClickWatcher creates a detached watcher.
func NewOutsideClickWatcher(region Region, onOutside func()) *OutsideClickWatcher {
	return &OutsideClickWatcher{region: region, onOutside: onOutside}
}

// Attach subscribes to win's pointer-down stream. Attaching twice replaces
// the previous subscription.
func (w *OutsideClickWatcher) Attach(win Window) {
	w.Detach()
	w.detach = win.OnPointerDown(w.handle)
}

// Detach unsubscribes. Safe to call when not attached.
func (w *OutsideClickWatcher) Detach() {
	if w.detach != nil {
		w.detach()
		w.detach = nil
	}
}

// Attached reports whether the watcher is subscribed.
func (w *OutsideClickWatcher) Attached() bool {
	return w.detach != nil
}

func (w *OutsideClickWatcher) handle(p Point) {
	// Without a registered region there is nothing to be outside of.
	if w.region == nil {
		return
	}
	if !w.region.Contains(p) {
		w.onOutside()
	}
}
