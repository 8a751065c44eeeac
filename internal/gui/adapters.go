//go:build !nogui

package gui

import (
	"sync/atomic"
	"time"

	"orbiter/internal/nav"
	"orbiter/internal/site"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

const smoothScrollDuration = 300 * time.Millisecond

// fyneWindow fans canvas resizes, page scrolls and taps out to the
// controller. It is only touched with the host lock held.
type fyneWindow struct {
	width   int
	nextID  int
	resize  map[int]func(int)
	scroll  map[int]func()
	pointer map[int]func(nav.Point)
}

func newFyneWindow(width int) *fyneWindow {
	return &fyneWindow{
		width:   width,
		resize:  map[int]func(int){},
		scroll:  map[int]func(){},
		pointer: map[int]func(nav.Point){},
	}
}

func (w *fyneWindow) Width() int { return w.width }

func (w *fyneWindow) OnResize(fn func(int)) func() {
	w.nextID++
	id := w.nextID
	w.resize[id] = fn
	return func() { delete(w.resize, id) }
}

func (w *fyneWindow) OnScroll(fn func()) func() {
	w.nextID++
	id := w.nextID
	w.scroll[id] = fn
	return func() { delete(w.scroll, id) }
}

func (w *fyneWindow) OnPointerDown(fn func(nav.Point)) func() {
	w.nextID++
	id := w.nextID
	w.pointer[id] = fn
	return func() { delete(w.pointer, id) }
}

func (w *fyneWindow) setWidth(width int) {
	if width == w.width {
		return
	}
	w.width = width
	for _, fn := range w.resize {
		fn(width)
	}
}

func (w *fyneWindow) emitScroll() {
	for _, fn := range w.scroll {
		fn()
	}
}

func (w *fyneWindow) emitPointerDown(p nav.Point) {
	for _, fn := range w.pointer {
		fn(p)
	}
}

// scrollDocument is the page inside a container.Scroll, measured in
// device independent pixels.
type scrollDocument struct {
	scroll   *container.Scroll
	anchors  map[string]fyne.CanvasObject
	router   *site.Router
	dispatch func(func())
	anim     *fyne.Animation
	animGen  int
	locked   bool
	lockedAt float32

	// applying is set while the host moves the offset itself, so the
	// resulting OnScrolled callback is not mistaken for the user.
	applying atomic.Bool
}

func newScrollDocument(router *site.Router, dispatch func(func())) *scrollDocument {
	return &scrollDocument{
		scroll:   container.NewVScroll(nil),
		anchors:  map[string]fyne.CanvasObject{},
		router:   router,
		dispatch: dispatch,
	}
}

func (d *scrollDocument) ElementTop(id string) (int, bool) {
	obj, ok := d.anchors[id]
	if !ok {
		return 0, false
	}
	return int(obj.Position().Y - d.scroll.Offset.Y), true
}

func (d *scrollDocument) ScrollY() int { return int(d.scroll.Offset.Y) }

func (d *scrollDocument) ScrollTo(top int, smooth bool) {
	d.stopAnimation()
	target := d.clamp(float32(top))
	if !smooth {
		d.setOffset(target)
		return
	}
	d.anim = fyne.NewAnimation(smoothScrollDuration, d.animStep(d.scroll.Offset.Y, target))
	d.anim.Curve = fyne.AnimationEaseOut
	d.anim.Start()
}

// animStep returns the tick of a scroll from start to target. Ticks arrive
// on fyne's animation goroutine and are handed to the host loop; one that
// lands after the animation was stopped or replaced is dropped.
func (d *scrollDocument) animStep(start, target float32) func(float32) {
	gen := d.animGen
	return func(f float32) {
		d.dispatch(func() {
			if d.animGen != gen {
				return
			}
			d.setOffset(start + (target-start)*f)
		})
	}
}

func (d *scrollDocument) ReplaceURL(url string) { d.router.ReplaceURL(url) }

func (d *scrollDocument) SetHash(fragment string) { d.router.SetHash(fragment) }

func (d *scrollDocument) SetScrollLocked(locked bool) {
	d.locked = locked
	d.lockedAt = d.scroll.Offset.Y
}

func (d *scrollDocument) clamp(y float32) float32 {
	if d.scroll.Content == nil {
		return 0
	}
	maxY := d.scroll.Content.MinSize().Height - d.scroll.Size().Height
	if y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	return y
}

func (d *scrollDocument) setOffset(y float32) {
	d.applying.Store(true)
	defer d.applying.Store(false)
	d.scroll.Offset.Y = y
	d.scroll.Refresh()
}

func (d *scrollDocument) stopAnimation() {
	d.animGen++
	if d.anim != nil {
		d.anim.Stop()
		d.anim = nil
	}
}

// setContent swaps the page and its anchors and returns to the top.
func (d *scrollDocument) setContent(content fyne.CanvasObject, anchors map[string]fyne.CanvasObject) {
	d.stopAnimation()
	d.anchors = anchors
	d.applying.Store(true)
	defer d.applying.Store(false)
	d.scroll.Offset = fyne.NewPos(0, 0)
	d.scroll.Content = content
	d.scroll.Refresh()
}

// jumpTo moves to an anchor of the current page at once.
func (d *scrollDocument) jumpTo(id string, clearance int) bool {
	obj, ok := d.anchors[id]
	if !ok {
		return false
	}
	d.stopAnimation()
	d.setOffset(d.clamp(obj.Position().Y - float32(clearance)))
	return true
}

// afterFuncScheduler runs controller tasks on their own goroutine through
// the host's dispatcher.
type afterFuncScheduler struct {
	dispatch func(func())
}

func (s afterFuncScheduler) AfterFunc(d time.Duration, fn func()) nav.Timer {
	return time.AfterFunc(d, func() { s.dispatch(fn) })
}

// resizeLayout stretches its single child over the window and reports
// width changes. Layout may run inside a locked refresh, so widths are
// handed to run's goroutine rather than delivered in place.
type resizeLayout struct {
	last    int
	pending atomic.Int64
	notify  chan struct{}
}

func newResizeLayout() *resizeLayout {
	return &resizeLayout{notify: make(chan struct{}, 1)}
}

// run calls fn on the calling goroutine until stop is closed. Every call
// carries the newest width, so a burst of resizes always settles on the
// last one.
func (l *resizeLayout) run(fn func(int), stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-l.notify:
			fn(int(l.pending.Load()))
		}
	}
}

func (l *resizeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
	if w := int(size.Width); w != l.last {
		l.last = w
		l.pending.Store(int64(w))
		select {
		case l.notify <- struct{}{}:
		default:
		}
	}
}

func (l *resizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	ms := fyne.NewSize(0, 0)
	for _, o := range objects {
		ms = ms.Max(o.MinSize())
	}
	return ms
}
