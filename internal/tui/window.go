package tui

import "orbiter/internal/nav"

// teaWindow fans bubbletea size, wheel and mouse events out to the
// controller's subscriptions.
type teaWindow struct {
	width   int
	height  int
	nextID  int
	resize  map[int]func(int)
	scroll  map[int]func()
	pointer map[int]func(nav.Point)
}

func newTeaWindow(width, height int) *teaWindow {
	return &teaWindow{
		width:   width,
		height:  height,
		resize:  make(map[int]func(int)),
		scroll:  make(map[int]func()),
		pointer: make(map[int]func(nav.Point)),
	}
}

func (w *teaWindow) Width() int { return w.width }

func (w *teaWindow) OnResize(fn func(int)) func() {
	w.nextID++
	id := w.nextID
	w.resize[id] = fn
	return func() { delete(w.resize, id) }
}

func (w *teaWindow) OnScroll(fn func()) func() {
	w.nextID++
	id := w.nextID
	w.scroll[id] = fn
	return func() { delete(w.scroll, id) }
}

func (w *teaWindow) OnPointerDown(fn func(nav.Point)) func() {
	w.nextID++
	id := w.nextID
	w.pointer[id] = fn
	return func() { delete(w.pointer, id) }
}

func (w *teaWindow) setSize(width, height int) {
	w.height = height
	if width == w.width {
		return
	}
	w.width = width
	for _, fn := range w.resize {
		fn(width)
	}
}

func (w *teaWindow) emitScroll() {
	for _, fn := range w.scroll {
		fn()
	}
}

func (w *teaWindow) emitPointerDown(p nav.Point) {
	for _, fn := range w.pointer {
		fn(p)
	}
}

func (w *teaWindow) listeners() int {
	return len(w.resize) + len(w.scroll) + len(w.pointer)
}
