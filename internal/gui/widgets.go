//go:build !nogui

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// navLink is a label that reports pointer enter, leave and tap. Header
// triggers, chevrons, dropdown entries and drawer rows are all navLinks.
type navLink struct {
	widget.BaseWidget

	label *widget.Label

	onIn  func()
	onOut func()
	onTap func(fyne.Position)
}

var (
	_ desktop.Hoverable = (*navLink)(nil)
	_ fyne.Tappable     = (*navLink)(nil)
)

func newNavLink(text string, onTap func(fyne.Position)) *navLink {
	l := &navLink{label: widget.NewLabel(text), onTap: onTap}
	l.ExtendBaseWidget(l)
	return l
}

func (l *navLink) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.label)
}

func (l *navLink) SetText(text string) {
	l.label.SetText(text)
}

func (l *navLink) Text() string { return l.label.Text }

func (l *navLink) SetActive(active bool) {
	l.label.TextStyle.Bold = active
	l.label.Refresh()
}

func (l *navLink) MouseIn(*desktop.MouseEvent) {
	if l.onIn != nil {
		l.onIn()
	}
}

func (l *navLink) MouseMoved(*desktop.MouseEvent) {}

func (l *navLink) MouseOut() {
	if l.onOut != nil {
		l.onOut()
	}
}

func (l *navLink) Tapped(ev *fyne.PointEvent) {
	if l.onTap != nil {
		l.onTap(ev.AbsolutePosition)
	}
}

// tapCatcher sits behind the page and reports taps that land on no other
// widget.
type tapCatcher struct {
	widget.BaseWidget

	onTap func(fyne.Position)
}

func newTapCatcher(onTap func(fyne.Position)) *tapCatcher {
	c := &tapCatcher{onTap: onTap}
	c.ExtendBaseWidget(c)
	return c
}

func (c *tapCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (c *tapCatcher) Tapped(ev *fyne.PointEvent) {
	if c.onTap != nil {
		c.onTap(ev.AbsolutePosition)
	}
}
