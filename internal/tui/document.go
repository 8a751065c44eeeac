package tui

import (
	"time"

	"orbiter/internal/nav"
	"orbiter/internal/site"

	"github.com/charmbracelet/bubbles/viewport"
)

const scrollFrame = 16 * time.Millisecond

// pageDocument exposes the page viewport to the controller as its
// Document and ScrollLocker.
type pageDocument struct {
	vp      viewport.Model
	layout  site.Layout
	router  *site.Router
	sched   nav.Scheduler
	locked  bool
	anim    nav.Timer
	animTop int
}

func newPageDocument(router *site.Router, sched nav.Scheduler) *pageDocument {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return &pageDocument{vp: vp, router: router, sched: sched}
}

// setLayout swaps the page content, keeping the offset when keep is set.
func (d *pageDocument) setLayout(l site.Layout, keep bool) {
	offset := d.vp.YOffset
	d.layout = l
	d.vp.SetContent(l.Content())
	if keep {
		d.vp.SetYOffset(offset)
	} else {
		d.stopAnimation()
		d.vp.GotoTop()
	}
}

func (d *pageDocument) setSize(width, height int) {
	d.vp.Width = width
	d.vp.Height = max(height, 1)
	d.vp.SetYOffset(d.vp.YOffset)
}

func (d *pageDocument) ElementTop(id string) (int, bool) {
	line, ok := d.layout.Anchors[id]
	if !ok {
		return 0, false
	}
	return line - d.vp.YOffset, true
}

func (d *pageDocument) ScrollY() int { return d.vp.YOffset }

func (d *pageDocument) ScrollTo(top int, smooth bool) {
	d.stopAnimation()
	if !smooth {
		d.vp.SetYOffset(top)
		return
	}
	d.animTop = top
	d.step()
}

// step moves a third of the remaining distance per frame.
func (d *pageDocument) step() {
	d.anim = nil
	before := d.vp.YOffset
	delta := d.animTop - before
	if delta == 0 {
		return
	}
	move := delta / 3
	if move == 0 {
		move = delta / abs(delta)
	}
	d.vp.SetYOffset(before + move)
	if d.vp.YOffset == before || d.vp.YOffset == d.animTop {
		// Reached the target or the viewport clamped us.
		return
	}
	d.anim = d.sched.AfterFunc(scrollFrame, d.step)
}

func (d *pageDocument) stopAnimation() {
	if d.anim != nil {
		d.anim.Stop()
		d.anim = nil
	}
}

func (d *pageDocument) animating() bool { return d.anim != nil }

func (d *pageDocument) ReplaceURL(url string) { d.router.ReplaceURL(url) }

func (d *pageDocument) SetHash(fragment string) { d.router.SetHash(fragment) }

func (d *pageDocument) SetScrollLocked(locked bool) { d.locked = locked }

// jumpTo scrolls to an anchor of the current layout at once.
func (d *pageDocument) jumpTo(id string, clearance int) bool {
	line, ok := d.layout.Anchors[id]
	if !ok {
		return false
	}
	d.stopAnimation()
	d.vp.SetYOffset(max(line-clearance, 0))
	return true
}

// userScroll applies a wheel or key scroll unless the page is locked.
func (d *pageDocument) userScroll(lines int) {
	if d.locked || lines == 0 {
		return
	}
	d.stopAnimation()
	if lines > 0 {
		d.vp.LineDown(lines)
	} else {
		d.vp.LineUp(-lines)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
