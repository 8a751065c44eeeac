package nav

import "time"

// DefaultHoverCloseDelay is how long a desktop dropdown stays open after the
// pointer leaves its hover region.
const DefaultHoverCloseDelay = 200 * time.Millisecond

// Timer is a cancellable delayed task.
type Timer interface {
	// Stop cancels the task. It reports whether the task was still pending.
	Stop() bool
}

// Scheduler runs fn after d on the host's event loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// HoverIntent turns pointer enter/leave into dropdown open/close requests.
// Opening is immediate; closing is deferred by delay and cancelled by any
// re-entry. At most one close is outstanding.
type HoverIntent struct {
	sched   Scheduler
	delay   time.Duration
	open    func(Menu)
	close   func()
	pending Timer
	// gen identifies the armed close so a callback that was already
	// dispatched when Stop ran cannot close a later dropdown.
	gen uint64
}

// NewHoverIntent creates a hover-intent debouncer.
func NewHoverIntent(sched Scheduler, delay time.Duration, open func(Menu), close func()) *HoverIntent {
	return &HoverIntent{sched: sched, delay: delay, open: open, close: close}
}

// Enter cancels any pending close and opens m.
func (h *HoverIntent) Enter(m Menu) {
	h.Cancel()
	h.open(m)
}

// Leave arms a close after the configured delay, replacing any armed one.
func (h *HoverIntent) Leave() {
	h.Cancel()
	h.gen++
	gen := h.gen
	h.pending = h.sched.AfterFunc(h.delay, func() {
		if gen != h.gen || h.pending == nil {
			return
		}
		h.pending = nil
		h.close()
	})
}

// Cancel drops the pending close, if any.
func (h *HoverIntent) Cancel() {
	if h.pending == nil {
		return
	}
	h.pending.Stop()
	h.pending = nil
	h.gen++
}

// Pending reports whether a close is armed.
func (h *HoverIntent) Pending() bool {
	return h.pending != nil
}

// SetDelay changes the delay used by the next Leave.
func (h *HoverIntent) SetDelay(d time.Duration) {
	h.delay = d
}
