package nav

import (
	"strings"
	"time"
)

// TapGating selects in which viewport modes a tap on a dropdown trigger
// toggles the dropdown.
type TapGating int

const (
	// TapMobileOnly toggles on tap only in Mobile mode; desktop relies on hover.
	TapMobileOnly TapGating = iota
	// TapAny toggles on tap in both modes.
	TapAny
)

func (g TapGating) String() string {
	if g == TapAny {
		return "any"
	}
	return "mobile"
}

// ParseTapGating parses "mobile" or "any".
func ParseTapGating(s string) (TapGating, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mobile":
		return TapMobileOnly, true
	case "any":
		return TapAny, true
	}
	return TapMobileOnly, false
}

// Options tunes the controller.
type Options struct {
	Breakpoint      int
	HoverCloseDelay time.Duration
	HeaderClearance int
	TapGating       TapGating
	SmoothScroll    bool
}

// DefaultOptions returns the pixel-host defaults.
func DefaultOptions() Options {
	return Options{
		Breakpoint:      DefaultBreakpoint,
		HoverCloseDelay: DefaultHoverCloseDelay,
		HeaderClearance: DefaultHeaderClearance,
		TapGating:       TapMobileOnly,
		SmoothScroll:    true,
	}
}

func (o Options) normalized() Options {
	if o.Breakpoint <= 0 {
		o.Breakpoint = DefaultBreakpoint
	}
	if o.HoverCloseDelay <= 0 {
		o.HoverCloseDelay = DefaultHoverCloseDelay
	}
	if o.HeaderClearance < 0 {
		o.HeaderClearance = 0
	}
	return o
}
