package nav

// Mode is the binary layout mode of the header.
type Mode int

const (
	Desktop Mode = iota
	Mobile
)

// DefaultBreakpoint is the pixel width at which the header switches to
// desktop layout.
const DefaultBreakpoint = 1024

func (m Mode) String() string {
	if m == Mobile {
		return "mobile"
	}
	return "desktop"
}

// Classify maps a window width to a Mode. Widths at or above breakpoint are
// Desktop. There is no hysteresis.
func Classify(width, breakpoint int) Mode {
	if width >= breakpoint {
		return Desktop
	}
	return Mobile
}
