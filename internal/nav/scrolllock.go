package nav

// ScrollLocker suppresses or restores page scrolling, e.g. by setting an
// overflow style on the document root.
type ScrollLocker interface {
	SetScrollLocked(locked bool)
}

// ScrollLock tracks whether this controller currently holds the page's
// scroll lock. It assumes it is the only owner of the flag.
type ScrollLock struct {
	target ScrollLocker
	held   bool
}

// NewScrollLock wraps target. A nil target makes the lock a no-op.
func NewScrollLock(target ScrollLocker) *ScrollLock {
	return &ScrollLock{target: target}
}

// Sync acquires the lock when want is true and releases it otherwise.
// Calls that do not change ownership do not touch the target.
func (l *ScrollLock) Sync(want bool) {
	if l.held == want {
		return
	}
	l.held = want
	if l.target != nil {
		l.target.SetScrollLocked(want)
	}
}

// Release gives the lock back. Safe to call any number of times.
func (l *ScrollLock) Release() {
	l.Sync(false)
}

// Held reports whether the lock is currently held.
func (l *ScrollLock) Held() bool {
	return l.held
}
