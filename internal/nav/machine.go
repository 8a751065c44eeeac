package nav

import "orbiter/internal/log"

// State is a snapshot of the navigation state.
type State struct {
	Mode         Mode
	DrawerOpen   bool
	ActiveMenu   Menu
	ClosePending bool
}

// Deps are the host capabilities the controller drives.
type Deps struct {
	Window    Window
	Document  Document
	Router    Router
	Locker    ScrollLocker
	Scheduler Scheduler
	// Inside covers the dropdown triggers, their lists and the drawer.
	Inside Region
}

// Controller is the navigation state machine.
type Controller struct {
	deps     Deps
	opts     Options
	catalogs map[Menu]Catalog

	width      int
	mode       Mode
	drawerOpen bool
	active     Menu

	lock    *ScrollLock
	hover   *HoverIntent
	outside *OutsideClickWatcher
	section *SectionNavigator

	unsubs    []func()
	mounted   bool
	listeners map[int]func(State)
	nextID    int
}

// New creates an unmounted controller.
func New(deps Deps, opts Options, catalogs ...Catalog) *Controller {
	c := &Controller{
		deps:      deps,
		opts:      opts.normalized(),
		catalogs:  make(map[Menu]Catalog, len(catalogs)),
		listeners: make(map[int]func(State)),
	}
	for _, cat := range catalogs {
		c.catalogs[cat.Menu] = cat
	}
	c.lock = NewScrollLock(deps.Locker)
	c.hover = NewHoverIntent(deps.Scheduler, c.opts.HoverCloseDelay, c.setActive, c.clearActive)
	c.outside = NewOutsideClickWatcher(deps.Inside, c.onOutside)
	c.section = NewSectionNavigator(deps.Router, deps.Document, c.opts.HeaderClearance, c.opts.SmoothScroll)
	return c
}

// Mount classifies the current width and subscribes to the window's resize,
// scroll and pointer-down streams.
func (c *Controller) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	win := c.deps.Window
	c.width = win.Width()
	c.mode = Classify(c.width, c.opts.Breakpoint)
	c.unsubs = append(c.unsubs, win.OnResize(c.onResize), win.OnScroll(c.onScroll))
	c.outside.Attach(win)
	c.lock.Sync(c.drawerOpen)

	log.LogWithFields(log.F("mode", c.mode), log.F("width", c.width)).Debug("Navigation mounted")
	c.notify()
}

// Unmount detaches every listener, cancels the pending close and releases
// the scroll lock.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	c.outside.Detach()
	c.hover.Cancel()
	c.lock.Release()
	log.Debug("Navigation unmounted")
}

// Mounted reports whether the controller is mounted.
func (c *Controller) Mounted() bool { return c.mounted }

// SetOptions replaces the options, re-classifying the last seen width.
func (c *Controller) SetOptions(opts Options) {
	c.opts = opts.normalized()
	c.hover.SetDelay(c.opts.HoverCloseDelay)
	c.section = NewSectionNavigator(c.deps.Router, c.deps.Document, c.opts.HeaderClearance, c.opts.SmoothScroll)
	if c.mounted {
		c.onResize(c.width)
	}
}

// Options returns the active options.
func (c *Controller) Options() Options { return c.opts }

// Catalog returns the catalog behind m.
func (c *Controller) Catalog(m Menu) (Catalog, bool) {
	cat, ok := c.catalogs[m]
	return cat, ok
}

// Subscribe registers fn to be called after every state change.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() { delete(c.listeners, id) }
}

// ToggleDrawer flips the mobile drawer and clears the active dropdown.
func (c *Controller) ToggleDrawer() {
	c.hover.Cancel()
	c.drawerOpen = !c.drawerOpen
	c.active = MenuNone
	log.LogWithFields(log.F("open", c.drawerOpen)).Debug("Drawer toggled")
	c.commit()
}

// CloseDrawer closes the drawer and any dropdown.
func (c *Controller) CloseDrawer() {
	c.closeAll("drawer closed")
}

// TapMenu toggles m between open and closed. It only acts in Mobile mode
// unless tap gating is TapAny.
func (c *Controller) TapMenu(m Menu) {
	if m == MenuNone {
		return
	}
	if c.mode != Mobile && c.opts.TapGating != TapAny {
		return
	}
	c.hover.Cancel()
	if c.active == m {
		c.active = MenuNone
	} else {
		c.active = m
	}
	log.LogWithFields(log.F("menu", m), log.F("active", c.active)).Debug("Menu tapped")
	c.commit()
}

// ClickTrigger handles a click on a desktop trigger's own link.
func (c *Controller) ClickTrigger(m Menu) {
	c.hover.Cancel()
	c.active = MenuNone
	c.commit()
}

// HoverEnter opens m at once. Ignored in Mobile mode.
func (c *Controller) HoverEnter(m Menu) {
	if c.mode != Desktop || m == MenuNone {
		return
	}
	c.hover.Enter(m)
}

// HoverLeave arms the delayed close. Ignored in Mobile mode.
func (c *Controller) HoverLeave() {
	if c.mode != Desktop {
		return
	}
	c.hover.Leave()
	c.notify()
}

// SelectEntry scrolls to the catalog entry and closes everything. It
// reports false when the entry is unknown, which still closes the menus.
func (c *Controller) SelectEntry(m Menu, id string) (SectionOutcome, bool) {
	cat, ok := c.catalogs[m]
	if ok {
		_, ok = cat.Lookup(id)
	}
	if !ok {
		log.LogWithFields(log.F("menu", m), log.F("id", id)).Warn("Unknown catalog entry")
		c.closeAll("unknown entry")
		return Navigated, false
	}
	outcome := c.section.GoToSection(cat.BasePath, id)
	c.closeAll("entry selected")
	return outcome, true
}

// GoToSection exposes the section navigator to the host's own links.
func (c *Controller) GoToSection(basePath, anchorID string) SectionOutcome {
	return c.section.GoToSection(basePath, anchorID)
}

// RouteChanged forces the closed state.
func (c *Controller) RouteChanged(path string) {
	log.LogWithFields(log.F("path", path)).Debug("Route changed")
	c.closeAll("route changed")
}

// DrawerOpen reports whether the mobile drawer is open.
func (c *Controller) DrawerOpen() bool { return c.drawerOpen }

// ActiveMenu returns the open dropdown.
func (c *Controller) ActiveMenu() Menu { return c.active }

// ViewportMode returns the current layout mode.
func (c *Controller) ViewportMode() Mode { return c.mode }

// ChevronRotated reports whether m's chevron points up.
func (c *Controller) ChevronRotated(m Menu) bool {
	return m != MenuNone && c.active == m
}

// DropdownVisible reports whether m's list is shown in the current mode.
// In Mobile mode lists only render inside the open drawer.
func (c *Controller) DropdownVisible(m Menu) bool {
	if !c.ChevronRotated(m) {
		return false
	}
	if c.mode == Mobile {
		return c.drawerOpen
	}
	return true
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	return State{
		Mode:         c.mode,
		DrawerOpen:   c.drawerOpen,
		ActiveMenu:   c.active,
		ClosePending: c.hover.Pending(),
	}
}

func (c *Controller) onResize(width int) {
	c.width = width
	mode := Classify(width, c.opts.Breakpoint)
	if mode == c.mode {
		return
	}
	c.mode = mode
	log.LogWithFields(log.F("mode", mode), log.F("width", width)).Debug("Viewport mode changed")
	c.notify()
}

func (c *Controller) onScroll() {
	if !c.drawerOpen {
		return
	}
	c.closeAll("page scrolled")
}

func (c *Controller) onOutside() {
	if c.active == MenuNone {
		return
	}
	c.hover.Cancel()
	c.active = MenuNone
	log.Debug("Outside click closed dropdown")
	c.commit()
}

func (c *Controller) setActive(m Menu) {
	c.active = m
	c.commit()
}

func (c *Controller) clearActive() {
	c.active = MenuNone
	c.commit()
}

func (c *Controller) closeAll(reason string) {
	c.hover.Cancel()
	if !c.drawerOpen && c.active == MenuNone {
		return
	}
	c.drawerOpen = false
	c.active = MenuNone
	log.LogWithFields(log.F("reason", reason)).Debug("Navigation closed")
	c.commit()
}

func (c *Controller) commit() {
	if c.mounted {
		c.lock.Sync(c.drawerOpen)
	}
	c.notify()
}

func (c *Controller) notify() {
	if len(c.listeners) == 0 {
		return
	}
	s := c.Snapshot()
	for _, fn := range c.listeners {
		fn(s)
	}
}
