//go:build !nogui

// Package gui is the fyne front end. It hosts the navigation controller
// behind a single lock: widget callbacks, timers and config reloads all
// enter through Host.do.
package gui

import (
	"context"
	"image/color"
	"sync"

	"orbiter/internal/config"
	"orbiter/internal/lead"
	"orbiter/internal/log"
	"orbiter/internal/nav"
	"orbiter/internal/site"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	chevronDown = "▾"
	chevronUp   = "▴"
)

var (
	defaultWindowSize = fyne.NewSize(1280, 800)
	accentColor       = color.NRGBA{R: 22, G: 163, B: 74, A: 255}
	panelColor        = color.NRGBA{R: 24, G: 24, B: 24, A: 245}
)

// Host is the desktop window around one navigation controller.
type Host struct {
	mu sync.Mutex

	fyneApp fyne.App
	win     fyne.Window
	cfg     *config.Config
	content *site.Content
	router  *site.Router
	ctrl    *nav.Controller
	client  *lead.Client
	sched   nav.Scheduler

	window   *fyneWindow
	doc      *scrollDocument
	resize   *resizeLayout
	stop     chan struct{}
	stopOnce sync.Once

	root      *fyne.Container
	overlay   *fyne.Container
	linkBar   *fyne.Container
	header    *fyne.Container
	hamburger *navLink
	links     map[string]*navLink
	triggers  map[nav.Menu]*navLink
	chevrons  map[nav.Menu]*navLink
	dropdown  *fyne.Container
	dropMenu  nav.Menu
	entries   []*navLink
	drawer    *fyne.Container
	drawerFor nav.Menu
	drawerRow []*navLink
	status    *widget.Label
	form      *leadForm

	page   site.Page
	unsubs []func()
}

// Option configures a Host.
type Option func(*Host)

// WithApp runs the host on an existing fyne app, e.g. test.NewApp().
func WithApp(a fyne.App) Option {
	return func(h *Host) { h.fyneApp = a }
}

// WithScheduler replaces the time.AfterFunc scheduler.
func WithScheduler(s nav.Scheduler) Option {
	return func(h *Host) { h.sched = s }
}

// WithClient replaces the lead submission client.
func WithClient(c *lead.Client) Option {
	return func(h *Host) { h.client = c }
}

// New builds the window and mounts the controller. Widths are device
// independent pixels, so the desktop breakpoint and header clearance are
// the pixel defaults rather than the terminal values from the config.
func New(cfg *config.Config, content *site.Content, opts ...Option) *Host {
	if cfg == nil {
		cfg = config.New()
	}
	h := &Host{
		cfg:      cfg,
		content:  content,
		router:   site.NewRouter(cfg.Site.StartPath),
		client:   lead.NewClient(cfg.Lead.Endpoint, cfg.Lead.Timeout),
		links:    map[string]*navLink{},
		triggers: map[nav.Menu]*navLink{},
		chevrons: map[nav.Menu]*navLink{},
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.fyneApp == nil {
		h.fyneApp = app.NewWithID("io.github.orbiter")
	}
	if h.sched == nil {
		h.sched = afterFuncScheduler{dispatch: h.do}
	}

	h.win = h.fyneApp.NewWindow(content.Brand)
	h.window = newFyneWindow(int(defaultWindowSize.Width))
	h.doc = newScrollDocument(h.router, h.do)
	h.doc.scroll.OnScrolled = func(fyne.Position) {
		if h.doc.applying.Load() {
			return
		}
		h.do(h.userScrolled)
	}
	h.form = newLeadForm(h.submitLead)

	h.ctrl = nav.New(nav.Deps{
		Window:    h.window,
		Document:  h.doc,
		Router:    h.router,
		Locker:    h.doc,
		Scheduler: h.sched,
		Inside:    nav.RegionFunc(h.inside),
	}, guiOptions(cfg), content.Catalogs()...)

	h.build()
	h.unsubs = append(h.unsubs,
		h.ctrl.Subscribe(func(nav.State) { h.render() }),
		h.router.OnChange(h.onRoute),
	)
	h.ctrl.Mount()
	h.loadPage(h.router.Current())
	h.render()
	return h
}

func guiOptions(cfg *config.Config) nav.Options {
	opts := cfg.NavOptions()
	opts.Breakpoint = nav.DefaultBreakpoint
	opts.HeaderClearance = nav.DefaultHeaderClearance
	return opts
}

// do runs fn with the host lock held.
func (h *Host) do(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn()
}

// Run shows the window and blocks until it is closed.
func (h *Host) Run() {
	go h.resize.run(func(w int) { h.do(func() { h.window.setWidth(w) }) }, h.stop)
	h.win.Resize(defaultWindowSize)
	h.win.SetOnClosed(h.Close)
	h.win.ShowAndRun()
}

// Close unmounts the controller.
func (h *Host) Close() {
	h.stopOnce.Do(func() { close(h.stop) })
	h.do(func() {
		h.ctrl.Unmount()
		for _, unsub := range h.unsubs {
			unsub()
		}
		h.unsubs = nil
	})
}

// Apply takes a reloaded configuration.
func (h *Host) Apply(cfg *config.Config) {
	h.do(func() {
		h.cfg = cfg
		h.client = lead.NewClient(cfg.Lead.Endpoint, cfg.Lead.Timeout)
		h.ctrl.SetOptions(guiOptions(cfg))
		h.status.SetText("Configuration reloaded")
	})
}

// Watch applies every config the channel delivers until it closes.
func (h *Host) Watch(updates <-chan *config.Config) {
	go func() {
		for cfg := range updates {
			h.Apply(cfg)
		}
	}()
}

// ShowError reports err in a dialog.
func (h *Host) ShowError(title string, err error) {
	log.LogWithError(err).Error(title)
	dialog.ShowError(err, h.win)
}

// ShowInfo shows message in a dialog.
func (h *Host) ShowInfo(message string) {
	dialog.ShowInformation(h.content.Brand, message, h.win)
}

func (h *Host) build() {
	brand := newNavLink(h.content.Brand, func(p fyne.Position) {
		h.tap(p, func() { h.router.Navigate("/") })
	})
	brand.SetActive(true)

	h.linkBar = container.NewHBox()
	for _, link := range h.content.Links {
		m := link.NavMenu()
		l := newNavLink(link.Label, func(p fyne.Position) {
			h.tap(p, func() {
				if m != nav.MenuNone {
					h.ctrl.ClickTrigger(m)
				}
				h.router.Navigate(link.Path)
			})
		})
		h.links[link.Path] = l
		h.linkBar.Add(l)
		if m == nav.MenuNone {
			continue
		}
		l.onIn = func() { h.do(func() { h.ctrl.HoverEnter(m) }) }
		l.onOut = func() { h.do(h.ctrl.HoverLeave) }
		h.triggers[m] = l

		chev := newNavLink(chevronDown, func(p fyne.Position) {
			h.tap(p, func() { h.ctrl.TapMenu(m) })
		})
		chev.onIn, chev.onOut = l.onIn, l.onOut
		h.chevrons[m] = chev
		h.linkBar.Add(chev)
	}

	h.hamburger = newNavLink("☰", func(p fyne.Position) {
		h.tap(p, h.ctrl.ToggleDrawer)
	})

	bar := container.NewHBox(brand, layout.NewSpacer(), h.linkBar, h.hamburger)
	h.header = container.NewVBox(bar, widget.NewSeparator())
	h.status = widget.NewLabel("")

	h.dropdown = container.NewWithoutLayout()
	h.drawer = container.NewWithoutLayout()
	h.dropdown.Hide()
	h.drawer.Hide()
	h.overlay = container.NewWithoutLayout(h.dropdown, h.drawer)

	body := container.NewBorder(h.header, h.status, nil, nil, h.doc.scroll)
	h.resize = newResizeLayout()
	h.root = container.New(h.resize, container.NewStack(body, h.overlay))
	h.win.SetContent(h.root)
	h.win.SetMainMenu(h.mainMenu())
}

// mainMenu lists every catalog entry, selecting it like a dropdown entry.
func (h *Host) mainMenu() *fyne.MainMenu {
	var menus []*fyne.Menu
	for _, m := range nav.Menus {
		cat, ok := h.ctrl.Catalog(m)
		if !ok {
			continue
		}
		var items []*fyne.MenuItem
		for _, e := range cat.Entries {
			items = append(items, fyne.NewMenuItem(e.Label, func() {
				h.do(func() { h.ctrl.SelectEntry(m, e.ID) })
			}))
		}
		label := m.String()
		if link, ok := h.content.LinkFor(m); ok {
			label = link.Label
		}
		menus = append(menus, fyne.NewMenu(label, items...))
	}
	return fyne.NewMainMenu(menus...)
}

// tap reports a pointer down at p and then runs action, both under the
// lock.
func (h *Host) tap(p fyne.Position, action func()) {
	h.do(func() {
		h.window.emitPointerDown(nav.Point{X: int(p.X), Y: int(p.Y)})
		if action != nil {
			action()
		}
	})
}

func (h *Host) userScrolled() {
	wasLocked, at := h.doc.locked, h.doc.lockedAt
	h.window.emitScroll()
	if wasLocked {
		h.doc.setOffset(at)
	}
}

// inside reports whether p is on a trigger, its chevron, an open dropdown
// or the open drawer.
func (h *Host) inside(p nav.Point) bool {
	objs := make([]fyne.CanvasObject, 0, 2*len(h.triggers)+2)
	for m, t := range h.triggers {
		objs = append(objs, t, h.chevrons[m])
	}
	if h.dropdown.Visible() {
		objs = append(objs, h.dropdown)
	}
	if h.drawer.Visible() {
		objs = append(objs, h.drawer)
	}
	for _, o := range objs {
		if contains(o, p) {
			return true
		}
	}
	return false
}

func contains(o fyne.CanvasObject, p nav.Point) bool {
	pos := absPosition(o)
	size := o.Size()
	x, y := float32(p.X), float32(p.Y)
	return x >= pos.X && x <= pos.X+size.Width && y >= pos.Y && y <= pos.Y+size.Height
}

func absPosition(o fyne.CanvasObject) fyne.Position {
	return fyne.CurrentApp().Driver().AbsolutePositionForObject(o)
}

func (h *Host) onRoute(c site.Change) {
	h.status.SetText(c.Location.URL())
	if c.Kind == site.HashChange || !c.PathChanged {
		if c.Location.Fragment != "" {
			h.doc.jumpTo(c.Location.Fragment, h.ctrl.Options().HeaderClearance)
		}
		return
	}
	h.loadPage(c.Location)
	h.ctrl.RouteChanged(c.Location.Path)
}

func (h *Host) loadPage(loc site.Location) {
	h.page = h.content.Page(loc.Path)

	box := container.NewVBox()
	anchors := map[string]fyne.CanvasObject{}
	title := widget.NewLabelWithStyle(h.page.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	box.Add(title)
	for _, s := range h.page.Sections {
		sec := sectionView(s)
		if s.Embed == site.EmbedLeadForm {
			sec.Add(h.form.view())
		}
		anchors[s.ID] = sec
		box.Add(sec)
	}

	catcher := newTapCatcher(func(p fyne.Position) { h.tap(p, nil) })
	h.doc.setContent(container.NewStack(catcher, box), anchors)
	if loc.Fragment != "" {
		h.doc.jumpTo(loc.Fragment, h.ctrl.Options().HeaderClearance)
	}
	for path, l := range h.links {
		l.SetActive(false)
		if link, ok := h.content.ActiveLink(loc.Path); ok && link.Path == path {
			l.SetActive(true)
		}
	}
	h.status.SetText(loc.URL())
}

func sectionView(s site.Section) *fyne.Container {
	sec := container.NewVBox()
	if s.Heading != "" {
		sec.Add(widget.NewLabelWithStyle(s.Heading, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	}
	if s.Subheading != "" {
		sec.Add(widget.NewLabelWithStyle(s.Subheading, fyne.TextAlignLeading, fyne.TextStyle{Italic: true}))
	}
	if s.Body != "" {
		body := widget.NewLabel(s.Body)
		body.Wrapping = fyne.TextWrapWord
		sec.Add(body)
	}
	if s.Note != "" {
		note := canvas.NewText(s.Note, theme.PlaceHolderColor())
		note.TextSize = theme.CaptionTextSize()
		sec.Add(note)
	}
	return sec
}

// render brings the widgets in line with the controller state.
func (h *Host) render() {
	st := h.ctrl.Snapshot()
	mobile := st.Mode == nav.Mobile

	setVisible(h.linkBar, !mobile)
	setVisible(h.hamburger, mobile)
	for m, chev := range h.chevrons {
		text := chevronDown
		if h.ctrl.ChevronRotated(m) {
			text = chevronUp
		}
		chev.SetText(text)
	}

	h.renderDropdown(st)
	h.renderDrawer(st)
	h.overlay.Refresh()
}

func setVisible(o fyne.CanvasObject, visible bool) {
	if visible {
		o.Show()
	} else {
		o.Hide()
	}
}

// renderDropdown rebuilds the list only when a different menu opens, so
// the entry under the pointer keeps its hover.
func (h *Host) renderDropdown(st nav.State) {
	trigger, ok := h.triggers[st.ActiveMenu]
	if st.Mode != nav.Desktop || !ok {
		if h.dropMenu != nav.MenuNone {
			h.dropdown.RemoveAll()
			h.dropdown.Hide()
			h.dropMenu = nav.MenuNone
			h.entries = nil
		}
		return
	}
	if h.dropdown.Visible() && h.dropMenu == st.ActiveMenu {
		return
	}
	h.dropdown.RemoveAll()
	h.dropMenu = st.ActiveMenu
	h.entries = nil
	cat, _ := h.ctrl.Catalog(st.ActiveMenu)
	list := container.NewVBox()
	for _, e := range cat.Entries {
		list.Add(h.entryLink(st.ActiveMenu, e, true))
	}
	panel := container.NewStack(canvas.NewRectangle(panelColor), container.NewPadded(list))
	size := panel.MinSize()
	panel.Resize(size)
	h.dropdown.Add(panel)

	pos := absPosition(trigger).Subtract(absPosition(h.overlay))
	h.dropdown.Move(pos.AddXY(0, trigger.Size().Height))
	h.dropdown.Resize(size)
	h.dropdown.Show()
}

func (h *Host) entryLink(m nav.Menu, e nav.Entry, hover bool) *navLink {
	id := e.ID
	l := newNavLink(e.Label, func(p fyne.Position) {
		h.tap(p, func() { h.ctrl.SelectEntry(m, id) })
	})
	if hover {
		l.onIn = func() { h.do(func() { h.ctrl.HoverEnter(m) }) }
		l.onOut = func() { h.do(h.ctrl.HoverLeave) }
	}
	h.entries = append(h.entries, l)
	return l
}

func (h *Host) renderDrawer(st nav.State) {
	if st.Mode != nav.Mobile || !st.DrawerOpen {
		h.drawer.RemoveAll()
		h.drawer.Hide()
		h.drawerRow = nil
		return
	}
	if h.drawer.Visible() && h.drawerFor == st.ActiveMenu {
		return
	}
	h.drawer.RemoveAll()
	h.drawerFor = st.ActiveMenu
	h.drawerRow = nil
	h.entries = nil

	closeBtn := newNavLink("✕ Close", func(p fyne.Position) {
		h.tap(p, h.ctrl.CloseDrawer)
	})
	rows := container.NewVBox(container.NewHBox(layout.NewSpacer(), closeBtn))
	h.drawerRow = append(h.drawerRow, closeBtn)

	for _, link := range h.content.Links {
		m := link.NavMenu()
		l := newNavLink(link.Label, func(p fyne.Position) {
			h.tap(p, func() {
				h.ctrl.CloseDrawer()
				h.router.Navigate(link.Path)
			})
		})
		h.drawerRow = append(h.drawerRow, l)
		if m == nav.MenuNone {
			rows.Add(l)
			continue
		}
		text := chevronDown
		if h.ctrl.ChevronRotated(m) {
			text = chevronUp
		}
		chev := newNavLink(text, func(p fyne.Position) {
			h.tap(p, func() { h.ctrl.TapMenu(m) })
		})
		h.drawerRow = append(h.drawerRow, chev)
		rows.Add(container.NewHBox(l, chev))
		if h.ctrl.DropdownVisible(m) {
			cat, _ := h.ctrl.Catalog(m)
			for _, e := range cat.Entries {
				rows.Add(container.NewHBox(widget.NewLabel("  •"), h.entryLink(m, e, false)))
			}
		}
	}

	top := absPosition(h.header).Subtract(absPosition(h.overlay)).AddXY(0, h.header.Size().Height)
	size := fyne.NewSize(h.root.Size().Width, h.root.Size().Height-top.Y)
	bg := canvas.NewRectangle(panelColor)
	accent := canvas.NewRectangle(accentColor)
	accent.SetMinSize(fyne.NewSize(size.Width, 2))
	panel := container.NewBorder(accent, nil, nil, nil, container.NewVScroll(container.NewPadded(rows)))
	drawer := container.NewStack(bg, panel)
	drawer.Resize(size)
	h.drawer.Add(drawer)
	h.drawer.Move(top)
	h.drawer.Resize(size)
	h.drawer.Show()
}

func (h *Host) submitLead(form lead.Form) {
	var client *lead.Client
	h.do(func() {
		client = h.client
		h.status.SetText("Submitting demo request")
	})
	go func() {
		receipt, err := client.Submit(context.Background(), form)
		h.do(func() {
			if err != nil {
				log.LogWithError(err).Warn("Demo request not accepted")
				h.form.finish(err)
				h.status.SetText(lead.FailureMessage)
				return
			}
			log.LogWithFields(log.F("submission_id", receipt.ID)).Info("Demo request sent")
			h.form.finish(nil)
			h.status.SetText(lead.SuccessMessage)
		})
	}()
}
