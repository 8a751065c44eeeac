package tui

import (
	"context"
	"strings"

	"orbiter/internal/config"
	"orbiter/internal/errors"
	"orbiter/internal/lead"
	"orbiter/internal/log"
	"orbiter/internal/nav"
	"orbiter/internal/site"
	"orbiter/internal/tui/common"
	"orbiter/internal/tui/components"
	"orbiter/internal/tui/messages"
	"orbiter/internal/tui/styles"
	"orbiter/internal/tui/views"
	"orbiter/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const wheelLines = 3

type Model struct {
	cfg     *config.Config
	content *site.Content
	router  *site.Router
	ctrl    *nav.Controller
	client  *lead.Client

	win   *teaWindow
	sched *teaScheduler
	doc   *pageDocument

	keys   *types.KeyMap
	help   help.Model
	theme  *styles.Theme
	status *components.StatusBar
	form   *components.LeadForm

	width    int
	height   int
	showHelp bool
	quitting bool

	page    site.Page
	header  []string
	body    string
	bodyH   int
	zones   common.Zones
	hovered nav.Menu

	unsubs []func()
}

// Option configures a Model.
type Option func(*Model)

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width, m.height = width, height
	}
}

// WithClient replaces the lead submission client.
func WithClient(c *lead.Client) Option {
	return func(m *Model) { m.client = c }
}

// New builds the model, mounts the navigation controller and opens the
// configured start page.
func New(cfg *config.Config, content *site.Content, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.New()
	}
	theme := styles.NewTheme(palette(cfg))
	m := &Model{
		cfg:     cfg,
		content: content,
		router:  site.NewRouter(cfg.Site.StartPath),
		client:  lead.NewClient(cfg.Lead.Endpoint, cfg.Lead.Timeout),
		sched:   newTeaScheduler(),
		keys:    types.DefaultKeyMap(),
		help:    help.New(),
		theme:   theme,
		status:  components.NewStatusBar(theme),
		form:    components.NewLeadForm(theme),
		width:   80,
		height:  24,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.win = newTeaWindow(m.width, m.height)
	m.doc = newPageDocument(m.router, m.sched)
	m.ctrl = nav.New(nav.Deps{
		Window:    m.win,
		Document:  m.doc,
		Router:    m.router,
		Locker:    m.doc,
		Scheduler: m.sched,
		Inside:    nav.RegionFunc(func(p nav.Point) bool { return m.zones.Inside(p.X, p.Y) }),
	}, cfg.NavOptions(), content.Catalogs()...)
	m.ctrl.Mount()
	m.unsubs = append(m.unsubs, m.router.OnChange(m.onRoute))

	m.loadPage(m.router.Current())
	m.relayout()
	return m
}

func palette(cfg *config.Config) styles.Palette {
	return styles.Palette{
		Primary: cfg.Theme.Primary,
		Accent:  cfg.Theme.Accent,
		Muted:   cfg.Theme.Muted,
		Border:  cfg.Theme.Border,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.sched.drain()
}

// Close unmounts the controller and detaches from the router.
func (m *Model) Close() {
	m.ctrl.Unmount()
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.win.setSize(msg.Width, msg.Height)
		m.refreshPage()
	case messages.TimerFiredMsg:
		m.sched.fire(msg.ID)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		if m.quitting {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	case messages.ConfigUpdateMsg:
		m.applyConfig(msg.Config)
	case messages.LeadSubmittedMsg:
		m.finishSubmit(msg)
	case spinner.TickMsg:
		cmds = append(cmds, m.status.Update(msg))
	case messages.ErrorMsg:
		log.LogWithError(msg.Err).Error("Front end error")
		m.status.SetText(msg.Err.Error())
	}

	m.relayout()
	cmds = append(cmds, m.sched.drain())
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return views.RenderMainView(m)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.form.Focused() {
		if key.Matches(msg, m.keys.CloseMenus) {
			m.form.Blur()
			m.refreshPage()
			return nil
		}
		submit, cmd := m.form.Update(msg)
		m.refreshPage()
		if submit {
			return tea.Batch(cmd, m.submit())
		}
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.ToggleDrawer):
		// the hamburger only exists in mobile mode
		if m.ctrl.ViewportMode() == nav.Mobile {
			m.ctrl.ToggleDrawer()
		}
	case key.Matches(msg, m.keys.CloseMenus):
		m.ctrl.CloseDrawer()
	case key.Matches(msg, m.keys.TapSolutions):
		m.ctrl.TapMenu(nav.MenuSolutions)
	case key.Matches(msg, m.keys.TapProducts):
		m.ctrl.TapMenu(nav.MenuProducts)
	case key.Matches(msg, m.keys.OpenSolutions):
		m.router.Navigate(m.content.BasePath(nav.MenuSolutions))
	case key.Matches(msg, m.keys.OpenProducts):
		m.router.Navigate(m.content.BasePath(nav.MenuProducts))
	case key.Matches(msg, m.keys.Back):
		m.router.Back()
	case key.Matches(msg, m.keys.FocusForm):
		if id, ok := m.formSection(); ok {
			m.form.Focus()
			m.refreshPage()
			m.doc.jumpTo(id, m.ctrl.Options().HeaderClearance)
		}
	case key.Matches(msg, m.keys.Up):
		m.pageScroll(func() { m.doc.userScroll(-1) })
	case key.Matches(msg, m.keys.Down):
		m.pageScroll(func() { m.doc.userScroll(1) })
	case key.Matches(msg, m.keys.PageUp):
		m.pageScroll(func() { m.doc.userScroll(-m.doc.vp.Height) })
	case key.Matches(msg, m.keys.PageDown):
		m.pageScroll(func() { m.doc.userScroll(m.doc.vp.Height) })
	case key.Matches(msg, m.keys.Top):
		m.pageScroll(func() { m.doc.vp.GotoTop() })
	case key.Matches(msg, m.keys.Bottom):
		m.pageScroll(func() { m.doc.vp.GotoBottom() })
	}
	return nil
}

// pageScroll reports a scroll attempt to the controller and applies it
// only if the page was not locked when the attempt started.
func (m *Model) pageScroll(apply func()) {
	wasLocked := m.doc.locked
	m.win.emitScroll()
	if !wasLocked {
		m.doc.stopAnimation()
		apply()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := nav.Point{X: msg.X, Y: msg.Y}

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if msg.Action != tea.MouseActionPress {
			return
		}
		lines := wheelLines
		if msg.Button == tea.MouseButtonWheelUp {
			lines = -wheelLines
		}
		m.pageScroll(func() { m.doc.userScroll(lines) })
	case msg.Action == tea.MouseActionMotion:
		m.trackHover(p)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.win.emitPointerDown(p)
		m.click(p)
	}
}

func (m *Model) trackHover(p nav.Point) {
	menu := m.zones.HoverMenu(p.X, p.Y)
	if menu == m.hovered {
		return
	}
	if m.hovered != nav.MenuNone {
		m.ctrl.HoverLeave()
	}
	m.hovered = menu
	if menu != nav.MenuNone {
		m.ctrl.HoverEnter(menu)
	}
}

func (m *Model) click(p nav.Point) {
	z, ok := m.zones.At(p.X, p.Y)
	if !ok {
		return
	}
	switch z.Kind {
	case common.ZoneLink:
		m.router.Navigate(z.Target)
	case common.ZoneDrawerLink:
		m.ctrl.CloseDrawer()
		m.router.Navigate(z.Target)
	case common.ZoneTrigger:
		m.ctrl.ClickTrigger(z.Menu)
		m.router.Navigate(z.Target)
	case common.ZoneChevron, common.ZoneDrawerTrigger:
		m.ctrl.TapMenu(z.Menu)
	case common.ZoneEntry, common.ZoneDrawerEntry:
		m.ctrl.SelectEntry(z.Menu, z.Target)
	case common.ZoneToggle:
		m.ctrl.ToggleDrawer()
	case common.ZoneClose:
		m.ctrl.CloseDrawer()
	}
}

func (m *Model) onRoute(c site.Change) {
	m.status.SetLocation(c.Location.URL())
	clearance := m.ctrl.Options().HeaderClearance

	if c.Kind == site.HashChange || !c.PathChanged {
		if c.Location.Fragment != "" {
			m.doc.jumpTo(c.Location.Fragment, clearance)
		}
		return
	}

	m.form.Blur()
	m.loadPage(c.Location)
	m.ctrl.RouteChanged(c.Location.Path)
}

// loadPage renders the page for loc and performs the deferred scroll to
// its fragment once the layout exists.
func (m *Model) loadPage(loc site.Location) {
	m.page = m.content.Page(loc.Path)
	m.doc.setLayout(m.pageLayout(), false)
	if loc.Fragment != "" {
		if !m.doc.jumpTo(loc.Fragment, m.ctrl.Options().HeaderClearance) {
			log.LogWithFields(log.F("url", loc.URL())).Debug("Fragment not on page")
		}
	}
	m.status.SetLocation(loc.URL())
}

func (m *Model) pageLayout() site.Layout {
	embeds := map[string]string{site.EmbedLeadForm: m.form.View()}
	return m.page.Layout(m.width, m.theme.PageStyles(), embeds)
}

// refreshPage re-renders the current page in place.
func (m *Model) refreshPage() {
	m.doc.setLayout(m.pageLayout(), true)
}

func (m *Model) formSection() (string, bool) {
	for _, s := range m.page.Sections {
		if s.Embed == site.EmbedLeadForm {
			return s.ID, true
		}
	}
	return "", false
}

// relayout renders the header and body for the current state and rebuilds
// the hit zones.
func (m *Model) relayout() {
	state := m.ctrl.Snapshot()
	catalogs := make(map[nav.Menu]nav.Catalog, len(nav.Menus))
	for _, menu := range nav.Menus {
		catalogs[menu], _ = m.ctrl.Catalog(menu)
	}
	activePath := ""
	if link, ok := m.content.ActiveLink(m.router.CurrentPath()); ok {
		activePath = link.Path
	}
	hs := components.HeaderState{
		Brand:      m.content.Brand,
		Links:      m.content.Links,
		ActivePath: activePath,
		Nav:        state,
		Catalogs:   catalogs,
		Width:      m.width,
	}

	header, zones := components.RenderHeader(hs, m.theme)
	m.header = header

	reserved := len(header) + 1
	if m.showHelp {
		reserved += strings.Count(m.HelpView(), "\n") + 1
	}
	m.bodyH = max(m.height-reserved, 1)
	m.doc.setSize(m.width, m.bodyH)

	if state.Mode == nav.Mobile && state.DrawerOpen {
		drawer, drawerZones := components.RenderDrawer(hs, len(header), m.bodyH, m.theme)
		m.body = drawer
		zones = append(zones, drawerZones...)
	} else {
		m.body = m.doc.vp.View()
	}
	m.zones = zones
}

func (m *Model) submit() tea.Cmd {
	form := m.form.Value()
	if err := form.Validate(); err != nil {
		fields := errors.FieldErrors(err)
		m.form.SetErrors(fields)
		for _, name := range m.form.FieldNames() {
			if _, bad := fields[name]; bad {
				m.form.FocusField(name)
				break
			}
		}
		m.status.SetText("Please fix the highlighted fields")
		m.refreshPage()
		return nil
	}

	m.form.Submitting()
	m.status.SetText("Submitting demo request")
	spin := m.status.SetLoading(true)
	m.refreshPage()

	client := m.client
	return tea.Batch(spin, func() tea.Msg {
		receipt, err := client.Submit(context.Background(), form)
		return messages.LeadSubmittedMsg{Receipt: receipt, Err: err}
	})
}

func (m *Model) finishSubmit(msg messages.LeadSubmittedMsg) {
	m.status.SetLoading(false)
	if msg.Err != nil {
		log.LogWithError(msg.Err).Warn("Demo request not accepted")
		m.form.Finish(false)
		if fields := errors.FieldErrors(msg.Err); len(fields) > 0 {
			m.form.SetErrors(fields)
		}
		m.status.SetText("Demo request failed")
	} else {
		m.form.Finish(true)
		m.status.SetSubmitted(msg.Receipt.SubmittedAt)
		m.status.SetText("Demo request sent")
	}
	m.refreshPage()
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.cfg = cfg
	m.ctrl.SetOptions(cfg.NavOptions())
	m.theme = styles.NewTheme(palette(cfg))
	m.status.SetTheme(m.theme)
	m.form.SetTheme(m.theme)
	m.client = lead.NewClient(cfg.Lead.Endpoint, cfg.Lead.Timeout)
	m.status.SetText("Configuration reloaded")
	m.refreshPage()
	log.LogWithFields(log.F("breakpoint", cfg.Navigation.Breakpoint), log.F("tap_gating", cfg.Navigation.TapGating)).Info("Applied configuration")
}

// ModelReader implementation

func (m *Model) HeaderLines() []string { return m.header }

func (m *Model) Body() string { return m.body }

func (m *Model) BodyHeight() int { return m.bodyH }

func (m *Model) ShowHelp() bool { return m.showHelp }

func (m *Model) HelpView() string {
	h := m.help
	h.ShowAll = true
	return h.View(m.keys)
}

func (m *Model) StatusView() string {
	return m.status.View(m.width)
}

// Getters

func (m *Model) Controller() *nav.Controller { return m.ctrl }

func (m *Model) Router() *site.Router { return m.router }

func (m *Model) Zones() common.Zones { return m.zones }

func (m *Model) Form() *components.LeadForm { return m.form }

func (m *Model) ScrollY() int { return m.doc.ScrollY() }

func (m *Model) ScrollLocked() bool { return m.doc.locked }

func (m *Model) Anchor(id string) (int, bool) {
	line, ok := m.doc.layout.Anchors[id]
	return line, ok
}
