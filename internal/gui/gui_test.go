//go:build !nogui

package gui

import (
	"testing"
	"time"

	"orbiter/internal/config"
	"orbiter/internal/lead"
	"orbiter/internal/nav"
	"orbiter/internal/site"
	"orbiter/pkg/testutils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost(t *testing.T) (*Host, *testutils.ManualScheduler) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	content, err := site.Load()
	require.NoError(t, err)

	sched := &testutils.ManualScheduler{}
	h := New(config.NewTestConfig(), content, WithApp(a), WithScheduler(sched))
	h.win.Resize(fyne.NewSize(1280, 800))
	t.Cleanup(h.Close)
	return h, sched
}

func tapObject(l *navLink) {
	l.Tapped(&fyne.PointEvent{AbsolutePosition: absPosition(l)})
}

func advance(h *Host, sched *testutils.ManualScheduler, d time.Duration) {
	h.do(func() { sched.Advance(d) })
}

func resize(h *Host, width int) {
	h.do(func() { h.window.setWidth(width) })
}

func TestHostStartsOnDesktop(t *testing.T) {
	h, _ := newTestHost(t)

	assert.True(t, h.ctrl.Mounted())
	assert.Equal(t, nav.Desktop, h.ctrl.ViewportMode())
	assert.True(t, h.linkBar.Visible())
	assert.False(t, h.hamburger.Visible())
	assert.False(t, h.dropdown.Visible())
	assert.Len(t, h.triggers, 2)
	assert.Equal(t, "/", h.router.CurrentPath())
}

func TestHostHoverIntent(t *testing.T) {
	h, sched := newTestHost(t)
	trigger := h.triggers[nav.MenuSolutions]

	trigger.MouseIn(&desktop.MouseEvent{})
	require.Equal(t, nav.MenuSolutions, h.ctrl.ActiveMenu())
	assert.True(t, h.dropdown.Visible())
	assert.Equal(t, chevronUp, h.chevrons[nav.MenuSolutions].Text())

	cat, _ := h.ctrl.Catalog(nav.MenuSolutions)
	assert.Len(t, h.entries, len(cat.Entries))

	trigger.MouseOut()
	assert.Equal(t, nav.MenuSolutions, h.ctrl.ActiveMenu(), "grace period")

	h.entries[0].MouseIn(&desktop.MouseEvent{})
	advance(h, sched, time.Second)
	assert.Equal(t, nav.MenuSolutions, h.ctrl.ActiveMenu(), "moving into the list cancels the close")

	h.entries[0].MouseOut()
	advance(h, sched, time.Second)
	assert.Equal(t, nav.MenuNone, h.ctrl.ActiveMenu())
	assert.False(t, h.dropdown.Visible())
	assert.Equal(t, chevronDown, h.chevrons[nav.MenuSolutions].Text())
}

func TestHostEntryTapScrollsToSection(t *testing.T) {
	h, _ := newTestHost(t)
	h.triggers[nav.MenuProducts].MouseIn(&desktop.MouseEvent{})
	require.NotEmpty(t, h.entries)

	cat, _ := h.ctrl.Catalog(nav.MenuProducts)
	tapObject(h.entries[1])

	assert.Equal(t, "/products", h.router.CurrentPath())
	assert.Equal(t, cat.Entries[1].ID, h.router.Current().Fragment)
	assert.Equal(t, nav.MenuNone, h.ctrl.ActiveMenu())
	assert.False(t, h.dropdown.Visible())
	assert.Contains(t, h.doc.anchors, cat.Entries[1].ID)
}

func TestHostOutsideTap(t *testing.T) {
	h, _ := newTestHost(t)
	h.triggers[nav.MenuProducts].MouseIn(&desktop.MouseEvent{})
	require.Equal(t, nav.MenuProducts, h.ctrl.ActiveMenu())

	h.tap(fyne.NewPos(5, 700), nil)
	assert.Equal(t, nav.MenuNone, h.ctrl.ActiveMenu())
}

func TestHostTapGating(t *testing.T) {
	h, _ := newTestHost(t)
	chev := h.chevrons[nav.MenuSolutions]

	tapObject(chev)
	assert.Equal(t, nav.MenuNone, h.ctrl.ActiveMenu(), "desktop taps are ignored by default")

	cfg := config.NewTestConfig()
	cfg.Navigation.TapGating = "any"
	h.Apply(cfg)

	tapObject(chev)
	assert.Equal(t, nav.MenuSolutions, h.ctrl.ActiveMenu())
	assert.Equal(t, "Configuration reloaded", h.status.Text)
}

func TestHostMobileDrawer(t *testing.T) {
	h, _ := newTestHost(t)
	resize(h, 600)

	require.Equal(t, nav.Mobile, h.ctrl.ViewportMode())
	assert.False(t, h.linkBar.Visible())
	assert.True(t, h.hamburger.Visible())

	tapObject(h.hamburger)
	assert.True(t, h.ctrl.DrawerOpen())
	assert.True(t, h.drawer.Visible())
	assert.True(t, h.doc.locked)

	h.do(h.userScrolled)
	assert.False(t, h.ctrl.DrawerOpen())
	assert.False(t, h.drawer.Visible())
	assert.False(t, h.doc.locked)
}

func TestHostDrawerMenu(t *testing.T) {
	h, _ := newTestHost(t)
	resize(h, 600)
	tapObject(h.hamburger)

	var chevrons []*navLink
	for _, l := range h.drawerRow {
		if l.Text() == chevronDown {
			chevrons = append(chevrons, l)
		}
	}
	require.Len(t, chevrons, 2)

	tapObject(chevrons[0])
	assert.Equal(t, nav.MenuSolutions, h.ctrl.ActiveMenu())
	assert.True(t, h.ctrl.DrawerOpen())
	require.NotEmpty(t, h.entries)

	cat, _ := h.ctrl.Catalog(nav.MenuSolutions)
	tapObject(h.entries[0])
	assert.Equal(t, "/solutions", h.router.CurrentPath())
	assert.Equal(t, cat.Entries[0].ID, h.router.Current().Fragment)
	assert.False(t, h.ctrl.DrawerOpen())
	assert.Equal(t, nav.MenuNone, h.ctrl.ActiveMenu())
	assert.False(t, h.doc.locked)
}

func TestHostModeFlipKeepsDrawer(t *testing.T) {
	h, _ := newTestHost(t)
	resize(h, 600)
	tapObject(h.hamburger)

	resize(h, 1400)
	assert.Equal(t, nav.Desktop, h.ctrl.ViewportMode())
	assert.True(t, h.ctrl.DrawerOpen())
	assert.False(t, h.drawer.Visible(), "the drawer only shows in mobile mode")
}

func TestHostRouteChangeClosesEverything(t *testing.T) {
	h, _ := newTestHost(t)
	resize(h, 600)
	tapObject(h.hamburger)

	h.do(func() { h.router.Navigate("/about") })
	assert.False(t, h.ctrl.DrawerOpen())
	assert.Equal(t, "/about", h.status.Text)
}

func TestHostClose(t *testing.T) {
	h, _ := newTestHost(t)
	resize(h, 600)
	tapObject(h.hamburger)

	h.Close()
	assert.False(t, h.ctrl.Mounted())
	assert.False(t, h.doc.locked)
	assert.Empty(t, h.window.resize)
	assert.Empty(t, h.window.scroll)
	assert.Empty(t, h.window.pointer)
}

func TestLeadFormSubmit(t *testing.T) {
	test.NewApp()
	var got *lead.Form
	f := newLeadForm(func(v lead.Form) { got = &v })

	f.submit()
	assert.Nil(t, got)
	assert.Contains(t, f.message.Text, "First name is required")
	assert.Contains(t, f.message.Text, "You must consent to data collection")

	f.first.SetText("Ada")
	f.last.SetText("Lovelace")
	f.org.SetText("Engines Ltd")
	f.email.SetText("ada@example.com")
	f.country.SetSelected(lead.Countries[0])
	f.customer.SetSelected(lead.CustomerOptions[0])
	f.application.SetSelected(lead.Applications[0])
	f.heard.SetSelected(lead.HowHeardOptions[0])
	f.consent.SetChecked(true)

	f.submit()
	require.NotNil(t, got)
	assert.Equal(t, "ada@example.com", got.Email)

	f.finish(assert.AnError)
	assert.Equal(t, lead.FailureMessage, f.message.Text)

	f.finish(nil)
	assert.Empty(t, f.first.Text)
	assert.False(t, f.consent.Checked)
	assert.Contains(t, f.message.Text, lead.SuccessMessage)
}
