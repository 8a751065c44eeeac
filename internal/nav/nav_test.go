package nav_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbiter/internal/nav"
	"orbiter/pkg/testutils"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		width int
		want  nav.Mode
	}{
		{0, nav.Mobile},
		{1023, nav.Mobile},
		{1024, nav.Desktop},
		{1025, nav.Desktop},
		{4096, nav.Desktop},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nav.Classify(tt.width, nav.DefaultBreakpoint), "width %d", tt.width)
	}

	prev := nav.Mobile
	for w := 900; w < 1100; w++ {
		got := nav.Classify(w, nav.DefaultBreakpoint)
		if prev == nav.Desktop {
			assert.Equal(t, nav.Desktop, got, "mapping must be monotonic at %d", w)
		}
		prev = got
	}
}

func TestParseMenu(t *testing.T) {
	m, ok := nav.ParseMenu("Solutions")
	assert.True(t, ok)
	assert.Equal(t, nav.MenuSolutions, m)

	m, ok = nav.ParseMenu("products")
	assert.True(t, ok)
	assert.Equal(t, nav.MenuProducts, m)

	_, ok = nav.ParseMenu("pricing")
	assert.False(t, ok)
	assert.Equal(t, "none", nav.MenuNone.String())
}

func TestParseTapGating(t *testing.T) {
	g, ok := nav.ParseTapGating("any")
	assert.True(t, ok)
	assert.Equal(t, nav.TapAny, g)

	g, ok = nav.ParseTapGating("")
	assert.True(t, ok)
	assert.Equal(t, nav.TapMobileOnly, g)

	_, ok = nav.ParseTapGating("hover")
	assert.False(t, ok)
}

func TestCatalogTarget(t *testing.T) {
	cat := nav.Catalog{
		Menu:     nav.MenuProducts,
		BasePath: "/products",
		Entries:  []nav.Entry{{ID: "antennas", Label: "Antennas"}},
	}
	e, ok := cat.Lookup("antennas")
	require.True(t, ok)
	assert.Equal(t, "Antennas", e.Label)
	assert.Equal(t, "/products#antennas", cat.Target("antennas"))

	path, frag := nav.SplitURL("/products#antennas")
	assert.Equal(t, "/products", path)
	assert.Equal(t, "antennas", frag)

	path, frag = nav.SplitURL("/about")
	assert.Equal(t, "/about", path)
	assert.Empty(t, frag)
}

func TestScrollLock(t *testing.T) {
	locker := &testutils.FakeLocker{}
	lock := nav.NewScrollLock(locker)

	lock.Sync(true)
	lock.Sync(true)
	assert.True(t, lock.Held())
	lock.Release()
	lock.Release()
	assert.False(t, lock.Held())
	assert.Equal(t, []bool{true, false}, locker.Calls)

	assert.NotPanics(t, func() { nav.NewScrollLock(nil).Sync(true) })
}

func TestOutsideClickWatcher(t *testing.T) {
	win := testutils.NewFakeWindow(800)
	var fired int
	w := nav.NewOutsideClickWatcher(testutils.RectRegion{{X0: 0, Y0: 0, X1: 10, Y1: 10}}, func() { fired++ })

	win.PointerDown(nav.Point{X: 50, Y: 50})
	assert.Zero(t, fired, "detached watcher must not fire")

	w.Attach(win)
	w.Attach(win)
	assert.Equal(t, 1, win.Listeners())

	win.PointerDown(nav.Point{X: 5, Y: 5})
	assert.Zero(t, fired)
	win.PointerDown(nav.Point{X: 50, Y: 50})
	assert.Equal(t, 1, fired)

	w.Detach()
	assert.False(t, w.Attached())
	win.PointerDown(nav.Point{X: 50, Y: 50})
	assert.Equal(t, 1, fired)
}

func TestOutsideClickWatcherNilRegion(t *testing.T) {
	win := testutils.NewFakeWindow(800)
	var fired int
	w := nav.NewOutsideClickWatcher(nil, func() { fired++ })
	w.Attach(win)
	win.PointerDown(nav.Point{X: 1, Y: 1})
	assert.Zero(t, fired)
}

func TestHoverIntent(t *testing.T) {
	sched := &testutils.ManualScheduler{}
	var opened []nav.Menu
	var closed int
	h := nav.NewHoverIntent(sched, 200*time.Millisecond,
		func(m nav.Menu) { opened = append(opened, m) },
		func() { closed++ })

	h.Enter(nav.MenuSolutions)
	h.Leave()
	assert.True(t, h.Pending())
	h.Enter(nav.MenuProducts)
	assert.False(t, h.Pending())
	sched.Advance(time.Second)
	assert.Zero(t, closed)

	h.Leave()
	sched.Advance(200 * time.Millisecond)
	assert.Equal(t, 1, closed)
	assert.False(t, h.Pending())
	assert.Equal(t, []nav.Menu{nav.MenuSolutions, nav.MenuProducts}, opened)
}

func TestGoToSection(t *testing.T) {
	t.Run("idempotent on current page", func(t *testing.T) {
		doc := testutils.NewFakeDocument(map[string]int{"wireless-systems": 900})
		router := &testutils.FakeRouter{Path: "/solutions"}
		s := nav.NewSectionNavigator(router, doc, nav.DefaultHeaderClearance, true)

		assert.Equal(t, nav.Scrolled, s.GoToSection("/solutions", "wireless-systems"))
		first := doc.Y
		assert.Equal(t, nav.Scrolled, s.GoToSection("/solutions", "wireless-systems"))
		assert.Equal(t, first, doc.Y)
		assert.Equal(t, 800, first)
		assert.Equal(t, []testutils.ScrollCall{{Top: 800, Smooth: true}, {Top: 800, Smooth: true}}, doc.Scrolls)
		assert.Equal(t, []string{"/solutions#wireless-systems", "/solutions#wireless-systems"}, doc.Replaced)
		assert.Empty(t, router.Navigated)
	})

	t.Run("clamps near top", func(t *testing.T) {
		doc := testutils.NewFakeDocument(map[string]int{"intro": 40})
		s := nav.NewSectionNavigator(&testutils.FakeRouter{Path: "/"}, doc, 100, false)
		s.GoToSection("/", "intro")
		assert.Equal(t, 0, doc.Y)
	})

	t.Run("missing anchor assigns fragment", func(t *testing.T) {
		doc := testutils.NewFakeDocument(nil)
		s := nav.NewSectionNavigator(&testutils.FakeRouter{Path: "/products"}, doc, 100, true)
		assert.Equal(t, nav.HashFallback, s.GoToSection("/products", "antennas"))
		assert.Equal(t, []string{"antennas"}, doc.Hashes)
		assert.Empty(t, doc.Scrolls)
	})

	t.Run("other page navigates", func(t *testing.T) {
		doc := testutils.NewFakeDocument(map[string]int{"antennas": 300})
		router := &testutils.FakeRouter{Path: "/"}
		s := nav.NewSectionNavigator(router, doc, 100, true)
		assert.Equal(t, nav.Navigated, s.GoToSection("/products", "antennas"))
		assert.Equal(t, []string{"/products#antennas"}, router.Navigated)
		assert.Empty(t, doc.Scrolls)
	})
}
