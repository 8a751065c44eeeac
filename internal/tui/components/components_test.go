package components

import (
	"strings"
	"testing"
	"time"

	"orbiter/internal/lead"
	"orbiter/internal/nav"
	"orbiter/internal/site"
	"orbiter/internal/tui/common"
	"orbiter/internal/tui/styles"
	"orbiter/pkg/testutils"

	alsrt "github.com/alecthomas/assert"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerState(t *testing.T, mode nav.Mode, width int) HeaderState {
	t.Helper()
	content, err := site.Load()
	require.NoError(t, err)
	catalogs := map[nav.Menu]nav.Catalog{}
	for _, c := range content.Catalogs() {
		catalogs[c.Menu] = c
	}
	return HeaderState{
		Brand:      content.Brand,
		Links:      content.Links,
		ActivePath: "/",
		Nav:        nav.State{Mode: mode},
		Catalogs:   catalogs,
		Width:      width,
	}
}

func kinds(zs common.Zones, kind common.ZoneKind) common.Zones {
	var out common.Zones
	for _, z := range zs {
		if z.Kind == kind {
			out = append(out, z)
		}
	}
	return out
}

func TestRenderHeaderDesktop(t *testing.T) {
	th := styles.NewTheme(styles.DefaultPalette)
	s := headerState(t, nav.Desktop, 100)

	lines, zones := RenderHeader(s, th)
	require.Len(t, lines, 2, "bar and rule")
	bar := testutils.StripANSI(lines[0])

	triggers := kinds(zones, common.ZoneTrigger)
	require.Len(t, triggers, 2)
	for _, z := range triggers {
		assert.NotEmpty(t, z.Target)
		assert.Equal(t, 1, z.Rect.H)
	}
	sol := triggers[0]
	assert.Equal(t, nav.MenuSolutions, sol.Menu)
	assert.Equal(t, "Solutions", bar[sol.Rect.X:sol.Rect.X+len("Solutions")])

	chevrons := kinds(zones, common.ZoneChevron)
	require.Len(t, chevrons, 2)
	assert.Equal(t, sol.Rect.X+sol.Rect.W, chevrons[0].Rect.X, "chevron follows the trigger")
	assert.Contains(t, bar, chevronDown)
	assert.NotContains(t, bar, chevronUp)
	assert.Empty(t, kinds(zones, common.ZoneToggle), "no hamburger on desktop")
}

func TestRenderHeaderOpenDropdown(t *testing.T) {
	th := styles.NewTheme(styles.DefaultPalette)
	s := headerState(t, nav.Desktop, 100)
	s.Nav.ActiveMenu = nav.MenuProducts

	lines, zones := RenderHeader(s, th)
	entries := kinds(zones, common.ZoneEntry)
	require.Len(t, entries, len(s.Catalogs[nav.MenuProducts].Entries))

	for i, z := range entries {
		e := s.Catalogs[nav.MenuProducts].Entries[i]
		assert.Equal(t, e.ID, z.Target)
		row := testutils.StripANSI(lines[z.Rect.Y])
		assert.Contains(t, row, e.Label)
	}

	box := kinds(zones, common.ZoneDropdown)
	require.Len(t, box, 1)
	assert.Equal(t, nav.MenuProducts, zones.HoverMenu(box[0].Rect.X, box[0].Rect.Y))
	assert.True(t, zones.Inside(entries[0].Rect.X, entries[0].Rect.Y))
	assert.Contains(t, testutils.StripANSI(lines[0]), chevronUp)

	z, ok := zones.At(entries[1].Rect.X, entries[1].Rect.Y)
	require.True(t, ok)
	assert.Equal(t, common.ZoneEntry, z.Kind, "entries win over their container")
}

func TestRenderHeaderDropdownStaysOnScreen(t *testing.T) {
	th := styles.NewTheme(styles.DefaultPalette)
	s := headerState(t, nav.Desktop, 40)
	s.Nav.ActiveMenu = nav.MenuProducts

	_, zones := RenderHeader(s, th)
	box := kinds(zones, common.ZoneDropdown)[0]
	assert.LessOrEqual(t, box.Rect.X+box.Rect.W, 40)
}

func TestRenderHeaderMobile(t *testing.T) {
	th := styles.NewTheme(styles.DefaultPalette)
	s := headerState(t, nav.Mobile, 50)
	s.Nav.ActiveMenu = nav.MenuSolutions

	lines, zones := RenderHeader(s, th)
	require.Len(t, lines, 2, "mobile header never shows a dropdown")
	assert.Empty(t, kinds(zones, common.ZoneTrigger))

	toggle := kinds(zones, common.ZoneToggle)
	require.Len(t, toggle, 1)
	assert.Equal(t, 48, toggle[0].Rect.X)
	assert.False(t, zones.Inside(toggle[0].Rect.X, 0), "the hamburger is outside the nav region")
}

func TestRenderDrawer(t *testing.T) {
	th := styles.NewTheme(styles.DefaultPalette)
	s := headerState(t, nav.Mobile, 50)
	s.Nav.DrawerOpen = true

	out, zones := RenderDrawer(s, 2, 20, th)
	assert.Len(t, strings.Split(out, "\n"), 20)
	assert.Contains(t, testutils.StripANSI(out), closeLabel)
	assert.Empty(t, kinds(zones, common.ZoneDrawerEntry), "menus start collapsed")

	closeZone := kinds(zones, common.ZoneClose)
	require.Len(t, closeZone, 1)
	assert.Equal(t, 2, closeZone[0].Rect.Y)
	assert.True(t, zones.Inside(0, 10), "the whole drawer counts as inside")

	s.Nav.ActiveMenu = nav.MenuSolutions
	out, zones = RenderDrawer(s, 2, 20, th)
	entries := kinds(zones, common.ZoneDrawerEntry)
	require.Len(t, entries, len(s.Catalogs[nav.MenuSolutions].Entries))
	for _, e := range s.Catalogs[nav.MenuSolutions].Entries {
		assert.Contains(t, out, e.Label)
	}
	for _, z := range entries {
		assert.Equal(t, nav.MenuSolutions, z.Menu)
	}
}

func TestRenderDrawerCutsToHeight(t *testing.T) {
	th := styles.NewTheme(styles.DefaultPalette)
	s := headerState(t, nav.Mobile, 50)
	s.Nav.ActiveMenu = nav.MenuSolutions

	out, zones := RenderDrawer(s, 2, 4, th)
	assert.Len(t, strings.Split(out, "\n"), 4)

	for _, z := range zones {
		assert.Less(t, z.Rect.Y, 6, "zone %v lies below the drawer", z.Kind)
	}
	assert.True(t, zones.Inside(0, 5))
	assert.False(t, zones.Inside(5, 6), "rows below the drawer are not clickable")
	assert.Len(t, kinds(zones, common.ZoneDrawerLink), 2)
	assert.Len(t, kinds(zones, common.ZoneDrawerTrigger), 1)
	assert.Empty(t, kinds(zones, common.ZoneDrawerEntry), "the expanded entries are cut off")
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(f *LeadForm, text string) {
	for _, r := range text {
		f.Update(key(string(r)))
	}
}

func TestLeadFormFill(t *testing.T) {
	f := NewLeadForm(styles.NewTheme(styles.DefaultPalette))
	f.Focus()
	alsrt.True(t, f.Focused())

	typeText(f, "Ada")
	f.Update(key("tab"))
	typeText(f, "Lovelace")
	f.Update(key("tab"))
	typeText(f, "Engines Ltd")
	f.Update(key("tab"))
	f.Update(key("tab"))
	typeText(f, "ada@example.com")
	f.Update(key("tab"))
	typeText(f, "U")
	f.Update(key("tab"))
	f.Update(key("right"))
	f.Update(key("tab"))
	f.Update(key("right"))
	f.Update(key("tab"))
	f.Update(key("left"))
	f.Update(key("tab"))
	f.Update(key("tab"))
	f.Update(key(" "))

	v := f.Value()
	alsrt.Equal(t, "Ada", v.FirstName)
	alsrt.Equal(t, "Lovelace", v.LastName)
	alsrt.Equal(t, "Engines Ltd", v.Organization)
	alsrt.Equal(t, "ada@example.com", v.Email)
	alsrt.True(t, strings.HasPrefix(v.Country, "U"))
	alsrt.Equal(t, lead.CustomerOptions[0], v.ExistingCustomer)
	alsrt.Equal(t, lead.Applications[0], v.Application)
	alsrt.Equal(t, lead.HowHeardOptions[len(lead.HowHeardOptions)-1], v.HowHeard)
	alsrt.True(t, v.Consent)
	alsrt.False(t, v.Newsletter)
	alsrt.NoError(t, v.Validate())
}

func TestLeadFormSubmitRequest(t *testing.T) {
	f := NewLeadForm(styles.NewTheme(styles.DefaultPalette))
	f.Focus()

	submit, _ := f.Update(key("enter"))
	alsrt.False(t, submit, "enter on a field advances")

	f.Update(key("shift+tab"))
	f.Update(key("shift+tab"))
	submit, _ = f.Update(key("enter"))
	alsrt.True(t, submit, "focus wraps to the submit button")

	f.Submitting()
	submit, _ = f.Update(key("enter"))
	alsrt.False(t, submit, "no double submit")
	alsrt.Contains(t, f.View(), "Submitting...")
}

func TestLeadFormErrorsAndFinish(t *testing.T) {
	f := NewLeadForm(styles.NewTheme(styles.DefaultPalette))
	err := f.Value().Validate()
	require.Error(t, err)

	f.SetErrors(map[string]string{lead.FieldEmail: "Email is required"})
	assert.Contains(t, f.View(), "Email is required")

	f.FocusField(lead.FieldEmail)
	typeText(f, "x")
	assert.NotContains(t, f.View(), "Email is required", "typing clears the field error")

	f.Finish(false)
	assert.Equal(t, FormFailed, f.Status())
	assert.Contains(t, f.View(), lead.FailureMessage)

	f.Finish(true)
	assert.Equal(t, FormSuccess, f.Status())
	assert.False(t, f.Focused())
	assert.Empty(t, f.Value().Email)
	assert.Contains(t, f.View(), lead.SuccessMessage)
}

func TestStatusBar(t *testing.T) {
	sb := NewStatusBar(styles.NewTheme(styles.DefaultPalette))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sb.now = func() time.Time { return now }

	sb.SetLocation("/solutions#wisp-access-networks")
	sb.SetText("ready")
	view := sb.View(120)
	assert.Contains(t, view, "/solutions#wisp-access-networks")
	assert.Contains(t, view, "ready")

	sb.SetSubmitted(now.Add(-3 * time.Minute))
	assert.Contains(t, sb.View(120), "demo requested 3 minutes ago")

	cmd := sb.SetLoading(true)
	assert.NotNil(t, cmd)
	assert.True(t, sb.Loading())
	assert.Nil(t, sb.SetLoading(false))
	assert.LessOrEqual(t, len([]rune(testutils.StripANSI(sb.View(10)))), 10)
}
