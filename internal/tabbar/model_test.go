package tabbar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/betkiray/kiray/internal/nav"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newUserBar(t *testing.T, width int) (Model, *nav.Navigator) {
	t.Helper()
	n := newNavigator(t, userScreens())
	m := New(n, UserVariant(), DefaultStyle())
	m.SetSize(width)
	return m, n
}

// settle drives frame messages until the bar stops asking for them.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < maxFrames; i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(FrameMsg{id: m.id, tag: m.tag})
		if cmd == nil {
			return m
		}
	}
	t.Fatalf("bar did not settle in %d frames", maxFrames)
	return m
}

func TestModel_MountSettledOnFirstSlot(t *testing.T) {
	m, _ := newUserBar(t, 100)
	ind := m.Indicator()
	if !ind.Visible() || ind.Phase() != Settled || ind.Offset() != 0 {
		t.Fatalf("mounted indicator visible %v phase %v offset %v", ind.Visible(), ind.Phase(), ind.Offset())
	}
	if m.Height() != 3 {
		t.Fatalf("Height = %d, want 3", m.Height())
	}
}

func TestModel_MountOnLaterSlotAnimatesFromZero(t *testing.T) {
	n := newNavigator(t, userScreens())
	n.Navigate("profile")
	m := New(n, UserVariant(), DefaultStyle())
	if cmd := m.SetSize(100); cmd == nil {
		t.Fatalf("mounting on slot 4 should start frames")
	}
	m = settle(t, m)
	want := 4 * m.geometry(5).ItemWidth
	if got := m.Indicator().Offset(); got != want {
		t.Fatalf("offset = %v, want %v", got, want)
	}
}

func TestModel_KeyPressNavigatesAndAnimates(t *testing.T) {
	m, n := newUserBar(t, 100)

	m, cmd := m.Update(keyMsg("2"))
	if cmd == nil {
		t.Fatalf("slot key returned no command")
	}
	if got := n.State().Active().Name; got != "saved" {
		t.Fatalf("active = %q, want saved", got)
	}
	if m.Indicator().Phase() != Animating {
		t.Fatalf("Phase = %v, want animating", m.Indicator().Phase())
	}

	m = settle(t, m)
	want := m.geometry(5).ItemWidth
	if got := m.Indicator().Offset(); got != want {
		t.Fatalf("settled offset = %v, want %v", got, want)
	}

	m, _ = m.Update(keyMsg("right"))
	if got := n.State().Active().Name; got != "add" {
		t.Fatalf("after right active = %q, want add", got)
	}
	if m.Indicator().Visible() {
		t.Fatalf("action slot should hide the pill")
	}
}

func TestModel_ArrowKeysStopAtEdges(t *testing.T) {
	m, n := newUserBar(t, 100)
	m, _ = m.Update(keyMsg("left"))
	if got := n.State().Active().Name; got != "index" {
		t.Fatalf("left from the first slot moved to %q", got)
	}
	n.Navigate("profile")
	m, _ = m.Update(keyMsg("right"))
	if got := n.State().Active().Name; got != "profile" {
		t.Fatalf("right from the last slot moved to %q", got)
	}
	_ = m
}

func TestModel_RetargetKeepsOneFrameLoop(t *testing.T) {
	m, n := newUserBar(t, 100)
	m, _ = m.Update(keyMsg("2"))
	tag := m.tag
	m, _ = m.Update(FrameMsg{id: m.id, tag: m.tag})

	m, _ = m.Update(keyMsg("4"))
	if m.tag != tag {
		t.Fatalf("retarget bumped the frame tag from %d to %d", tag, m.tag)
	}
	if got := n.State().Active().Name; got != "messages" {
		t.Fatalf("active = %q, want messages", got)
	}

	before := m.Indicator().Offset()
	m, cmd := m.Update(FrameMsg{id: m.id, tag: tag - 1})
	if cmd != nil || m.Indicator().Offset() != before {
		t.Fatalf("stale frame advanced the bar")
	}
	m, cmd = m.Update(FrameMsg{id: m.id + 1, tag: tag})
	if cmd != nil || m.Indicator().Offset() != before {
		t.Fatalf("frame for another bar advanced this one")
	}

	m = settle(t, m)
	want := 3 * m.geometry(5).ItemWidth
	if got := m.Indicator().Offset(); got != want {
		t.Fatalf("settled offset = %v, want %v", got, want)
	}
}

func TestModel_PressFocusedSlotEmitsOnly(t *testing.T) {
	m, n := newUserBar(t, 100)
	var c counter
	c.attach(n)

	for i := 0; i < 3; i++ {
		m, _ = m.Update(keyMsg("1"))
	}
	if c.presses != 3 || c.focuses != 0 {
		t.Fatalf("presses %d focuses %d, want 3 and 0", c.presses, c.focuses)
	}
	if m.Indicator().Phase() != Settled {
		t.Fatalf("pressing the focused slot started an animation")
	}
}

func TestModel_PressMsg(t *testing.T) {
	m, _ := newUserBar(t, 100)
	res, cmd := m.Press(1)
	if !res.Navigated || cmd == nil {
		t.Fatalf("Press(1) = %+v, cmd nil %v", res, cmd == nil)
	}
	msg, ok := cmd().(PressMsg)
	if !ok || msg.Result.Route.Name != "saved" {
		t.Fatalf("command produced %#v, want PressMsg for saved", msg)
	}
	if _, cmd := m.Press(9); cmd != nil {
		t.Fatalf("out of range press returned a command")
	}
}

func TestModel_MouseHitsSlot(t *testing.T) {
	m, n := newUserBar(t, 100)
	m.SetOrigin(10)

	// Bar is 90 cells centred in 100, so it starts at column 5 with two
	// padding cells before the first slot. Slot 1 covers [17, 34).
	click := tea.MouseMsg{X: 5 + 2 + 20, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = m.Update(click)
	if got := n.State().Active().Name; got != "saved" {
		t.Fatalf("active = %q, want saved", got)
	}

	miss := click
	miss.X = 5 + 2 + 70
	miss.Y = 9
	m, _ = m.Update(miss)
	if got := n.State().Active().Name; got != "saved" {
		t.Fatalf("click above the bar navigated to %q", got)
	}

	release := click
	release.X = 5 + 2 + 70
	release.Action = tea.MouseActionRelease
	m, _ = m.Update(release)
	if got := n.State().Active().Name; got != "saved" {
		t.Fatalf("mouse release navigated to %q", got)
	}

	padding := click
	padding.X = 5
	m, _ = m.Update(padding)
	if got := n.State().Active().Name; got != "saved" {
		t.Fatalf("click on the border navigated to %q", got)
	}
}

func TestModel_HiddenBar(t *testing.T) {
	m, n := newUserBar(t, 100)
	n.Navigate("add")
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if !m.Hidden() || m.Height() != 0 || m.View() != "" {
		t.Fatalf("bar should be hidden on add: hidden %v height %d", m.Hidden(), m.Height())
	}
	m, _ = m.Update(keyMsg("1"))
	if got := n.State().Active().Name; got != "add" {
		t.Fatalf("hidden bar handled a key and moved to %q", got)
	}
}

func TestModel_NilHost(t *testing.T) {
	m := New(nil, UserVariant(), DefaultStyle())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	for _, k := range []string{"1", "right", "left"} {
		m, _ = m.Update(keyMsg(k))
	}
	if res, _ := m.Press(0); res.Navigated {
		t.Fatalf("press without host navigated")
	}
	if !m.Hidden() || m.Height() != 0 || m.View() != "" || len(m.Slots()) != 0 {
		t.Fatalf("bar without host should render nothing")
	}
}

func TestModel_AdminHiddenRouteFreezesPill(t *testing.T) {
	n := newNavigator(t, []nav.Screen{
		{Name: "index", Title: "Dashboard"},
		{Name: "properties", Title: "Properties"},
		{Name: "users", Title: "Users"},
		{Name: "settings", Title: "Settings"},
		{Name: "notifications", Title: "Notifications", HideTabBar: true},
	})
	m := New(n, AdminVariant(), DefaultStyle())
	m.SetSize(84)
	m, _ = m.Update(keyMsg("4"))
	m = settle(t, m)
	offset := m.Indicator().Offset()
	if len(m.Slots()) != 4 {
		t.Fatalf("admin bar has %d slots, want 4", len(m.Slots()))
	}

	n.Navigate("notifications")
	if cmd := m.Sync(); cmd != nil {
		t.Fatalf("hidden active route started frames")
	}
	if m.Indicator().Visible() || m.Indicator().Offset() != offset {
		t.Fatalf("pill visible %v offset %v, want hidden at %v", m.Indicator().Visible(), m.Indicator().Offset(), offset)
	}

	n.Back()
	m.Sync()
	if !m.Indicator().Visible() || m.Indicator().Offset() != offset {
		t.Fatalf("pill should reappear in place at %v", offset)
	}
}

func TestModel_ResizeWhileSettledJumps(t *testing.T) {
	m, _ := newUserBar(t, 100)
	m, _ = m.Update(keyMsg("2"))
	m = settle(t, m)

	if cmd := m.SetSize(200); cmd != nil {
		t.Fatalf("resize while settled started frames")
	}
	want := m.geometry(5).ItemWidth
	if got := m.Indicator().Offset(); got != want {
		t.Fatalf("offset after resize = %v, want %v", got, want)
	}
}

func TestModel_EmptyGeometry(t *testing.T) {
	m, _ := newUserBar(t, 0)
	if m.View() != "" || m.Height() != 0 {
		t.Fatalf("zero width bar should render nothing")
	}
	if m.Indicator().Visible() {
		t.Fatalf("zero width bar shows a pill")
	}
}

func TestModel_View(t *testing.T) {
	m, _ := newUserBar(t, 100)
	view := m.View()
	plain := ansi.Strip(view)
	for _, want := range []string{"Home", "Favorite", "Add", "Chat", "Profile", "■", "♡"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("view missing %q:\n%s", want, plain)
		}
	}
	if h := lipgloss.Height(view); h != 3 {
		t.Fatalf("view height = %d, want 3", h)
	}
	if w := lipgloss.Width(view); w != 95 {
		t.Fatalf("view width = %d, want 95", w)
	}
}

func TestModel_Slots(t *testing.T) {
	m, _ := newUserBar(t, 100)
	slots := m.Slots()
	if len(slots) != 5 {
		t.Fatalf("got %d slots", len(slots))
	}
	first := slots[0]
	if !first.Focused || first.Label != "Home" || first.TestID != "tab-index" || first.AccessibilityLabel != "Home" {
		t.Fatalf("first slot = %+v", first)
	}
	if !slots[2].Action || slots[2].Glyph != "+" {
		t.Fatalf("add slot = %+v", slots[2])
	}
	if slots[4].Glyph != "○" {
		t.Fatalf("inactive profile glyph = %q, want outline", slots[4].Glyph)
	}
}

func TestSplitSpan(t *testing.T) {
	got := splitSpan(10, 20, 12, 18)
	if len(got) != 3 || !got[1].pill || got[1].start != 12 || got[1].end != 18 {
		t.Fatalf("splitSpan = %+v", got)
	}
	if got := splitSpan(10, 20, 0, 5); len(got) != 1 || got[0].pill {
		t.Fatalf("disjoint pill = %+v", got)
	}
	if got := splitSpan(10, 20, 5, 25); len(got) != 1 || !got[0].pill {
		t.Fatalf("covering pill = %+v", got)
	}
}
