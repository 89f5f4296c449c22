package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/betkiray/kiray/internal/nav"
	"github.com/betkiray/kiray/internal/tabbar"
)

// homeScreen is the scrollable first tab. It is held by pointer so the
// tabPress listener and the Model copies share one viewport.
type homeScreen struct {
	viewport viewport.Model
	lines    []string
}

func newHomeScreen(variant string) *homeScreen {
	lines := homeLines()
	if variant == tabbar.VariantAdmin {
		lines = contentFor(variant, "index").Lines
	}
	h := &homeScreen{viewport: viewport.New(0, 0), lines: lines}
	h.viewport.SetContent(strings.Join(lines, "\n"))
	return h
}

func (h *homeScreen) setSize(width, height int) {
	h.viewport.Width = width
	h.viewport.Height = max(height, 0)
	h.viewport.SetContent(strings.Join(h.lines, "\n"))
}

// scrollToTop is the "press the active Home tab" shortcut.
func (h *homeScreen) scrollToTop() {
	h.viewport.GotoTop()
}

// handleKey scrolls the viewport and reports whether the key was used.
func (h *homeScreen) handleKey(msg tea.KeyMsg, keys keyMap) bool {
	switch {
	case key.Matches(msg, keys.Up):
		h.viewport.ScrollUp(1)
	case key.Matches(msg, keys.Down):
		h.viewport.ScrollDown(1)
	case key.Matches(msg, keys.Top):
		h.viewport.GotoTop()
	case key.Matches(msg, keys.Bottom):
		h.viewport.GotoBottom()
	default:
		return false
	}
	return true
}

// listen registers the scroll-to-top listener on the home route. It never
// prevents the default, so pressing Home from another tab still navigates.
func (h *homeScreen) listen(n *nav.Navigator) func() {
	state := n.State()
	i := state.IndexOf("index")
	if i < 0 {
		return func() {}
	}
	homeKey := state.Routes[i].Key
	return n.AddListener(nav.EventTabPress, homeKey, func(*nav.Event) {
		if n.State().Active().Key == homeKey {
			h.scrollToTop()
		}
	})
}
