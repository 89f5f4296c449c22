package ui

import "strings"

// renderHeader renders the one-line header: app badge, variant and the
// active screen title, plus key hints when there is room.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		styles.Badge.Render("kiray"),
		bg.Render(strings.ToUpper(m.variant.Name), styles.MutedText),
		bg.Render(m.activeTitle(), styles.Title),
	}

	if m.width >= LayoutCompactWidth {
		var hints []string
		if m.nav != nil && m.nav.CanGoBack() {
			hints = append(hints, "esc back")
		}
		hints = append(hints, "? help")
		parts = append(parts, bg.Render(strings.Join(hints, "  "), styles.FaintText))
	}

	return styles.Header.Width(m.width).MaxHeight(HeaderHeight).Render(bg.Join(parts, "  "))
}

// activeTitle resolves the header title for the active route.
func (m Model) activeTitle() string {
	if m.nav == nil {
		return ""
	}
	route := m.nav.State().Active()
	if d := m.nav.Descriptor(route.Key); d.Title != "" {
		return d.Title
	}
	return route.Name
}
