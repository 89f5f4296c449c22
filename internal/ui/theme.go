package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/betkiray/kiray/internal/prefs"
	"github.com/betkiray/kiray/internal/tabbar"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string
	SurfaceAlt string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Tab bar colors. The admin bar uses a slightly lighter inactive tone.
	TabBar TabBarColors
}

// TabBarColors holds the tab bar palette.
type TabBarColors struct {
	Background    string
	Border        string
	Pill          string
	Active        string
	Inactive      string
	AdminInactive string
	ActionFg      string
	ActionBg      string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Surface)).
			Background(lipgloss.Color(t.Accent)).
			Padding(0, 1),

		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Header lipgloss.Style
	Title  lipgloss.Style
	Badge  lipgloss.Style
	Link   lipgloss.Style
}

// WithBackground returns a copy of Styles with every style on the given
// background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	return Styles{
		Background: s.Background.Background(bg),
		Surface:    s.Surface.Background(bg),

		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		DangerText:  s.DangerText.Background(bg),

		Header: s.Header.Background(bg),
		Title:  s.Title.Background(bg),
		Badge:  s.Badge,
		Link:   s.Link.Background(bg),
	}
}

// TabBarStyle builds the tab bar styles for the named variant.
func (t Theme) TabBarStyle(variant string) tabbar.Style {
	c := t.TabBar
	inactive := c.Inactive
	if variant == tabbar.VariantAdmin && c.AdminInactive != "" {
		inactive = c.AdminInactive
	}
	bg := lipgloss.Color(c.Background)
	return tabbar.Style{
		Bar: lipgloss.NewStyle().
			Background(bg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			BorderBackground(lipgloss.Color(t.Background)),
		Active: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Active)).
			Bold(true),
		Inactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(inactive)),
		Action: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.ActionFg)).
			Background(lipgloss.Color(c.ActionBg)).
			Bold(true),
		Pill: lipgloss.NewStyle().
			Background(lipgloss.Color(c.Pill)),
	}
}

// Theme definitions

const (
	ThemeLight = "Light"
	ThemeDark  = "Dark"
)

var themes = map[string]Theme{
	ThemeLight: lightTheme(),
	ThemeDark:  darkTheme(),
}

var themeOrder = []string{ThemeLight, ThemeDark}

// GetTheme returns a theme by name, ignoring case. Unknown names fall back
// to Light.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	for _, n := range themeOrder {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return themes[n]
		}
	}
	return lightTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeForPref maps a stored theme preference to a theme name.
func ThemeForPref(t prefs.Theme) string {
	if t == prefs.Dark {
		return ThemeDark
	}
	return ThemeLight
}

// PrefForTheme maps a theme name to its stored preference.
func PrefForTheme(name string) prefs.Theme {
	if GetTheme(name).Name == ThemeDark {
		return prefs.Dark
	}
	return prefs.Light
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func lightTheme() Theme {
	return Theme{
		Name: ThemeLight,

		Background: "#F5F5F5",
		Surface:    "#FFFFFF",
		SurfaceAlt: "#F0F0F0",

		Border:      "#E0E0E0",
		BorderFocus: "#000000",

		Text:    "#000000",
		Muted:   "#7D849A",
		Faint:   "#8F8F8F",
		Accent:  "#007AFF",
		Success: "#4CAF50",
		Warning: "#B26A00",
		Danger:  "#FF3B30",

		TabBar: TabBarColors{
			Background:    "#FFFFFF",
			Border:        "#E5E5EA",
			Pill:          "#EDEDED",
			Active:        "#000000",
			Inactive:      "#888888",
			AdminInactive: "#999999",
			ActionFg:      "#FFFFFF",
			ActionBg:      "#000000",
		},
	}
}

func darkTheme() Theme {
	return Theme{
		Name: ThemeDark,

		Background: "#121212",
		Surface:    "#1E1E1E",
		SurfaceAlt: "#2C2C2E",

		Border:      "#333333",
		BorderFocus: "#FFFFFF",

		Text:    "#FFFFFF",
		Muted:   "#8E8E93",
		Faint:   "#636366",
		Accent:  "#0A84FF",
		Success: "#4CAF50",
		Warning: "#FFD60A",
		Danger:  "#FF453A",

		TabBar: TabBarColors{
			Background:    "#1E1E1E",
			Border:        "#444444",
			Pill:          "#3A3A3C",
			Active:        "#FFFFFF",
			Inactive:      "#999999",
			AdminInactive: "#AAAAAA",
			ActionFg:      "#121212",
			ActionBg:      "#FFFFFF",
		},
	}
}
