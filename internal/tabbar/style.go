package tabbar

import "github.com/charmbracelet/lipgloss"

// Style holds the lipgloss styles used to draw a bar.
type Style struct {
	Bar      lipgloss.Style // container; its border is drawn when the layout has padding
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Action   lipgloss.Style
	Pill     lipgloss.Style // applied on top of slot styles under the pill
}

// DefaultStyle is a neutral dark palette.
func DefaultStyle() Style {
	return Style{
		Bar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3a3a3a")),
		Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
		Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
		Action: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#ffffff")).
			Bold(true),
		Pill: lipgloss.NewStyle().Background(lipgloss.Color("#404040")),
	}
}
