package tabbar

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the keyboard bindings a bar responds to.
type KeyMap struct {
	Slots []key.Binding
	Next  key.Binding
	Prev  key.Binding
}

// DefaultKeyMap binds 1..9 to slots and the arrow keys to the neighbours of
// the active slot.
func DefaultKeyMap() KeyMap {
	slots := make([]key.Binding, 0, 9)
	for i := 1; i <= 9; i++ {
		k := strconv.Itoa(i)
		slots = append(slots, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, "Tab "+k),
		))
	}
	return KeyMap{
		Slots: slots,
		Next: key.NewBinding(
			key.WithKeys("right", "L"),
			key.WithHelp("→/L", "Next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "H"),
			key.WithHelp("←/H", "Previous tab"),
		),
	}
}

// ShortHelp returns the bindings shown in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next}
}

// FullHelp returns the bindings shown in the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	first := key.NewBinding(key.WithKeys("1"), key.WithHelp("1-9", "Press tab"))
	return [][]key.Binding{{first, k.Prev, k.Next}}
}
