package tabbar

import "github.com/betkiray/kiray/internal/nav"

// Host is the navigation framework a tab bar is attached to. *nav.Navigator
// satisfies it.
type Host interface {
	State() nav.State
	Descriptor(key string) nav.Descriptor
	Emit(ev *nav.Event)
	Navigate(name string) bool
}

var _ Host = (*nav.Navigator)(nil)

// PressResult describes what a press did.
type PressResult struct {
	Route     nav.Route
	Event     *nav.Event
	Focused   bool // the pressed slot was already active
	Navigated bool
}

// Press handles a press on visible slot i. It emits exactly one cancelable
// tabPress event for the slot's route and asks the host to navigate only
// when the slot is not already active and no listener prevented the
// default. An out-of-range slot does nothing.
func Press(host Host, state nav.State, visible []nav.Route, i int) PressResult {
	if host == nil || i < 0 || i >= len(visible) {
		return PressResult{}
	}
	route := visible[i]
	res := PressResult{
		Route:   route,
		Focused: route.Key == state.Active().Key,
		Event:   nav.NewTabPress(route.Key),
	}
	host.Emit(res.Event)
	if !res.Focused && !res.Event.DefaultPrevented() {
		res.Navigated = host.Navigate(route.Name)
	}
	return res
}
