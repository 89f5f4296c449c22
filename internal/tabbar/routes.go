package tabbar

import "github.com/betkiray/kiray/internal/nav"

// VisibleRoutes returns the routes whose names are not in hidden, in their
// original order. The result never aliases the input slice.
func VisibleRoutes(routes []nav.Route, hidden map[string]struct{}) []nav.Route {
	out := make([]nav.Route, 0, len(routes))
	for _, r := range routes {
		if _, skip := hidden[r.Name]; skip {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ActiveVisibleIndex returns the position of the state's active route within
// visible, matched by key, or -1 when the active route is not visible.
func ActiveVisibleIndex(state nav.State, visible []nav.Route) int {
	if state.Index < 0 || state.Index >= len(state.Routes) {
		return -1
	}
	key := state.Routes[state.Index].Key
	for i, r := range visible {
		if r.Key == key {
			return i
		}
	}
	return -1
}
