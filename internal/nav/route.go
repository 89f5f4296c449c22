package nav

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Route identifies one screen known to the navigator.
type Route struct {
	Key  string
	Name string
}

// State is the navigator's route list plus the active index.
type State struct {
	Routes []Route
	Index  int
}

// Active returns the active route, or the zero Route when the state is empty.
func (s State) Active() Route {
	if s.Index < 0 || s.Index >= len(s.Routes) {
		return Route{}
	}
	return s.Routes[s.Index]
}

// IndexOf returns the position of the route with the given name, or -1.
func (s State) IndexOf(name string) int {
	for i, r := range s.Routes {
		if r.Name == name {
			return i
		}
	}
	return -1
}

// Descriptor carries per-route presentation options.
type Descriptor struct {
	Title              string
	Label              string
	AccessibilityLabel string
	TestID             string
	HideTabBar         bool
}

// Screen declares a route when building a Navigator.
type Screen struct {
	Name       string
	Title      string
	Label      string
	HideTabBar bool
}

func newRouteKey(name string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s-%s", name, id[:8])
}

func cloneRoutes(routes []Route) []Route {
	if len(routes) == 0 {
		return nil
	}
	dup := make([]Route, len(routes))
	copy(dup, routes)
	return dup
}
