package nav

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrNoRoutes is returned when a Navigator is built without screens.
	ErrNoRoutes = errors.New("navigator needs at least one screen")
	// ErrDuplicateRoute is returned when two screens share a name.
	ErrDuplicateRoute = errors.New("duplicate route name")
)

type listenerEntry struct {
	id     int
	typ    string
	target string
	fn     Listener
}

// Navigator owns the route list, the active index and the event bus.
// All methods are safe for concurrent use.
type Navigator struct {
	mu          sync.RWMutex
	routes      []Route
	descriptors map[string]Descriptor
	index       int
	history     []int
	listeners   []listenerEntry
	nextID      int
}

// New builds a Navigator with one route per screen. The first screen is
// active.
func New(screens ...Screen) (*Navigator, error) {
	if len(screens) == 0 {
		return nil, ErrNoRoutes
	}
	n := &Navigator{
		routes:      make([]Route, 0, len(screens)),
		descriptors: make(map[string]Descriptor, len(screens)),
	}
	seen := make(map[string]struct{}, len(screens))
	for _, s := range screens {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, fmt.Errorf("screen name is empty")
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoute, name)
		}
		seen[name] = struct{}{}

		route := Route{Key: newRouteKey(name), Name: name}
		n.routes = append(n.routes, route)
		n.descriptors[route.Key] = Descriptor{
			Title:              s.Title,
			Label:              s.Label,
			AccessibilityLabel: s.Title,
			TestID:             "tab-" + name,
			HideTabBar:         s.HideTabBar,
		}
	}
	return n, nil
}

// State returns a copy of the current navigation state.
func (n *Navigator) State() State {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return State{Routes: cloneRoutes(n.routes), Index: n.index}
}

// Descriptor returns the options for the route with the given key.
func (n *Navigator) Descriptor(key string) Descriptor {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.descriptors[key]
}

// Navigate activates the route with the given name. It returns false when no
// such route exists.
func (n *Navigator) Navigate(name string) bool {
	n.mu.Lock()
	target := -1
	for i, r := range n.routes {
		if r.Name == name {
			target = i
			break
		}
	}
	if target < 0 {
		n.mu.Unlock()
		return false
	}
	if target == n.index {
		n.mu.Unlock()
		return true
	}
	n.history = append(n.history, n.index)
	n.index = target
	key := n.routes[target].Key
	n.mu.Unlock()

	n.Emit(&Event{Type: EventFocus, Target: key})
	return true
}

// Back returns to the previously active route. It returns false when the
// history is empty.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	if len(n.history) == 0 {
		n.mu.Unlock()
		return false
	}
	last := len(n.history) - 1
	n.index = n.history[last]
	n.history = n.history[:last]
	key := n.routes[n.index].Key
	n.mu.Unlock()

	n.Emit(&Event{Type: EventFocus, Target: key})
	return true
}

// CanGoBack reports whether Back would change the active route.
func (n *Navigator) CanGoBack() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.history) > 0
}

// AddListener registers fn for events of the given type. An empty target
// receives events for every route. The returned func removes the listener.
func (n *Navigator) AddListener(typ, target string, fn Listener) (remove func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	id := n.nextID
	n.listeners = append(n.listeners, listenerEntry{id: id, typ: typ, target: target, fn: fn})
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers ev to matching listeners in registration order. Listeners
// run without the lock held and may call back into the Navigator.
func (n *Navigator) Emit(ev *Event) {
	if ev == nil {
		return
	}
	n.mu.RLock()
	matched := make([]Listener, 0, len(n.listeners))
	for _, l := range n.listeners {
		if l.typ != ev.Type {
			continue
		}
		if l.target != "" && l.target != ev.Target {
			continue
		}
		matched = append(matched, l.fn)
	}
	n.mu.RUnlock()

	for _, fn := range matched {
		fn(ev)
	}
}
