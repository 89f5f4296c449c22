// Package nav is the navigation host the tab bars talk to.
//
// A Navigator owns an ordered list of routes, the index of the active route,
// a back-stack of previously active indices and a small event bus. Tab bars
// read State on every render, emit a cancelable "tabPress" Event when a slot
// is pressed and call Navigate unless a listener prevented the default.
//
// # Routes and descriptors
//
// Routes are declared once with New and never created or destroyed after
// that. Each route gets a unique key of the form "<name>-<8 hex>" and a
// Descriptor holding its title, label, accessibility label, test id and the
// HideTabBar flag used by full-screen flows such as "add listing".
//
// # Events
//
//   - tabPress: emitted by tab bars, cancelable via PreventDefault
//   - focus: emitted by Navigate and Back after the active route changes
//
// Listeners are called in registration order, outside the navigator's lock,
// so a listener may navigate or register further listeners.
//
// # Concurrency
//
// The Navigator guards its state with a RWMutex and State returns a copy of
// the route slice, so callers never observe later mutations.
package nav
