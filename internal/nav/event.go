package nav

// Event types emitted by the navigator and its tab bars.
const (
	EventTabPress = "tabPress"
	EventFocus    = "focus"
)

// Event is delivered to listeners registered with AddListener.
type Event struct {
	Type   string
	Target string

	canPreventDefault bool
	defaultPrevented  bool
}

// NewTabPress builds the cancelable event a tab bar emits before navigating.
func NewTabPress(target string) *Event {
	return &Event{Type: EventTabPress, Target: target, canPreventDefault: true}
}

// PreventDefault suppresses the default action. It has no effect on events
// that are not cancelable.
func (e *Event) PreventDefault() {
	if e.canPreventDefault {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Cancelable reports whether PreventDefault is honoured.
func (e *Event) Cancelable() bool {
	return e.canPreventDefault
}

// Listener reacts to an emitted event.
type Listener func(*Event)
