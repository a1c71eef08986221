package dom

// EventType names the kinds of events the tree delivers.
type EventType string

const (
	EventClick   EventType = "click"
	EventKeyDown EventType = "keydown"
	EventFocus   EventType = "focus"
)

// Key names used by keydown events.
const (
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyTab       = "Tab"
	KeyEscape    = "Escape"
	KeyEnter     = "Enter"
	KeySpace     = " "
)

// Event is delivered to listeners while it travels from its target up to
// the document root.
type Event struct {
	Type   EventType
	Target *Element
	Key    string
	Shift  bool

	// CurrentTarget is the element whose listener is running.
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
}

// PreventDefault cancels the document's default action for the event.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener cancelled the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation keeps the event from reaching further ancestors.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Listener handles a dispatched event.
type Listener func(*Event)
