package menu

import (
	"strconv"

	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/atomicstack/headless-menu/internal/emitter"
)

// Trigger is the control that opens and closes a menu.
type Trigger struct {
	el        *dom.Element
	activated *emitter.Emitter[*dom.Event]
	remove    func()
}

// NewTrigger wraps el, which becomes focusable and is announced as a popup
// discloser.
func NewTrigger(el *dom.Element) *Trigger {
	el.SetFocusable(true, 0)
	el.SetAttr("role", "button")
	el.SetAttr("aria-haspopup", "listbox")
	el.SetAttr("aria-expanded", "false")
	return &Trigger{el: el, activated: emitter.New[*dom.Event]()}
}

// Element returns the trigger's element.
func (t *Trigger) Element() *dom.Element {
	return t.el
}

// Activated fires once per click on the trigger with the originating event.
func (t *Trigger) Activated() *emitter.Emitter[*dom.Event] {
	return t.activated
}

// Start registers the click listener.
func (t *Trigger) Start() {
	if t.remove != nil {
		return
	}
	t.remove = t.el.AddEventListener(dom.EventClick, func(ev *dom.Event) {
		t.activated.Emit(ev)
	})
}

// Dispose removes the click listener.
func (t *Trigger) Dispose() {
	if t.remove == nil {
		return
	}
	t.remove()
	t.remove = nil
}

func (t *Trigger) setExpanded(open bool) {
	t.el.SetAttr("aria-expanded", strconv.FormatBool(open))
}
