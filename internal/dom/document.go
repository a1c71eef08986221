package dom

// Scheduler runs work on a later turn of the event loop, after the
// synchronous update that queued it has finished.
type Scheduler interface {
	Defer(fn func())
}

// Document owns the element tree, the focused element and the queue of
// deferred tasks. It is not safe for concurrent use; all access happens on
// the goroutine that delivers input.
type Document struct {
	root   *Element
	active *Element
	tasks  []func()
}

var _ Scheduler = (*Document)(nil)

// NewDocument returns a document with an empty body element.
func NewDocument() *Document {
	d := &Document{}
	d.root = d.CreateElement("body", "body")
	return d
}

// Body returns the root element.
func (d *Document) Body() *Element {
	return d.root
}

// CreateElement returns a detached element owned by the document.
func (d *Document) CreateElement(tag, id string) *Element {
	return &Element{ID: id, Tag: tag, TabIndex: -1, doc: d}
}

// GetElementByID finds an attached element by id.
func (d *Document) GetElementByID(id string) *Element {
	var found *Element
	d.root.Walk(func(e *Element) bool {
		if found != nil {
			return false
		}
		if e.ID == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// ActiveElement returns the focused element, or nil when focus rests on the
// body.
func (d *Document) ActiveElement() *Element {
	return d.active
}

// Blur drops focus back to the body.
func (d *Document) Blur() {
	d.active = nil
}

func (d *Document) focus(e *Element) bool {
	if !e.focusable || !e.Attached() || !e.Visible() {
		return false
	}
	if d.active == e {
		return true
	}
	d.active = e
	e.fire(&Event{Type: EventFocus, Target: e})
	return d.active == e
}

// Dispatch delivers ev to its target and then to each ancestor until a
// listener stops propagation. An event without a target is delivered to
// the body only.
func (d *Document) Dispatch(ev *Event) {
	if ev.Target == nil {
		d.root.fire(ev)
		return
	}
	path := make([]*Element, 0, 8)
	for n := ev.Target; n != nil; n = n.parent {
		path = append(path, n)
	}
	for _, n := range path {
		n.fire(ev)
		if ev.stopped {
			return
		}
	}
}

// Click dispatches a click on target. Nil targets model synthetic clicks
// that did not land on any element.
func (d *Document) Click(target *Element) *Event {
	ev := &Event{Type: EventClick, Target: target}
	d.Dispatch(ev)
	return ev
}

// KeyDown dispatches a keydown to the focused element (or the body) and runs
// the default action unless a listener prevented it.
func (d *Document) KeyDown(key string, shift bool) *Event {
	target := d.active
	if target == nil {
		target = d.root
	}
	ev := &Event{Type: EventKeyDown, Target: target, Key: key, Shift: shift}
	d.Dispatch(ev)
	if !ev.defaultPrevented {
		d.defaultKeyAction(ev)
	}
	return ev
}

func (d *Document) defaultKeyAction(ev *Event) {
	switch ev.Key {
	case KeyTab:
		if ev.Shift {
			d.FocusPrevious()
		} else {
			d.FocusNext()
		}
	case KeyEnter, KeySpace:
		if d.active != nil {
			d.Click(d.active)
		}
	}
}

// Focusables lists attached, visible elements that take part in sequential
// focus navigation, in document order.
func (d *Document) Focusables() []*Element {
	var out []*Element
	d.root.Walk(func(e *Element) bool {
		if e.hidden {
			return false
		}
		if e.focusable && e.TabIndex >= 0 {
			out = append(out, e)
		}
		return true
	})
	return out
}

// FocusNext moves focus to the next sequentially focusable element,
// wrapping to the first.
func (d *Document) FocusNext() bool {
	return d.focusStep(1)
}

// FocusPrevious moves focus to the previous sequentially focusable element,
// wrapping to the last.
func (d *Document) FocusPrevious() bool {
	return d.focusStep(-1)
}

func (d *Document) focusStep(delta int) bool {
	order := d.Focusables()
	n := len(order)
	if n == 0 {
		return false
	}
	idx := -1
	for i, e := range order {
		if e == d.active {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = n - 1
	default:
		next = (idx + delta + n) % n
	}
	return order[next].Focus()
}

// Defer queues fn to run on the next Flush.
func (d *Document) Defer(fn func()) {
	if fn == nil {
		return
	}
	d.tasks = append(d.tasks, fn)
}

// Pending reports whether deferred tasks are waiting.
func (d *Document) Pending() bool {
	return len(d.tasks) > 0
}

// Flush runs the tasks queued before the call. Tasks they queue in turn wait
// for the next Flush. It returns the number of tasks run.
func (d *Document) Flush() int {
	tasks := d.tasks
	d.tasks = nil
	for _, task := range tasks {
		task()
	}
	return len(tasks)
}
