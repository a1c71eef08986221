package dom

// Rect is the rendered area of an element in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.X+r.Width, o.X+o.Width), max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

type listenerEntry struct {
	id uint64
	fn Listener
}

// Element is a node in the document tree.
type Element struct {
	ID   string
	Tag  string
	Text string

	// TabIndex follows the HTML convention: values >= 0 take part in
	// sequential focus navigation, negative values are only focusable
	// programmatically.
	TabIndex int
	Rect     Rect

	doc       *Document
	parent    *Element
	children  []*Element
	attrs     map[string]string
	hidden    bool
	focusable bool
	listeners map[EventType][]listenerEntry
	nextID    uint64
}

// Document returns the document that created the element.
func (e *Element) Document() *Document {
	return e.doc
}

// Parent returns the parent element or nil for detached and root elements.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the child list in document order.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// Append attaches children in order, detaching them from any previous parent.
func (e *Element) Append(children ...*Element) {
	for _, child := range children {
		if child == nil || child == e {
			continue
		}
		if child.parent != nil {
			child.parent.Remove(child)
		}
		child.parent = e
		e.children = append(e.children, child)
	}
}

// Remove detaches a direct child. Removing the focused subtree blurs it.
func (e *Element) Remove(child *Element) bool {
	for i, c := range e.children {
		if c != child {
			continue
		}
		e.children = append(e.children[:i], e.children[i+1:]...)
		if e.doc != nil && child.Contains(e.doc.active) {
			e.doc.active = nil
		}
		child.parent = nil
		return true
	}
	return false
}

// Contains reports whether other is e or one of its descendants. A nil
// element is never contained.
func (e *Element) Contains(other *Element) bool {
	if e == nil {
		return false
	}
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Attached reports whether the element is reachable from the document root.
func (e *Element) Attached() bool {
	if e.doc == nil {
		return false
	}
	return e.doc.root.Contains(e)
}

// SetAttr sets an attribute; an empty value removes it.
func (e *Element) SetAttr(name, value string) {
	if value == "" {
		delete(e.attrs, name)
		return
	}
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Attr returns an attribute value.
func (e *Element) Attr(name string) string {
	return e.attrs[name]
}

// SetFocusable marks the element as able to receive focus.
func (e *Element) SetFocusable(focusable bool, tabIndex int) {
	e.focusable = focusable
	e.TabIndex = tabIndex
}

// Focusable reports whether the element accepts focus.
func (e *Element) Focusable() bool {
	return e.focusable
}

// SetHidden shows or hides the element subtree. Hiding the subtree that
// holds focus blurs it.
func (e *Element) SetHidden(hidden bool) {
	e.hidden = hidden
	if hidden && e.doc != nil && e.Contains(e.doc.active) {
		e.doc.active = nil
	}
}

// Hidden reports whether the element itself is hidden.
func (e *Element) Hidden() bool {
	return e.hidden
}

// Visible reports whether neither the element nor any ancestor is hidden.
func (e *Element) Visible() bool {
	for n := e; n != nil; n = n.parent {
		if n.hidden {
			return false
		}
	}
	return true
}

// AddEventListener registers fn for events of type t reaching this element.
// The returned function removes the listener and is safe to call repeatedly.
func (e *Element) AddEventListener(t EventType, fn Listener) func() {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]listenerEntry)
	}
	e.nextID++
	id := e.nextID
	e.listeners[t] = append(e.listeners[t], listenerEntry{id: id, fn: fn})
	return func() {
		entries := e.listeners[t]
		for i, entry := range entries {
			if entry.id == id {
				e.listeners[t] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of listeners registered for t.
func (e *Element) ListenerCount(t EventType) int {
	return len(e.listeners[t])
}

func (e *Element) fire(ev *Event) {
	entries := e.listeners[ev.Type]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)
	ev.CurrentTarget = e
	for _, entry := range snapshot {
		if !e.hasListener(ev.Type, entry.id) {
			continue
		}
		entry.fn(ev)
	}
}

// hasListener reports whether the listener is still registered, so one
// removed earlier in the same dispatch is skipped.
func (e *Element) hasListener(t EventType, id uint64) bool {
	for _, entry := range e.listeners[t] {
		if entry.id == id {
			return true
		}
	}
	return false
}

// Focus asks the document to move input focus here. It reports whether the
// element now holds focus; detached, hidden and non-focusable elements
// never do.
func (e *Element) Focus() bool {
	if e.doc == nil {
		return false
	}
	return e.doc.focus(e)
}

// ElementAt returns the deepest visible element whose rectangle contains the
// point. Later children are checked first since they render on top.
func (e *Element) ElementAt(x, y int) *Element {
	if e.hidden {
		return nil
	}
	for i := len(e.children) - 1; i >= 0; i-- {
		if hit := e.children[i].ElementAt(x, y); hit != nil {
			return hit
		}
	}
	if e.Rect.Contains(x, y) {
		return e
	}
	return nil
}

// Walk visits the element and its descendants in document order. Returning
// false from fn skips the element's subtree.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.children {
		child.Walk(fn)
	}
}
