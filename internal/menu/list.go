package menu

import (
	"time"

	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/atomicstack/headless-menu/internal/emitter"
	"github.com/atomicstack/headless-menu/internal/logging/events"
)

// ListOption configures an ItemList.
type ListOption func(*ItemList)

// WithTypeahead lets printable keys move focus to the first item whose label
// matches the keys typed within timeout of each other.
func WithTypeahead(timeout time.Duration) ListOption {
	return func(l *ItemList) {
		l.typeahead = newTypeahead(timeout, time.Now)
	}
}

// WithClock replaces the time source used by typeahead.
func WithClock(now func() time.Time) ListOption {
	return func(l *ItemList) {
		l.now = now
	}
}

// ItemList holds the items of a menu and moves a single focus point between
// them.
type ItemList struct {
	el       *dom.Element
	sched    dom.Scheduler
	items    []*Item
	active   int
	open     bool
	openSeq  uint64
	selected *emitter.Emitter[*Item]

	typeahead *typeahead
	now       func() time.Time

	source        *emitter.Emitter[bool]
	openSub       *emitter.Subscription
	removeKeyDown func()
}

// NewItemList wraps el. Focus requests that follow an open signal are queued
// on sched.
func NewItemList(el *dom.Element, sched dom.Scheduler, opts ...ListOption) *ItemList {
	el.SetFocusable(true, -1)
	el.SetAttr("role", "listbox")
	el.SetHidden(true)
	l := &ItemList{
		el:       el,
		sched:    sched,
		active:   -1,
		selected: emitter.New[*Item](),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.typeahead != nil && l.now != nil {
		l.typeahead.now = l.now
	}
	return l
}

// Element returns the list container.
func (l *ItemList) Element() *dom.Element {
	return l.el
}

// AddItem appends el as a new item labelled label.
func (l *ItemList) AddItem(el *dom.Element, label string) *Item {
	el.SetFocusable(true, 0)
	el.SetAttr("role", "option")
	if el.Text == "" {
		el.Text = label
	}
	item := &Item{el: el, list: l, label: label, selected: emitter.New[*Item]()}
	l.el.Append(el)
	l.items = append(l.items, item)
	if l.removeKeyDown != nil {
		item.start()
	}
	return item
}

// RemoveItem detaches item from the list.
func (l *ItemList) RemoveItem(item *Item) bool {
	for i, it := range l.items {
		if it != item {
			continue
		}
		item.dispose()
		item.active = false
		l.el.Remove(item.el)
		l.items = append(l.items[:i], l.items[i+1:]...)
		switch {
		case l.active == i:
			l.active = -1
		case l.active > i:
			l.active--
		}
		return true
	}
	return false
}

// Items returns the items in document order.
func (l *ItemList) Items() []*Item {
	out := make([]*Item, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *ItemList) Len() int {
	return len(l.items)
}

// ActiveIndex returns the index of the highlighted item, or -1.
func (l *ItemList) ActiveIndex() int {
	return l.active
}

// ActiveItem returns the highlighted item, or nil.
func (l *ItemList) ActiveItem() *Item {
	if l.active < 0 || l.active >= len(l.items) {
		return nil
	}
	return l.items[l.active]
}

// IsOpen reports whether the last open signal was true.
func (l *ItemList) IsOpen() bool {
	return l.open
}

// Selected fires when any item is selected.
func (l *ItemList) Selected() *emitter.Emitter[*Item] {
	return l.selected
}

// Focus moves input focus to the list container.
func (l *ItemList) Focus() bool {
	return l.el.Focus()
}

// Bind sets the channel carrying open/close signals. The list subscribes to
// it on Start and owns that subscription.
func (l *ItemList) Bind(source *emitter.Emitter[bool]) {
	l.source = source
}

// Start registers the keyboard and item listeners and subscribes to the
// bound open/close channel.
func (l *ItemList) Start() {
	if l.removeKeyDown != nil {
		return
	}
	l.removeKeyDown = l.el.AddEventListener(dom.EventKeyDown, l.handleKeyDown)
	for _, item := range l.items {
		item.start()
	}
	if l.source != nil {
		l.openSub = l.source.Subscribe(l.SetOpen)
	}
}

// Dispose releases everything Start acquired. It is safe to call more than
// once.
func (l *ItemList) Dispose() {
	l.openSub.Unsubscribe()
	l.openSub = nil
	if l.removeKeyDown != nil {
		l.removeKeyDown()
		l.removeKeyDown = nil
	}
	for _, item := range l.items {
		item.dispose()
	}
	l.openSeq++
}

// SetOpen applies an open or close signal. Opening shows the list and
// focuses the first item (or the container when empty) on the next
// scheduler turn; closing clears the highlight and hides the list.
func (l *ItemList) SetOpen(open bool) {
	l.open = open
	l.openSeq++
	if l.typeahead != nil {
		l.typeahead.reset()
	}
	if !open {
		l.itemGotFocus(nil)
		l.el.SetHidden(true)
		return
	}
	l.el.SetHidden(false)
	seq := l.openSeq
	l.sched.Defer(func() {
		if !l.open || l.openSeq != seq {
			return
		}
		l.focusFirst()
	})
}

func (l *ItemList) focusFirst() {
	if len(l.items) > 0 {
		l.items[0].Focus()
		return
	}
	l.focusContainer()
}

func (l *ItemList) focusContainer() {
	events.List.FocusContainer(l.el.ID)
	l.Focus()
}

func (l *ItemList) handleKeyDown(ev *dom.Event) {
	if !l.open {
		return
	}
	count := len(l.items)
	current := l.active
	next := current
	switch ev.Key {
	case dom.KeyArrowDown:
		if count == 0 {
			l.focusContainer()
			return
		}
		if current < 0 {
			next = 0
		} else {
			next = (current + 1) % count
		}
	case dom.KeyArrowUp:
		if count == 0 {
			l.focusContainer()
			return
		}
		if current < 0 {
			next = count - 1
		} else {
			next = (current - 1 + count) % count
		}
	case dom.KeyHome:
		if count == 0 {
			l.focusContainer()
			return
		}
		next = 0
	case dom.KeyEnd:
		if count == 0 {
			l.focusContainer()
			return
		}
		next = count - 1
	case dom.KeyTab:
		if count == 0 {
			return
		}
		switch {
		case ev.Shift && current == 0:
			ev.PreventDefault()
			next = count - 1
		case !ev.Shift && current == count-1:
			ev.PreventDefault()
			next = 0
		default:
			return
		}
		events.List.FocusLock(l.el.ID, current, next)
	default:
		if l.typeahead == nil || !isTypeaheadKey(ev.Key) || count == 0 {
			return
		}
		query := l.typeahead.push(ev.Key)
		idx := l.typeahead.match(query, l.labels(), current)
		events.List.Typeahead(l.el.ID, query, idx)
		if idx < 0 {
			return
		}
		next = idx
	}
	if next == current {
		return
	}
	// The item's focus listener updates the highlight.
	l.items[next].Focus()
}

func (l *ItemList) labels() []string {
	labels := make([]string, len(l.items))
	for i, item := range l.items {
		labels[i] = item.label
	}
	return labels
}

// itemGotFocus makes item the only active item. A nil item clears the
// highlight.
func (l *ItemList) itemGotFocus(item *Item) {
	prev := l.active
	l.active = -1
	for idx, it := range l.items {
		if it == item {
			it.active = true
			l.active = idx
		} else {
			it.active = false
		}
	}
	if l.active != prev {
		events.List.Cursor(l.el.ID, l.active)
	}
}

func (l *ItemList) itemSelected(item *Item) {
	events.List.Select(l.el.ID, item.el.ID, item.label)
	item.selected.Emit(item)
	l.selected.Emit(item)
}
