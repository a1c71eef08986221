package menu

import (
	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/atomicstack/headless-menu/internal/emitter"
)

// Item is one focusable entry of an ItemList.
type Item struct {
	el       *dom.Element
	list     *ItemList
	label    string
	active   bool
	selected *emitter.Emitter[*Item]
	removers []func()
}

// Element returns the item's element.
func (i *Item) Element() *dom.Element {
	return i.el
}

// Label returns the text used for rendering and typeahead.
func (i *Item) Label() string {
	return i.label
}

// IsActive reports whether the item is the highlighted one.
func (i *Item) IsActive() bool {
	return i.active
}

// Selected fires when the item is clicked or activated with Enter/Space.
func (i *Item) Selected() *emitter.Emitter[*Item] {
	return i.selected
}

// Focus asks the document to focus the item. When focus lands the list is
// told through the item's focus listener, so IsActive is true afterwards.
func (i *Item) Focus() bool {
	return i.el.Focus()
}

func (i *Item) start() {
	if len(i.removers) > 0 {
		return
	}
	i.removers = append(i.removers,
		i.el.AddEventListener(dom.EventFocus, func(*dom.Event) {
			i.list.itemGotFocus(i)
		}),
		i.el.AddEventListener(dom.EventClick, func(*dom.Event) {
			i.list.itemSelected(i)
		}),
	)
}

func (i *Item) dispose() {
	for _, remove := range i.removers {
		remove()
	}
	i.removers = nil
}
