package menu

import (
	"github.com/atomicstack/headless-menu/internal/click"
	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/atomicstack/headless-menu/internal/emitter"
	"github.com/atomicstack/headless-menu/internal/logging/events"
)

// Builder composes a Menu from its host element and children.
type Builder struct {
	el            *dom.Element
	clicks        *click.Broadcaster
	triggers      []*Trigger
	lists         []*ItemList
	closeOnSelect bool
}

// NewBuilder starts a menu hosted on el. A nil broadcaster uses
// click.Default.
func NewBuilder(el *dom.Element, clicks *click.Broadcaster) *Builder {
	if clicks == nil {
		clicks = click.Default()
	}
	return &Builder{el: el, clicks: clicks}
}

// Trigger adds the trigger child.
func (b *Builder) Trigger(t *Trigger) *Builder {
	if t != nil {
		b.triggers = append(b.triggers, t)
	}
	return b
}

// List adds the item list child.
func (b *Builder) List(l *ItemList) *Builder {
	if l != nil {
		b.lists = append(b.lists, l)
	}
	return b
}

// CloseOnSelect closes the menu whenever an item is selected.
func (b *Builder) CloseOnSelect(enabled bool) *Builder {
	b.closeOnSelect = enabled
	return b
}

// Build checks that exactly one trigger and one item list were supplied and
// that both live inside the menu element, then wires them. On failure
// nothing stays registered.
func (b *Builder) Build() (m *Menu, err error) {
	if b.el == nil {
		return nil, &StructuralError{Child: "element", Err: ErrMissingElement}
	}
	m = &Menu{
		el:            b.el,
		clicks:        b.clicks,
		closeOnSelect: b.closeOnSelect,
		openState:     emitter.New[bool](),
	}
	defer func() {
		if err != nil {
			m.Dispose()
			events.Menu.StructuralError(b.el.ID, err)
			m = nil
		}
	}()

	m.startKeyboard()

	var trigger *Trigger
	if trigger, err = single(b.el, b.triggers, "trigger", ErrMissingTrigger); err != nil {
		return m, err
	}
	var list *ItemList
	if list, err = single(b.el, b.lists, "item list", ErrMissingList); err != nil {
		return m, err
	}
	b.el.SetAttr("data-menu", "true")
	m.bind(trigger, list)
	return m, nil
}

// MustBuild is Build for compositions known to be valid; it panics on a
// structural error.
func (b *Builder) MustBuild() *Menu {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

type child interface {
	Element() *dom.Element
}

func single[T child](host *dom.Element, candidates []T, name string, missing error) (T, error) {
	var zero T
	var found []T
	for _, c := range candidates {
		if el := c.Element(); el != nil && el != host && host.Contains(el) {
			found = append(found, c)
		}
	}
	switch len(found) {
	case 0:
		return zero, &StructuralError{MenuID: host.ID, Child: name, Err: missing}
	case 1:
		return found[0], nil
	default:
		return zero, &StructuralError{MenuID: host.ID, Child: name, Err: ErrDuplicateChild}
	}
}
