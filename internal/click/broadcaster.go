// Package click republishes clicks observed anywhere in a document so that
// widgets can react to clicks that land outside their own subtree.
package click

import (
	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/atomicstack/headless-menu/internal/emitter"
	"github.com/atomicstack/headless-menu/internal/logging/events"
)

// Listener receives the target of each published click. The target is nil
// when the click did not land on any element.
type Listener func(target *dom.Element)

// Subscription identifies a registered listener.
type Subscription = emitter.Subscription

// Broadcaster is a click bus. Every listener sees each click published after
// it subscribed and before it unsubscribed, in publish order.
type Broadcaster struct {
	bus *emitter.Emitter[*dom.Element]
}

// NewBroadcaster returns an empty bus.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{bus: emitter.New[*dom.Element]()}
}

var defaultBroadcaster = NewBroadcaster()

// Default returns the process-wide broadcaster.
func Default() *Broadcaster {
	return defaultBroadcaster
}

// Subscribe registers fn.
func (b *Broadcaster) Subscribe(fn Listener) *Subscription {
	sub := b.bus.Subscribe(func(target *dom.Element) { fn(target) })
	events.Click.Subscribe(sub.ID())
	return sub
}

// Unsubscribe removes the listener behind sub. Nil or already released
// subscriptions are ignored.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	if !sub.Active() {
		return
	}
	sub.Unsubscribe()
	events.Click.Unsubscribe(sub.ID())
}

// Publish delivers target to every current listener.
func (b *Broadcaster) Publish(target *dom.Element) {
	id := ""
	if target != nil {
		id = target.ID
	}
	events.Click.Publish(id, b.bus.Len())
	b.bus.Emit(target)
}

// Listeners returns the number of registered listeners.
func (b *Broadcaster) Listeners() int {
	return b.bus.Len()
}
