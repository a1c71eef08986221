package click

import "github.com/atomicstack/headless-menu/internal/dom"

// Relay publishes every click that reaches its host element.
type Relay struct {
	host   *dom.Element
	bus    *Broadcaster
	remove func()
}

// NewRelay binds a relay to host. A nil bus uses Default.
func NewRelay(host *dom.Element, bus *Broadcaster) *Relay {
	if bus == nil {
		bus = Default()
	}
	return &Relay{host: host, bus: bus}
}

// Start begins relaying clicks. Calling it on a started relay does nothing.
func (r *Relay) Start() {
	if r.remove != nil || r.host == nil {
		return
	}
	r.remove = r.host.AddEventListener(dom.EventClick, func(ev *dom.Event) {
		r.bus.Publish(ev.Target)
	})
}

// Dispose stops relaying. It is safe to call more than once.
func (r *Relay) Dispose() {
	if r.remove == nil {
		return
	}
	r.remove()
	r.remove = nil
}

// Host returns the element the relay listens on.
func (r *Relay) Host() *dom.Element {
	return r.host
}
