// Package emitter provides typed observer lists used for component output
// channels and the process-wide click bus.
package emitter

import (
	"sync"

	"go.uber.org/atomic"
)

var nextID = atomic.NewUint64(0)

type entry[T any] struct {
	id uint64
	fn func(T)
}

// Emitter fans a value out to every subscribed listener, in subscription
// order.
type Emitter[T any] struct {
	mu        sync.Mutex
	listeners []entry[T]
}

// New returns an emitter with no listeners.
func New[T any]() *Emitter[T] {
	return &Emitter[T]{}
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id     uint64
	closed *atomic.Bool
	remove func(uint64)
}

// ID identifies the subscription.
func (s *Subscription) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Active reports whether the listener is still registered.
func (s *Subscription) Active() bool {
	return s != nil && !s.closed.Load()
}

// Unsubscribe removes the listener. It is safe on nil subscriptions and when
// called more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	if s.closed.Swap(true) {
		return
	}
	s.remove(s.id)
}

// Subscribe registers fn. Listeners added while an Emit is running first see
// the following value.
func (e *Emitter[T]) Subscribe(fn func(T)) *Subscription {
	id := nextID.Inc()
	e.mu.Lock()
	e.listeners = append(e.listeners, entry[T]{id: id, fn: fn})
	e.mu.Unlock()
	return &Subscription{id: id, closed: atomic.NewBool(false), remove: e.remove}
}

func (e *Emitter[T]) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Emit calls every listener registered at the time of the call. Listeners
// removed by an earlier listener in the same Emit are skipped.
func (e *Emitter[T]) Emit(v T) {
	e.mu.Lock()
	snapshot := make([]entry[T], len(e.listeners))
	copy(snapshot, e.listeners)
	e.mu.Unlock()
	for _, l := range snapshot {
		if !e.registered(l.id) {
			continue
		}
		l.fn(v)
	}
}

func (e *Emitter[T]) registered(id uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, l := range e.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of registered listeners.
func (e *Emitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}
