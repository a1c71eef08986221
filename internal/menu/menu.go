package menu

import (
	"github.com/atomicstack/headless-menu/internal/click"
	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/atomicstack/headless-menu/internal/emitter"
	"github.com/atomicstack/headless-menu/internal/logging/events"
)

// Menu owns the open state and wires a Trigger and an ItemList together.
// Build one with a Builder.
type Menu struct {
	el      *dom.Element
	trigger *Trigger
	list    *ItemList
	clicks  *click.Broadcaster

	isOpen        bool
	disposed      bool
	closeOnSelect bool
	openState     *emitter.Emitter[bool]

	triggerSub    *emitter.Subscription
	selectSub     *emitter.Subscription
	clickSub      *click.Subscription
	removeKeyDown func()
}

// Element returns the menu's host element.
func (m *Menu) Element() *dom.Element {
	return m.el
}

// Trigger returns the bound trigger.
func (m *Menu) Trigger() *Trigger {
	return m.trigger
}

// List returns the bound item list.
func (m *Menu) List() *ItemList {
	return m.list
}

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool {
	return m.isOpen
}

// OpenState emits the new state once per effective open or close.
func (m *Menu) OpenState() *emitter.Emitter[bool] {
	return m.openState
}

// Open opens the menu. It does nothing when already open.
func (m *Menu) Open() {
	m.open(events.MenuReasonAPI)
}

// Close closes the menu. It does nothing when already closed.
func (m *Menu) Close() {
	m.close(events.MenuReasonAPI)
}

// Toggle flips the open state.
func (m *Menu) Toggle() {
	m.toggle(events.MenuReasonAPI)
}

func (m *Menu) toggle(reason events.MenuReason) {
	if m.isOpen {
		m.close(reason)
	} else {
		m.open(reason)
	}
}

func (m *Menu) open(reason events.MenuReason) bool {
	if m.isOpen || m.disposed {
		return false
	}
	m.isOpen = true
	m.trigger.setExpanded(true)
	events.Menu.Open(m.el.ID, reason)
	m.openState.Emit(true)
	// A listener may have closed or reopened the menu during the emit.
	if !m.isOpen || m.disposed || m.clickSub != nil {
		return true
	}
	// Subscribe last so the click that opened the menu is already in flight
	// past this listener's registration.
	m.clickSub = m.clicks.Subscribe(m.handleBroadcastClick)
	return true
}

func (m *Menu) close(reason events.MenuReason) bool {
	if !m.isOpen || m.disposed {
		return false
	}
	m.isOpen = false
	m.trigger.setExpanded(false)
	events.Menu.Close(m.el.ID, reason)
	sub := m.clickSub
	m.clickSub = nil
	m.openState.Emit(false)
	m.clicks.Unsubscribe(sub)
	return true
}

func (m *Menu) handleBroadcastClick(target *dom.Element) {
	if !m.isOpen {
		return
	}
	if !m.el.Contains(target) {
		m.close(events.MenuReasonOutside)
	}
}

func (m *Menu) handleKeyDown(ev *dom.Event) {
	if ev.Key != dom.KeyEscape || !m.isOpen {
		return
	}
	m.close(events.MenuReasonEscape)
	m.trigger.Element().Focus()
}

func (m *Menu) startKeyboard() {
	if m.removeKeyDown != nil {
		return
	}
	m.removeKeyDown = m.el.AddEventListener(dom.EventKeyDown, m.handleKeyDown)
}

func (m *Menu) bind(trigger *Trigger, list *ItemList) {
	m.trigger = trigger
	m.list = list
	list.Bind(m.openState)
	list.Start()
	trigger.Start()
	m.triggerSub = trigger.Activated().Subscribe(func(*dom.Event) {
		m.toggle(events.MenuReasonTrigger)
	})
	if m.closeOnSelect {
		m.selectSub = list.Selected().Subscribe(func(*Item) {
			m.close(events.MenuReasonAPI)
		})
	}
}

// Dispose releases every subscription and listener the menu holds. It is
// safe to call more than once and on a menu whose Build failed.
func (m *Menu) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.triggerSub.Unsubscribe()
	m.triggerSub = nil
	m.selectSub.Unsubscribe()
	m.selectSub = nil
	if m.clickSub != nil {
		m.clicks.Unsubscribe(m.clickSub)
		m.clickSub = nil
	}
	if m.removeKeyDown != nil {
		m.removeKeyDown()
		m.removeKeyDown = nil
	}
	if m.list != nil {
		m.list.Dispose()
	}
	if m.trigger != nil {
		m.trigger.Dispose()
	}
	if m.el != nil {
		events.Menu.Dispose(m.el.ID)
	}
}
