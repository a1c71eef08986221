package ui

import (
	"github.com/atomicstack/headless-menu/internal/click"
	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/atomicstack/headless-menu/internal/menu"
)

// Scene is the document the program renders: a bar of menus, a click
// detector panel, and the relays feeding document clicks to broadcasters.
type Scene struct {
	Doc    *dom.Document
	Clicks *click.Broadcaster
	Menus  []*menu.Menu

	// Relay publishes every click reaching the body to Clicks.
	Relay *click.Relay

	// Detector publishes clicks inside the detector panel to DetectorClicks.
	Detector       *click.Relay
	DetectorClicks *click.Broadcaster

	disposed bool
}

// Start begins relaying clicks.
func (s *Scene) Start() {
	if s.Relay != nil {
		s.Relay.Start()
	}
	if s.Detector != nil {
		s.Detector.Start()
	}
}

// Menu returns the menu whose host element has the given id.
func (s *Scene) Menu(id string) *menu.Menu {
	for _, m := range s.Menus {
		if m.Element().ID == id {
			return m
		}
	}
	return nil
}

// OpenMenu returns the first open menu, if any.
func (s *Scene) OpenMenu() *menu.Menu {
	for _, m := range s.Menus {
		if m.IsOpen() {
			return m
		}
	}
	return nil
}

// Dispose releases the menus and relays. It is safe to call more than once.
func (s *Scene) Dispose() {
	if s == nil || s.disposed {
		return
	}
	s.disposed = true
	for _, m := range s.Menus {
		m.Dispose()
	}
	if s.Relay != nil {
		s.Relay.Dispose()
	}
	if s.Detector != nil {
		s.Detector.Dispose()
	}
}
