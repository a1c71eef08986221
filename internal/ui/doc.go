// Package ui contains the Bubble Tea program that drives the dropdown menus.
// The package keeps the menus themselves headless: Model only translates
// terminal input into document events and renders whatever state the
// document and menus expose.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry.
//   - Key presses become keydown events on the focused element via
//     Document.KeyDown (input.go). Left mouse presses are hit tested against
//     the layout and become click events on the element underneath.
//   - Work the menus defer (the first item focus after opening) runs on the
//     following update turn: Update returns a command yielding flushMsg and the
//     handler for that message calls Document.Flush.
//
// State ownership:
//   - The Scene owns the document, the menus and the click relays. Model
//     subscribes to their output channels to keep a status line and releases
//     those subscriptions in Release.
//   - Layout (layout.go) assigns each element its rectangle before every
//     render and before hit testing, so clicks land on what is on screen.
package ui
