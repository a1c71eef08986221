package menu

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTrigger reports a menu composed without a trigger child.
	ErrMissingTrigger = errors.New("menu must have a trigger child")
	// ErrMissingList reports a menu composed without an item list child.
	ErrMissingList = errors.New("menu must have an item list child")
	// ErrDuplicateChild reports a menu composed with two triggers or lists.
	ErrDuplicateChild = errors.New("menu must have exactly one child of each kind")
	// ErrMissingElement reports a menu without a host element.
	ErrMissingElement = errors.New("menu must have a host element")
)

// StructuralError describes a malformed menu composition.
type StructuralError struct {
	MenuID string
	Child  string
	Err    error
}

func (e *StructuralError) Error() string {
	msg := e.Err.Error()
	if errors.Is(e.Err, ErrDuplicateChild) {
		msg = fmt.Sprintf("%s (%s)", msg, e.Child)
	}
	if e.MenuID == "" {
		return msg
	}
	return fmt.Sprintf("menu %q: %s", e.MenuID, msg)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}
