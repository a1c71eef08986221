// Package menu implements an unstyled, accessible dropdown menu on top of the
// dom package.
//
// A Menu is composed from a Trigger and an ItemList whose elements live
// inside the menu element:
//
//	menu element
//	├── trigger element   (Trigger, aria-haspopup=listbox)
//	└── list element      (ItemList, role=listbox)
//	    ├── item element  (Item, role=option)
//	    └── ...
//
// Activating the trigger toggles the open state. The state is emitted on
// Menu.OpenState, which the ItemList subscribes to: opening un-hides the
// list and, on the next scheduler turn, focuses the first item (or the list
// itself when empty); closing clears the highlighted item and hides the
// list. While open, the menu listens on a click.Broadcaster and closes when
// a broadcast click lands outside its subtree. Escape closes it as well.
//
// The list is the single source of truth for the active index. Keyboard
// navigation only asks an item to take focus; the item's focus event is what
// updates the highlight.
package menu
