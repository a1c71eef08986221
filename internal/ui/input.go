package ui

import (
	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Down     key.Binding
	Up       key.Binding
	Home     key.Binding
	End      key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Escape   key.Binding
	Activate key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
	Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev")),
	Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
	End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "back")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "activate")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Activate, k.Down, k.Up, k.Escape, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Home, k.End},
		{k.Tab, k.ShiftTab, k.Activate, k.Escape},
		{k.Quit},
	}
}

type domKey struct {
	binding key.Binding
	name    string
	shift   bool
}

var domKeys = []domKey{
	{keys.Down, dom.KeyArrowDown, false},
	{keys.Up, dom.KeyArrowUp, false},
	{keys.Home, dom.KeyHome, false},
	{keys.End, dom.KeyEnd, false},
	{keys.Tab, dom.KeyTab, false},
	{keys.ShiftTab, dom.KeyTab, true},
	{keys.Escape, dom.KeyEscape, false},
}

// translateKey maps a terminal key press to a document key name. Single
// printable runes pass through unchanged so lists can use them for
// typeahead.
func translateKey(msg tea.KeyMsg) (name string, shift bool, ok bool) {
	for _, k := range domKeys {
		if key.Matches(msg, k.binding) {
			return k.name, k.shift, true
		}
	}
	switch msg.Type {
	case tea.KeyEnter:
		return dom.KeyEnter, false, true
	case tea.KeySpace:
		return dom.KeySpace, false, true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return "", false, false
		}
		if msg.Runes[0] == ' ' {
			return dom.KeySpace, false, true
		}
		return string(msg.Runes), false, true
	}
	return "", false, false
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	if m.shouldQuit(keyMsg) {
		return tea.Quit
	}
	name, shift, ok := translateKey(keyMsg)
	if !ok {
		return nil
	}
	m.scene.Doc.KeyDown(name, shift)
	return nil
}

// shouldQuit lets "q" through to an open menu's typeahead.
func (m *Model) shouldQuit(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyCtrlC {
		return true
	}
	if !key.Matches(msg, keys.Quit) {
		return false
	}
	return m.scene.OpenMenu() == nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseMsg)
	if mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	m.layout()
	target := m.scene.Doc.Body().ElementAt(mouse.X, mouse.Y)
	focusForPress(m.scene.Doc, target)
	m.scene.Doc.Click(target)
	return nil
}

// focusForPress moves focus the way a pointer press does: to the nearest
// focusable ancestor of the target, or back to the body.
func focusForPress(doc *dom.Document, target *dom.Element) {
	for n := target; n != nil; n = n.Parent() {
		if n.Focusable() && n.Visible() {
			n.Focus()
			return
		}
	}
	doc.Blur()
}
