package ui

import (
	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/charmbracelet/x/ansi"
)

const (
	barRow          = 0
	barIndent       = 1
	triggerGap      = 1
	itemPadding     = 2
	detectorHeight  = 3
	detectorMaxWide = 40
	emptyListLabel  = "(no items)"
)

// triggerLabel is the text drawn for a trigger, without styling.
func triggerLabel(text string) string {
	return " " + text + " ▾ "
}

// layout assigns every rendered element its rectangle. It runs before each
// render and before hit testing pointer presses.
func (m *Model) layout() {
	doc := m.scene.Doc
	doc.Body().Rect = dom.Rect{Width: m.width, Height: m.height}

	x := barIndent
	tallest := 1
	var bar dom.Rect
	for _, mn := range m.scene.Menus {
		trigger := mn.Trigger().Element()
		trigger.Rect = dom.Rect{X: x, Y: barRow, Width: ansi.StringWidth(triggerLabel(trigger.Text)), Height: 1}

		list := mn.List()
		items := list.Items()
		width := trigger.Rect.Width
		for _, item := range items {
			width = max(width, ansi.StringWidth(item.Label())+2*itemPadding)
		}
		if len(items) == 0 {
			width = max(width, ansi.StringWidth(emptyListLabel)+2*itemPadding)
		}
		tallest = max(tallest, len(items))

		listRect := dom.Rect{X: x, Y: barRow + 1, Width: width, Height: max(len(items), 1)}
		for i, item := range items {
			item.Element().Rect = dom.Rect{X: x, Y: barRow + 1 + i, Width: width, Height: 1}
		}
		list.Element().Rect = listRect

		host := trigger.Rect
		if list.Element().Visible() {
			host = host.Union(listRect)
		}
		mn.Element().Rect = host
		bar = bar.Union(host)
		x += trigger.Rect.Width + triggerGap
	}
	if len(m.scene.Menus) > 0 {
		if parent := m.scene.Menus[0].Element().Parent(); parent != nil && parent != doc.Body() {
			parent.Rect = bar
		}
	}

	if m.scene.Detector != nil {
		width := min(detectorMaxWide, max(m.width-2*barIndent, 1))
		m.scene.Detector.Host().Rect = dom.Rect{
			X:      barIndent,
			Y:      m.detectorRow(tallest),
			Width:  width,
			Height: detectorHeight,
		}
	}
}

// detectorRow leaves room for the tallest list so opening a menu never
// moves the panel.
func (m *Model) detectorRow(tallest int) int {
	return barRow + 1 + tallest + 1
}
