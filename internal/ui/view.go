package ui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/atomicstack/headless-menu/internal/format/table"
	"github.com/atomicstack/headless-menu/internal/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type segment struct {
	x     int
	width int
	text  string
}

// canvas collects styled segments per row and joins them into lines,
// padding the gaps with spaces.
type canvas struct {
	width int
	rows  [][]segment
}

func newCanvas(width, height int) *canvas {
	return &canvas{width: width, rows: make([][]segment, height)}
}

func (c *canvas) put(x, y int, text string) {
	if y < 0 || y >= len(c.rows) || x >= c.width {
		return
	}
	c.rows[y] = append(c.rows[y], segment{x: x, width: ansi.StringWidth(text), text: text})
}

func (c *canvas) putBlock(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		c.put(x, y+i, line)
	}
}

func (c *canvas) String() string {
	lines := make([]string, len(c.rows))
	for y, segs := range c.rows {
		sort.SliceStable(segs, func(i, j int) bool { return segs[i].x < segs[j].x })
		var b strings.Builder
		col := 0
		for _, s := range segs {
			if s.x < col {
				continue
			}
			b.WriteString(strings.Repeat(" ", s.x-col))
			b.WriteString(s.text)
			col = s.x + s.width
		}
		lines[y] = ansi.Truncate(b.String(), c.width, "")
	}
	return strings.Join(lines, "\n")
}

// View implements tea.Model.
func (m *Model) View() string {
	m.layout()
	c := newCanvas(m.width, m.height)
	active := m.scene.Doc.ActiveElement()

	for _, mn := range m.scene.Menus {
		m.renderMenu(c, mn, active)
	}

	statusRow := 0
	if det := m.scene.Detector; det != nil {
		host := det.Host()
		style := styles.Detector
		if active == host {
			style = styles.DetectorFocused
		}
		text := truncateLabel(host.Text+": "+strconv.Itoa(m.detectorHits), host.Rect.Width-2)
		block := style.Copy().Width(max(host.Rect.Width-2, 1)).Render(text)
		c.putBlock(host.Rect.X, host.Rect.Y, block)
		statusRow = host.Rect.Y + host.Rect.Height + 1
	}
	for i, line := range m.statusLines() {
		c.put(barIndent, statusRow+i, line)
	}

	if m.showFooter && m.height > 0 {
		m.help.Width = max(m.width-barIndent, 0)
		c.put(barIndent, m.height-1, m.help.View(keys))
	}
	return c.String()
}

func (m *Model) renderMenu(c *canvas, mn *menu.Menu, active *dom.Element) {
	trigger := mn.Trigger().Element()
	style := styles.Trigger
	switch {
	case mn.IsOpen():
		style = styles.TriggerOpen
	case active == trigger:
		style = styles.TriggerFocused
	}
	c.put(trigger.Rect.X, trigger.Rect.Y, style.Render(triggerLabel(trigger.Text)))

	list := mn.List()
	if !list.Element().Visible() {
		return
	}
	items := list.Items()
	if len(items) == 0 {
		rect := list.Element().Rect
		emptyStyle := styles.EmptyList
		if active == list.Element() {
			emptyStyle = styles.ListFocused
		}
		c.put(rect.X, rect.Y, renderCell(emptyStyle, emptyListLabel, rect.Width))
		return
	}
	for _, item := range items {
		rect := item.Element().Rect
		itemStyle := styles.Item
		if item.IsActive() {
			itemStyle = styles.ActiveItem
		}
		c.put(rect.X, rect.Y, renderCell(itemStyle, item.Label(), rect.Width))
	}
}

// renderCell pads label to a fixed-width cell.
func renderCell(style *lipgloss.Style, label string, width int) string {
	pad := strings.Repeat(" ", itemPadding)
	text := truncateLabel(label, width-2*itemPadding)
	fill := max(width-2*itemPadding-ansi.StringWidth(text), 0)
	return style.Render(pad + text + strings.Repeat(" ", fill) + pad)
}

func truncateLabel(label string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(label, width, "…")
}

func (m *Model) statusLines() []string {
	var open []string
	for _, mn := range m.scene.Menus {
		state := "closed"
		if mn.IsOpen() {
			state = "open"
		}
		open = append(open, mn.Element().ID+"="+state)
	}
	focus := "body"
	if el := m.scene.Doc.ActiveElement(); el != nil {
		focus = "#" + el.ID
	}
	history := "-"
	if len(m.openLog) > 0 {
		history = strings.Join(m.openLog, " ")
	}
	rows := [][]string{
		{"menus", strings.Join(open, " ")},
		{"focus", focus},
		{"click", orDash(m.lastClick)},
		{"chose", orDash(m.lastSelected)},
		{"state", history},
	}
	for _, row := range rows {
		row[0] = styles.StatusLabel.Render(row[0])
		row[1] = styles.Status.Render(row[1])
	}
	return table.Format(rows, nil)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
