package ui

import (
	"fmt"
	"reflect"

	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/atomicstack/headless-menu/internal/emitter"
	"github.com/atomicstack/headless-menu/internal/menu"
	"github.com/atomicstack/headless-menu/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// maxOpenLog bounds the open-state history shown in the status line.
	maxOpenLog = 4
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// flushMsg runs the document's deferred tasks on the turn after they were
// queued.
type flushMsg struct{}

// Model implements the Bubble Tea model for the menu bar.
type Model struct {
	scene       *Scene
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	help        help.Model

	handlers map[reflect.Type]msgHandler
	subs     []*emitter.Subscription

	openLog      []string
	lastClick    string
	lastSelected string
	detectorHits int
}

// NewModel wires a model to scene. Zero sizes follow the terminal.
func NewModel(scene *Scene, width, height int, showFooter bool) *Model {
	m := &Model{
		scene:      scene,
		width:      defaultWidth,
		height:     defaultHeight,
		showFooter: showFooter,
		help:       help.New(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	if styles.Footer != nil {
		m.help.Styles.ShortKey = styles.FooterKey.Copy()
		m.help.Styles.ShortDesc = styles.Footer.Copy()
		m.help.Styles.ShortSeparator = styles.Footer.Copy()
	}
	m.watchScene()
	m.registerHandlers()
	return m
}

func (m *Model) watchScene() {
	for _, mn := range m.scene.Menus {
		id := mn.Element().ID
		m.subs = append(m.subs, mn.OpenState().Subscribe(func(open bool) {
			m.recordOpenState(id, open)
		}))
		m.subs = append(m.subs, mn.List().Selected().Subscribe(func(item *menu.Item) {
			m.lastSelected = fmt.Sprintf("%s › %s", mn.Trigger().Element().Text, item.Label())
		}))
	}
	if m.scene.Clicks != nil {
		m.subs = append(m.subs, m.scene.Clicks.Subscribe(func(target *dom.Element) {
			m.lastClick = describeTarget(target)
		}))
	}
	if m.scene.DetectorClicks != nil {
		m.subs = append(m.subs, m.scene.DetectorClicks.Subscribe(func(*dom.Element) {
			m.detectorHits++
		}))
	}
}

func (m *Model) recordOpenState(id string, open bool) {
	state := "closed"
	if open {
		state = "open"
	}
	m.openLog = append(m.openLog, id+":"+state)
	if len(m.openLog) > maxOpenLog {
		m.openLog = m.openLog[len(m.openLog)-maxOpenLog:]
	}
}

func describeTarget(target *dom.Element) string {
	if target == nil {
		return "(none)"
	}
	return "#" + target.ID
}

// Release drops the model's subscriptions to the scene.
func (m *Model) Release() {
	for _, sub := range m.subs {
		sub.Unsubscribe()
	}
	m.subs = nil
}

// Scene returns the scene the model renders.
func (m *Model) Scene() *Scene {
	return m.scene
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Deferred work from the previous turn runs before any later event, even
	// when that event reaches us ahead of the scheduled flushMsg.
	if _, isFlush := msg.(flushMsg); !isFlush && m.scene.Doc.Pending() {
		m.scene.Doc.Flush()
	}
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(flushMsg{}):          m.handleFlushMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth && size.Width > 0 {
		m.width = size.Width
	}
	if !m.fixedHeight && size.Height > 0 {
		m.height = size.Height
	}
	return nil
}

func (m *Model) handleFlushMsg(tea.Msg) tea.Cmd {
	m.scene.Doc.Flush()
	return nil
}

// finishUpdate schedules a flush when the update queued deferred work.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.scene.Doc.Pending() {
		cmds = append(cmds, flushCmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func flushCmd() tea.Msg {
	return flushMsg{}
}
