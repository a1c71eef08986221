package menu

import (
	"fmt"
	"testing"

	"github.com/atomicstack/headless-menu/internal/click"
	"github.com/atomicstack/headless-menu/internal/dom"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	doc     *dom.Document
	clicks  *click.Broadcaster
	relay   *click.Relay
	menu    *Menu
	items   []*Item
	outside *dom.Element
	states  []bool
}

// newFixture builds body > [menu > [trigger, list > items...], outside] with
// a relay on the body.
func newFixture(t *testing.T, id string, labels []string, opts ...ListOption) *fixture {
	t.Helper()
	f := &fixture{doc: dom.NewDocument(), clicks: click.NewBroadcaster()}
	f.outside = f.addMenu(t, id, labels, opts...)
	f.relay = click.NewRelay(f.doc.Body(), f.clicks)
	f.relay.Start()
	t.Cleanup(func() {
		f.menu.Dispose()
		f.relay.Dispose()
	})
	return f
}

func (f *fixture) addMenu(t *testing.T, id string, labels []string, opts ...ListOption) *dom.Element {
	t.Helper()
	host := f.doc.CreateElement("div", id)
	triggerEl := f.doc.CreateElement("button", id+"-trigger")
	listEl := f.doc.CreateElement("ul", id+"-items")
	host.Append(triggerEl, listEl)
	f.doc.Body().Append(host)

	list := NewItemList(listEl, f.doc, opts...)
	for i, label := range labels {
		f.items = append(f.items, list.AddItem(f.doc.CreateElement("li", fmt.Sprintf("%s-item-%d", id, i)), label))
	}
	m, err := NewBuilder(host, f.clicks).Trigger(NewTrigger(triggerEl)).List(list).Build()
	require.NoError(t, err)
	m.OpenState().Subscribe(func(open bool) { f.states = append(f.states, open) })
	f.menu = m

	outside := f.doc.CreateElement("button", id+"-outside")
	outside.SetFocusable(true, 0)
	f.doc.Body().Append(outside)
	return outside
}

func (f *fixture) clickTrigger() {
	f.doc.Click(f.menu.Trigger().Element())
}

// openAndSettle opens the menu through its trigger and runs the deferred
// focus step.
func (f *fixture) openAndSettle(t *testing.T) {
	t.Helper()
	f.clickTrigger()
	require.True(t, f.menu.IsOpen())
	f.doc.Flush()
}

func (f *fixture) press(key string) *dom.Event {
	return f.doc.KeyDown(key, false)
}

func (f *fixture) pressShift(key string) *dom.Event {
	return f.doc.KeyDown(key, true)
}

func (f *fixture) activeFlags() []bool {
	flags := make([]bool, len(f.items))
	for i, item := range f.items {
		flags[i] = item.IsActive()
	}
	return flags
}

func labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Item %d", i)
	}
	return out
}
