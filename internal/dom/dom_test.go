package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree() (*Document, *Element, *Element, *Element) {
	doc := NewDocument()
	parent := doc.CreateElement("div", "parent")
	a := doc.CreateElement("button", "a")
	b := doc.CreateElement("button", "b")
	a.SetFocusable(true, 0)
	b.SetFocusable(true, 0)
	parent.Append(a, b)
	doc.Body().Append(parent)
	return doc, parent, a, b
}

func TestContains(t *testing.T) {
	doc, parent, a, _ := tree()

	assert.True(t, parent.Contains(a))
	assert.True(t, parent.Contains(parent))
	assert.False(t, a.Contains(parent))
	assert.False(t, parent.Contains(nil))
	assert.False(t, parent.Contains(doc.CreateElement("div", "detached")))
}

func TestDispatchBubblesToRoot(t *testing.T) {
	doc, parent, a, _ := tree()
	var path []string
	for _, el := range []*Element{a, parent, doc.Body()} {
		el := el
		el.AddEventListener(EventClick, func(ev *Event) {
			path = append(path, ev.CurrentTarget.ID)
			assert.Equal(t, a, ev.Target)
		})
	}

	doc.Click(a)

	assert.Equal(t, []string{"a", "parent", "body"}, path)
}

func TestStopPropagation(t *testing.T) {
	doc, parent, a, _ := tree()
	reached := false
	a.AddEventListener(EventClick, func(ev *Event) { ev.StopPropagation() })
	parent.AddEventListener(EventClick, func(*Event) { reached = true })

	doc.Click(a)

	assert.False(t, reached)
}

func TestRemoveListener(t *testing.T) {
	doc, _, a, _ := tree()
	calls := 0
	remove := a.AddEventListener(EventClick, func(*Event) { calls++ })
	doc.Click(a)
	remove()
	remove()
	doc.Click(a)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, a.ListenerCount(EventClick))
}

func TestListenerRemovedDuringDispatchIsSkipped(t *testing.T) {
	doc, _, a, _ := tree()
	var calls []string
	var removeSecond func()
	a.AddEventListener(EventClick, func(*Event) {
		calls = append(calls, "first")
		removeSecond()
	})
	removeSecond = a.AddEventListener(EventClick, func(*Event) { calls = append(calls, "second") })

	doc.Click(a)

	assert.Equal(t, []string{"first"}, calls)
	assert.Equal(t, 1, a.ListenerCount(EventClick))
}

func TestListenerAddedDuringDispatchWaitsForNextEvent(t *testing.T) {
	doc, _, a, _ := tree()
	late := 0
	added := false
	a.AddEventListener(EventClick, func(*Event) {
		if !added {
			added = true
			a.AddEventListener(EventClick, func(*Event) { late++ })
		}
	})

	doc.Click(a)
	assert.Equal(t, 0, late)
	doc.Click(a)
	assert.Equal(t, 1, late)
}

func TestFocusRules(t *testing.T) {
	doc, parent, a, _ := tree()
	focused := 0
	a.AddEventListener(EventFocus, func(*Event) { focused++ })

	require.True(t, a.Focus())
	assert.Equal(t, a, doc.ActiveElement())
	assert.True(t, a.Focus())
	assert.Equal(t, 1, focused, "refocusing does not fire again")

	assert.False(t, parent.Focus(), "not focusable")
	assert.False(t, doc.CreateElement("button", "x").Focus(), "detached")

	parent.SetHidden(true)
	assert.Nil(t, doc.ActiveElement(), "hiding blurs")
	assert.False(t, a.Focus(), "hidden")
}

func TestKeyDownGoesToActiveElement(t *testing.T) {
	doc, _, a, _ := tree()
	var target *Element
	doc.Body().AddEventListener(EventKeyDown, func(ev *Event) { target = ev.Target })

	doc.KeyDown("x", false)
	assert.Equal(t, doc.Body(), target)

	a.Focus()
	doc.KeyDown("x", false)
	assert.Equal(t, a, target)
}

func TestTabMovesFocusUnlessPrevented(t *testing.T) {
	doc, _, a, b := tree()

	doc.KeyDown(KeyTab, false)
	assert.Equal(t, a, doc.ActiveElement())
	doc.KeyDown(KeyTab, false)
	assert.Equal(t, b, doc.ActiveElement())
	doc.KeyDown(KeyTab, false)
	assert.Equal(t, a, doc.ActiveElement(), "wraps")
	doc.KeyDown(KeyTab, true)
	assert.Equal(t, b, doc.ActiveElement())

	b.AddEventListener(EventKeyDown, func(ev *Event) { ev.PreventDefault() })
	ev := doc.KeyDown(KeyTab, false)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, b, doc.ActiveElement())
}

func TestEnterActivatesFocusedElement(t *testing.T) {
	doc, _, a, _ := tree()
	clicks := 0
	a.AddEventListener(EventClick, func(*Event) { clicks++ })

	doc.KeyDown(KeyEnter, false)
	assert.Equal(t, 0, clicks)

	a.Focus()
	doc.KeyDown(KeyEnter, false)
	doc.KeyDown(KeySpace, false)
	assert.Equal(t, 2, clicks)
}

func TestFlushRunsOnlyQueuedTasks(t *testing.T) {
	doc := NewDocument()
	var order []int
	doc.Defer(func() {
		order = append(order, 1)
		doc.Defer(func() { order = append(order, 3) })
	})
	doc.Defer(func() { order = append(order, 2) })
	doc.Defer(nil)

	assert.Equal(t, 2, doc.Flush())
	assert.Equal(t, []int{1, 2}, order)
	assert.True(t, doc.Pending())
	assert.Equal(t, 1, doc.Flush())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.False(t, doc.Pending())
}

func TestElementAtPrefersDeepestVisible(t *testing.T) {
	doc, parent, a, b := tree()
	doc.Body().Rect = Rect{Width: 80, Height: 24}
	parent.Rect = Rect{X: 0, Y: 0, Width: 20, Height: 2}
	a.Rect = Rect{X: 0, Y: 0, Width: 10, Height: 1}
	b.Rect = Rect{X: 0, Y: 1, Width: 10, Height: 1}

	assert.Equal(t, a, doc.Body().ElementAt(3, 0))
	assert.Equal(t, b, doc.Body().ElementAt(3, 1))
	assert.Equal(t, parent, doc.Body().ElementAt(15, 1))
	assert.Equal(t, doc.Body(), doc.Body().ElementAt(50, 10))
	assert.Nil(t, doc.Body().ElementAt(90, 10))

	b.SetHidden(true)
	assert.Equal(t, parent, doc.Body().ElementAt(3, 1))
}

func TestRectUnion(t *testing.T) {
	r := Rect{X: 2, Y: 1, Width: 4, Height: 1}.Union(Rect{X: 0, Y: 3, Width: 3, Height: 2})
	assert.Equal(t, Rect{X: 0, Y: 1, Width: 6, Height: 4}, r)
	assert.Equal(t, r, Rect{}.Union(r))
}

func TestGetElementByID(t *testing.T) {
	doc, _, _, b := tree()
	assert.Equal(t, b, doc.GetElementByID("b"))
	assert.Nil(t, doc.GetElementByID("missing"))
}

func TestRemoveBlursFocusedSubtree(t *testing.T) {
	doc, parent, a, _ := tree()
	a.Focus()

	require.True(t, parent.Remove(a))
	assert.Nil(t, doc.ActiveElement())
	assert.Nil(t, a.Parent())
	assert.False(t, a.Attached())
}
