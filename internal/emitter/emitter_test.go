package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitDeliversInSubscriptionOrder(t *testing.T) {
	e := New[int]()
	var got []string
	e.Subscribe(func(v int) { got = append(got, "a") })
	e.Subscribe(func(v int) { got = append(got, "b") })

	e.Emit(1)
	e.Emit(2)

	assert.Equal(t, []string{"a", "b", "a", "b"}, got)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	e := New[string]()
	calls := 0
	sub := e.Subscribe(func(string) { calls++ })
	require.True(t, sub.Active())

	sub.Unsubscribe()
	sub.Unsubscribe()
	e.Emit("x")

	assert.Equal(t, 0, calls)
	assert.False(t, sub.Active())
	assert.Equal(t, 0, e.Len())

	var never *Subscription
	assert.NotPanics(t, never.Unsubscribe)
	assert.False(t, never.Active())
}

func TestSubscribeDuringEmitWaitsForNextValue(t *testing.T) {
	e := New[int]()
	var late []int
	e.Subscribe(func(v int) {
		if v == 1 {
			e.Subscribe(func(v int) { late = append(late, v) })
		}
	})

	e.Emit(1)
	e.Emit(2)

	assert.Equal(t, []int{2}, late)
}

func TestUnsubscribeDuringEmitSkipsRemovedListener(t *testing.T) {
	e := New[int]()
	var second *Subscription
	calls := 0
	e.Subscribe(func(int) { second.Unsubscribe() })
	second = e.Subscribe(func(int) { calls++ })

	e.Emit(1)

	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, e.Len())
}

func TestSubscriptionIDsAreUnique(t *testing.T) {
	a := New[int]().Subscribe(func(int) {})
	b := New[bool]().Subscribe(func(bool) {})
	assert.NotEqual(t, a.ID(), b.ID())
}
