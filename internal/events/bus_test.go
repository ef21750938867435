package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusFanOut(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	s1 := bus.Subscribe()
	s2 := bus.Subscribe()

	bus.Publish(Event{Type: ProductCreated, ID: "1"})

	assert.Equal(t, ProductCreated, (<-s1).Type)
	assert.Equal(t, ProductCreated, (<-s2).Type)
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	s := bus.Subscribe()
	bus.Unsubscribe(s)

	_, open := <-s
	assert.False(t, open)

	// publishing after unsubscribe must not panic
	bus.Publish(Event{Type: CategoryDeleted, ID: "2"})
}

func TestBusPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	s := bus.Subscribe()
	for i := 0; i < 250; i++ {
		bus.Publish(Event{Type: ProductUpdated, ID: "3"})
	}

	// the buffer holds 100; the rest are dropped, nothing deadlocks
	assert.Len(t, s, 100)
}

func TestBusCloseIsIdempotent(t *testing.T) {
	bus := NewBus()
	s := bus.Subscribe()

	bus.Close()
	bus.Close()

	_, open := <-s
	require.False(t, open)

	// a late subscriber gets a closed channel instead of a leak
	late := bus.Subscribe()
	_, open = <-late
	assert.False(t, open)
}
