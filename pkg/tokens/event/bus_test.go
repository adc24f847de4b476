package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	evt := NewEvent("navigation.started", "router", Navigation{From: "/a", To: "/b"})

	_, err := uuid.Parse(evt.ID())
	require.NoError(t, err)
	assert.Equal(t, "navigation.started", evt.Type())
	assert.Equal(t, "router", evt.Source())
	assert.False(t, evt.Timestamp().IsZero())
	assert.Equal(t, Navigation{From: "/a", To: "/b"}, evt.TypedData())
	assert.JSONEq(t, `{"from":"/a","to":"/b"}`, string(evt.DataBytes()))
}

func TestLocalBus_Publish(t *testing.T) {
	t.Run("delivers to matching types only", func(t *testing.T) {
		bus := NewBus(DefaultBusConfig)
		defer bus.Close()

		var got []string
		bus.Subscribe([]string{"a"}, HandlerFunc(func(_ context.Context, evt Event) error {
			got = append(got, "a:"+evt.Type())
			return nil
		}))
		bus.SubscribeAll(HandlerFunc(func(_ context.Context, evt Event) error {
			got = append(got, "all:"+evt.Type())
			return nil
		}))

		require.NoError(t, bus.Publish(context.Background(), NewEvent("a", "test", 1)))
		require.NoError(t, bus.Publish(context.Background(), NewEvent("b", "test", 2)))

		assert.Equal(t, []string{"a:a", "all:a", "all:b"}, got)
	})

	t.Run("handler errors are joined and reported", func(t *testing.T) {
		var reported []string
		bus := NewBus(BusConfig{
			OnError: func(_ Event, subscriberID string, _ error) {
				reported = append(reported, subscriberID)
			},
		})
		defer bus.Close()

		boom := errors.New("boom")
		failing := bus.SubscribeAll(HandlerFunc(func(context.Context, Event) error { return boom }))
		called := false
		bus.SubscribeAll(HandlerFunc(func(context.Context, Event) error {
			called = true
			return nil
		}))

		err := bus.Publish(context.Background(), NewEvent[any]("x", "test", nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)

		var evtErr *EventError
		require.ErrorAs(t, err, &evtErr)
		assert.Equal(t, failing.ID(), evtErr.Handler)
		assert.True(t, called, "delivery should continue past a failing handler")
		assert.Equal(t, []string{failing.ID()}, reported)
	})

	t.Run("cancelled context stops delivery", func(t *testing.T) {
		bus := NewBus(DefaultBusConfig)
		defer bus.Close()

		count := 0
		bus.SubscribeAll(HandlerFunc(func(context.Context, Event) error {
			count++
			return nil
		}))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := bus.Publish(ctx, NewEvent[any]("x", "test", nil))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, count)
	})
}

func TestLocalBus_Unsubscribe(t *testing.T) {
	bus := NewBus(DefaultBusConfig)
	defer bus.Close()

	count := 0
	sub := bus.SubscribeAll(HandlerFunc(func(context.Context, Event) error {
		count++
		return nil
	}))
	assert.Equal(t, 1, bus.Len())

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Equal(t, 0, bus.Len())

	require.NoError(t, bus.Publish(context.Background(), NewEvent[any]("x", "test", nil)))
	assert.Equal(t, 0, count)
}

func TestLocalBus_Close(t *testing.T) {
	bus := NewBus(DefaultBusConfig)
	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	err := bus.Publish(context.Background(), NewEvent[any]("x", "test", nil))
	assert.ErrorIs(t, err, ErrBusClosed)
	assert.Nil(t, bus.SubscribeAll(HandlerFunc(func(context.Context, Event) error { return nil })))
}
