package event

import "context"

// TypeNavigationStarted is published when the host application begins a
// navigation or state change.
const TypeNavigationStarted = "navigation.started"

// Navigation is the payload of a navigation.started event.
type Navigation struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Navigator publishes navigation signals on a bus and lets token stores
// subscribe to them.
type Navigator struct {
	bus    Bus
	source string
}

// NewNavigator creates a navigator publishing on bus with source "navigator".
func NewNavigator(bus Bus) *Navigator {
	return &Navigator{bus: bus, source: "navigator"}
}

// Start publishes a navigation.started event and returns after every
// subscriber has handled it.
func (n *Navigator) Start(ctx context.Context, from, to string) error {
	return n.bus.Publish(ctx, NewEvent(TypeNavigationStarted, n.source, Navigation{From: from, To: to}))
}

// OnNavigationStart registers fn to run on every navigation.started event.
// The returned function removes the registration. If the bus refuses the
// subscription, fn is never called and the returned function is a no-op.
func (n *Navigator) OnNavigationStart(fn func()) (unsubscribe func()) {
	sub := n.bus.Subscribe([]string{TypeNavigationStarted}, HandlerFunc(func(context.Context, Event) error {
		fn()
		return nil
	}))
	if sub == nil {
		return func() {}
	}
	return sub.Unsubscribe
}
