package event

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
)

// Bus provides pub/sub event distribution with fan-out support.
type Bus interface {
	// Publish delivers an event to all matching subscribers.
	Publish(ctx context.Context, evt Event) error

	// Subscribe creates a subscription for specific event types.
	Subscribe(types []string, handler Handler) Subscription

	// SubscribeAll subscribes to all events.
	SubscribeAll(handler Handler) Subscription

	// Close shuts down the bus and all subscriptions.
	Close() error
}

// Subscription represents an active subscription.
type Subscription interface {
	// ID returns the subscription identifier.
	ID() string

	// Unsubscribe removes the subscription.
	Unsubscribe()
}

// BusConfig configures bus behavior.
type BusConfig struct {
	// OnError is called when a handler returns an error.
	OnError func(evt Event, subscriberID string, err error)
}

// DefaultBusConfig provides reasonable defaults.
var DefaultBusConfig = BusConfig{}

// LocalBus is an in-memory event bus. Publish runs handlers synchronously
// on the caller's goroutine, in subscription order.
type LocalBus struct {
	config BusConfig

	mu            sync.RWMutex
	subscriptions []*subscription

	nextID atomic.Int64
	closed atomic.Bool
}

// NewBus creates a new local event bus.
func NewBus(config BusConfig) *LocalBus {
	return &LocalBus{config: config}
}

// subscription is an internal subscription implementation.
type subscription struct {
	id      string
	types   map[string]struct{} // empty = all types
	handler Handler
	bus     *LocalBus
}

// Publish delivers evt to every matching subscription.
// Handler errors are reported to OnError and returned joined; delivery
// continues past a failing handler.
func (b *LocalBus) Publish(ctx context.Context, evt Event) error {
	if b.closed.Load() {
		return &EventError{Event: evt, Message: "publish", Err: ErrBusClosed}
	}

	b.mu.RLock()
	subs := b.matching(evt.Type())
	b.mu.RUnlock()

	var errs []error
	for _, sub := range subs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sub.handler.Handle(ctx, evt); err != nil {
			if b.config.OnError != nil {
				b.config.OnError(evt, sub.id, err)
			}
			errs = append(errs, &EventError{
				Event:   evt,
				Handler: sub.id,
				Message: "handler failed",
				Err:     err,
			})
		}
	}
	return errors.Join(errs...)
}

// Subscribe creates a subscription for specific event types.
// Returns nil if the bus is closed.
func (b *LocalBus) Subscribe(types []string, handler Handler) Subscription {
	sub := b.subscribe(types, handler)
	if sub == nil {
		return nil
	}
	return sub
}

// SubscribeAll subscribes to all events.
func (b *LocalBus) SubscribeAll(handler Handler) Subscription {
	return b.Subscribe(nil, handler)
}

func (b *LocalBus) subscribe(types []string, handler Handler) *subscription {
	if b.closed.Load() {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscription{
		id:      "sub-" + strconv.FormatInt(b.nextID.Add(1), 10),
		types:   make(map[string]struct{}, len(types)),
		handler: handler,
		bus:     b,
	}
	for _, t := range types {
		sub.types[t] = struct{}{}
	}

	b.subscriptions = append(b.subscriptions, sub)
	return sub
}

// matching returns subscriptions for an event type. Caller holds b.mu.
func (b *LocalBus) matching(eventType string) []*subscription {
	subs := make([]*subscription, 0, len(b.subscriptions))
	for _, sub := range b.subscriptions {
		if len(sub.types) == 0 {
			subs = append(subs, sub)
			continue
		}
		if _, ok := sub.types[eventType]; ok {
			subs = append(subs, sub)
		}
	}
	return subs
}

// Len returns the number of active subscriptions.
func (b *LocalBus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions)
}

// Close shuts down the bus and drops all subscriptions.
func (b *LocalBus) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions = nil
	return nil
}

// ID returns the subscription identifier.
func (s *subscription) ID() string {
	return s.id
}

// Unsubscribe removes the subscription. Safe to call more than once.
func (s *subscription) Unsubscribe() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()

	for i, sub := range s.bus.subscriptions {
		if sub == s {
			s.bus.subscriptions = append(s.bus.subscriptions[:i:i], s.bus.subscriptions[i+1:]...)
			return
		}
	}
}

// Compile-time interface check.
var _ Bus = (*LocalBus)(nil)
