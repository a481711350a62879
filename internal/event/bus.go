package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// HandlerFunc handles one event. The event is the value passed to Publish;
// handlers type-assert it to the Event[T] they expect.
type HandlerFunc func(ctx context.Context, ev any) error

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*Subscription)

// Once removes the subscription after its first successful delivery.
func Once() SubscriptionOption {
	return func(s *Subscription) { s.once = true }
}

// Subscription is a registered handler.
type Subscription struct {
	id      uint64
	pattern Topic
	handler HandlerFunc
	once    bool
	active  atomic.Bool
}

// ID returns the subscription's identifier.
func (s *Subscription) ID() uint64 { return s.id }

// Pattern returns the topic pattern the subscription matches.
func (s *Subscription) Pattern() Topic { return s.pattern }

// Active reports whether the subscription still receives events.
func (s *Subscription) Active() bool { return s.active.Load() }

// Stats are delivery counters.
type Stats struct {
	Published     uint64
	Delivered     uint64
	HandlerErrors uint64
	Panics        uint64
}

// Bus delivers events synchronously to matching subscriptions.
// It is safe for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	subs   []*Subscription
	nextID uint64

	published atomic.Uint64
	delivered atomic.Uint64
	errs      atomic.Uint64
	panics    atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for every topic matching pattern.
func (b *Bus) Subscribe(pattern Topic, fn HandlerFunc, opts ...SubscriptionOption) (*Subscription, error) {
	if !pattern.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTopic, pattern)
	}
	if fn == nil {
		return nil, ErrNilHandler
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{id: b.nextID, pattern: pattern, handler: fn}
	for _, opt := range opts {
		opt(sub)
	}
	sub.active.Store(true)
	b.subs = append(b.subs, sub)
	return sub, nil
}

// Unsubscribe removes sub from the bus.
func (b *Bus) Unsubscribe(sub *Subscription) error {
	if sub == nil {
		return ErrSubscriptionNotFound
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s == sub {
			s.active.Store(false)
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers ev to every matching subscription in subscription order.
// All handlers run even if some fail; their errors are joined.
func (b *Bus) Publish(ctx context.Context, ev TopicProvider) error {
	if ev == nil {
		return ErrInvalidTopic
	}
	t := ev.EventTopic()
	if !t.IsValid() || t.IsPattern() {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, t)
	}

	b.published.Add(1)

	var errs []error
	for _, sub := range b.match(t) {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if !sub.active.Load() {
			continue
		}
		if sub.once && !sub.active.CompareAndSwap(true, false) {
			continue
		}

		if err := b.deliver(ctx, sub, t, ev); err != nil {
			errs = append(errs, err)
			if sub.once {
				sub.active.Store(true)
			}
			continue
		}
		b.delivered.Add(1)
		if sub.once {
			_ = b.Unsubscribe(sub)
		}
	}
	return errors.Join(errs...)
}

func (b *Bus) match(t Topic) []*Subscription {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []*Subscription
	for _, s := range b.subs {
		if t.Matches(s.pattern) {
			out = append(out, s)
		}
	}
	return out
}

func (b *Bus) deliver(ctx context.Context, sub *Subscription, t Topic, ev any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
			err = &HandlerError{SubscriptionID: sub.id, Topic: t, Err: fmt.Errorf("%w: %v", ErrHandlerPanic, r)}
		}
	}()

	if herr := sub.handler(ctx, ev); herr != nil {
		b.errs.Add(1)
		return &HandlerError{SubscriptionID: sub.id, Topic: t, Err: herr}
	}
	return nil
}

// SubscriberCount returns the number of active subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Stats returns a snapshot of the delivery counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Published:     b.published.Load(),
		Delivered:     b.delivered.Load(),
		HandlerErrors: b.errs.Load(),
		Panics:        b.panics.Load(),
	}
}

// PayloadOf extracts the payload of an Event[T] delivered to a handler.
func PayloadOf[T any](ev any) (T, bool) {
	e, ok := ev.(Event[T])
	if !ok {
		var zero T
		return zero, false
	}
	return e.Payload, true
}
