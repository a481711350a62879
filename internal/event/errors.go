package event

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTopic is returned for empty or malformed topics and patterns.
	ErrInvalidTopic = errors.New("invalid topic")

	// ErrNilHandler is returned when subscribing a nil handler.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrSubscriptionNotFound is returned by Unsubscribe for unknown subscriptions.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrHandlerPanic is wrapped by HandlerError when a handler panics.
	ErrHandlerPanic = errors.New("handler panicked")
)

// HandlerError reports a failed or panicking handler.
type HandlerError struct {
	SubscriptionID uint64
	Topic          Topic
	Err            error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %d on %s: %v", e.SubscriptionID, e.Topic, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
