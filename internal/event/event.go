package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/deeplus/internal/nav"
)

// Event is a typed message published on the bus.
type Event[T any] struct {
	Type     Topic
	Payload  T
	Metadata Metadata
}

// Metadata is attached to every event.
type Metadata struct {
	ID        string
	Timestamp time.Time
	// Source names the component that published the event.
	Source string
}

// NewEvent creates an event stamped with a fresh ID and the current time.
func NewEvent[T any](typ Topic, payload T, source string) Event[T] {
	return Event[T]{
		Type:    typ,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// EventTopic implements TopicProvider.
func (e Event[T]) EventTopic() Topic {
	return e.Type
}

// TopicProvider is implemented by everything that can be published.
type TopicProvider interface {
	EventTopic() Topic
}

// GridReady is the payload of TopicGridReady.
type GridReady struct {
	Rows  int
	Tiles int
}

// NavMoved is the payload of TopicNavMoved and TopicNavRejected.
type NavMoved struct {
	From      nav.Cursor
	To        nav.Cursor
	Direction nav.Direction
}

// CatalogLoaded is the payload of TopicCatalogLoaded.
type CatalogLoaded struct {
	Collections int
	Items       int
	Elapsed     time.Duration
}

// CatalogFailed is the payload of TopicCatalogFailed.
type CatalogFailed struct {
	Err error
}

// ConfigReloaded is the payload of TopicConfigReloaded.
type ConfigReloaded struct {
	Path string
}
