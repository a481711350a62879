package catalog

import (
	"errors"
	"fmt"
)

// Errors returned by the catalog.
var (
	// ErrEmptyURL is returned when no endpoint is configured.
	ErrEmptyURL = errors.New("invalid API request")

	// ErrMissingCollections is returned when the home feed lacks
	// data.StandardCollection.containers.
	ErrMissingCollections = errors.New("missing collection data")

	// ErrMissingItems is returned when a set response has no items.
	ErrMissingItems = errors.New("missing set items")

	// ErrInvalidJSON is returned for bodies that are not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotCached is returned when no usable cached response exists.
	ErrNotCached = errors.New("response not cached")

	// ErrBadStatus is wrapped by FetchError for non-2xx responses.
	ErrBadStatus = errors.New("unexpected status")
)

// FetchError describes a failed HTTP request.
type FetchError struct {
	URL       string
	Status    int // HTTP status, 0 if no response was received
	RequestID string
	Err       error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: %v %d", e.URL, e.Err, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
