package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cache read path. A corrupt entry is treated the
// same as a missing one by readers, but the distinction is kept for logs
// and metrics.
var (
	// ErrCacheMiss indicates no cached entry exists for the source.
	ErrCacheMiss = errors.New("cache entry not found")

	// ErrCacheCorrupt indicates an entry exists but failed to deserialize.
	ErrCacheCorrupt = errors.New("cache entry corrupt")

	// ErrUnknownSource indicates a source key that is not in the registry.
	ErrUnknownSource = errors.New("unknown source key")
)

// NetworkError is a transport-level failure: the request never produced a
// usable HTTP response (DNS, connect, TLS, timeout).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FetchError is a non-2xx terminal HTTP status after redirects were
// followed.
type FetchError struct {
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
}

// ParseError indicates malformed or empty downloaded content, including
// HTML error pages served in place of CSV.
type ParseError struct {
	Source string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("parse error: %s", e.Reason)
	}
	return fmt.Sprintf("parse error for %s: %s", e.Source, e.Reason)
}

// ValidationError reports an invalid field on a domain object.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
