// Package backend defines the vocabulary shared with the consumed REST
// backend: the error taxonomy of the transport and the tagged result used by
// single-entity lookups.
package backend

import (
	"errors"
	"fmt"
)

// NetworkError wraps a transport-level failure: the request never produced an
// HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.Code, e.Status)
}

// ErrNotFound is returned when an entity required by an operation no longer
// exists on the backend.
var ErrNotFound = errors.New("entity not found")

// IsNotFound reports whether err means the entity is genuinely absent: either
// the ErrNotFound sentinel or a 404 response.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var se *StatusError
	return errors.As(err, &se) && se.Code == 404
}

// LookupState tags the outcome of a single-entity lookup.
type LookupState int

const (
	// LookupFound means the entity was fetched successfully.
	LookupFound LookupState = iota
	// LookupNotFound means the backend answered 404 for the id.
	LookupNotFound
	// LookupTransient means the lookup failed for a reason that says nothing
	// about the entity's existence (transport failure, 5xx).
	LookupTransient
)

// Lookup is the tagged result of a get-by-id. It keeps "the entity is gone"
// distinct from "the fetch failed", so callers choose how to react instead of
// every failure collapsing into not-found.
type Lookup[T any] struct {
	State  LookupState
	Entity T
	Err    error
}

func Found[T any](entity T) Lookup[T] {
	return Lookup[T]{State: LookupFound, Entity: entity}
}

func NotFound[T any]() Lookup[T] {
	return Lookup[T]{State: LookupNotFound}
}

func Transient[T any](err error) Lookup[T] {
	return Lookup[T]{State: LookupTransient, Err: err}
}

// OrNil collapses the lookup into a pointer, nil for both not-found and
// transient failures. This mirrors the panel's original getById behavior and
// exists for callers that deliberately accept the ambiguity.
func (l Lookup[T]) OrNil() *T {
	if l.State != LookupFound {
		return nil
	}
	e := l.Entity
	return &e
}
