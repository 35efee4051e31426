// Package result holds the tagged success/error value returned by fetches.
package result

import "errors"

// Result is either a Success carrying a value or a Failure carrying a message.
// The zero value is a Failure with an empty message.
type Result[T any] struct {
	value   T
	message string
	ok      bool
}

// Success wraps a value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure wraps an error message.
func Failure[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// OK reports whether r is a Success.
func (r Result[T]) OK() bool {
	return r.ok
}

// Value returns the wrapped value, or the zero value for a Failure.
func (r Result[T]) Value() T {
	return r.value
}

// Message returns the failure message, or "" for a Success.
func (r Result[T]) Message() string {
	return r.message
}

// Unwrap converts r into the usual (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if !r.ok {
		var zero T
		return zero, errors.New(r.message)
	}
	return r.value, nil
}
