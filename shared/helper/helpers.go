package helper

import (
	"errors"
	"fmt"
)

// ErrUnexpectedType reports that a type-erased value did not hold the dynamic
// type the caller asked for.
var ErrUnexpectedType = errors.New("unexpected dynamic type")

// TypedOf asserts a type-erased value to the expected type T.
// Returns an error wrapping ErrUnexpectedType if the assertion fails.
func TypedOf[T any](raw any) (T, error) {
	val, ok := raw.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: want %T, have %T", ErrUnexpectedType, zero, raw)
	}
	return val, nil
}

// MustTypedOf is the panic-on-failure variant of TypedOf.
// Use when a mismatch can only mean a bug in the calling code.
func MustTypedOf[T any](raw any) T {
	val, err := TypedOf[T](raw)
	if err != nil {
		panic(err)
	}
	return val
}
