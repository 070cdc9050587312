package memo

import "errors"

// ErrSlotReused indicates that the same (position, key) cache slot was read
// twice within one run of the same scope. The error returned by the run driver
// wraps this sentinel together with the offending address.
var ErrSlotReused = errors.New("cache slot already used in this run")

// ErrScopeReused indicates that the same scope key was entered twice within
// one run of the enclosing scope.
var ErrScopeReused = errors.New("scope already entered in this run")

// ErrTypeMismatch indicates that the type expected by a cell disagrees with
// the value previously stored at the same address.
var ErrTypeMismatch = errors.New("cached value type mismatch")
