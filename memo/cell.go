package memo

import (
	"fmt"

	"github.com/rememo-dev/rememo/shared/helper"
)

// Cell is a cache lookup at the current position with the default key: when
// run, it either returns the value already cached at the current address or
// evaluates factory once and caches the result.
//
// The slot's address comes from the sequencing step that consumes the cell,
// not from where the Cell value was constructed. A single Cell stored in a
// variable and bound from several steps therefore owns one independent slot
// per step.
func Cell[T any](factory func() T) Comp[T] {
	return CellKeyed(defaultKey{}, factory)
}

// CellKeyed is Cell disambiguated by a user-supplied comparable key, required
// whenever several lookups share one position, such as loop iterations.
func CellKeyed[T any](key any, factory func() T) Comp[T] {
	return Comp[T]{eval: func(ctx *Context) (T, error) {
		return getOrCreate(ctx, address{pos: ctx.pos, key: key}, factory)
	}}
}

// FloatingCell caches under a position-independent address: only the user key
// matters. It may be consumed from different sequencing steps across runs
// without double-use errors, at the cost of losing position-based collision
// protection. Keeping keys unique across call sites is the caller's job.
func FloatingCell[T any](key any, factory func() T) Comp[T] {
	return Comp[T]{eval: func(ctx *Context) (T, error) {
		return getOrCreate(ctx, address{pos: posAnywhere, key: key}, factory)
	}}
}

// getOrCreate is the single read/write site of value slots. Present and
// unused: mark used and return the downcast value. Present and used: fail.
// Absent: run the factory exactly once and store the result as used.
func getOrCreate[T any](ctx *Context, addr address, factory func() T) (T, error) {
	n := ctx.storage.arena.node(ctx.node)
	if tr, ok := n.values[addr]; ok {
		if tr.used {
			var zero T
			return zero, fmt.Errorf("%w: %v", ErrSlotReused, addr)
		}
		tr.used = true
		ctx.storage.rec.cellHit()
		val, err := helper.TypedOf[T](tr.val)
		if err != nil {
			return val, fmt.Errorf("%w: %v: %v", ErrTypeMismatch, addr, err)
		}
		return val, nil
	}
	val := factory()
	n.values[addr] = &traced[any]{val: val, used: true}
	ctx.storage.rec.cellMiss()
	return val, nil
}

// Scoped wraps body so that it executes against the child storage selected by
// key, entered at most once per run. The child's position marker starts
// outside any sequence, and its descendants' addresses are invisible to
// sibling scopes.
func Scoped[R any](key any, body Comp[R]) Comp[R] {
	return Comp[R]{eval: func(ctx *Context) (R, error) {
		child, err := enterScope(ctx, key)
		if err != nil {
			var zero R
			return zero, err
		}
		childCtx := &Context{
			storage: ctx.storage,
			node:    child,
			pos:     posOutside,
		}
		return body.eval(childCtx)
	}}
}

// enterScope marks the scope entry under key as used, creating an empty child
// node on first visit.
func enterScope(ctx *Context, key any) (nodeID, error) {
	n := ctx.storage.arena.node(ctx.node)
	if tr, ok := n.scopes[key]; ok {
		if tr.used {
			return 0, fmt.Errorf("%w: key %v", ErrScopeReused, key)
		}
		tr.used = true
		ctx.storage.rec.scopeEntered()
		return tr.val, nil
	}
	child := ctx.storage.arena.alloc()
	n.scopes[key] = &traced[nodeID]{val: child, used: true}
	ctx.storage.rec.scopeEntered()
	return child, nil
}
