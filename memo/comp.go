package memo

import (
	"io"

	"go.uber.org/multierr"
)

// Unit is the result type of computations evaluated for their effects only.
type Unit = struct{}

// Comp is a first-class computation: a recipe that, given a Context, produces
// a result of type R, possibly reading and writing the Context's storage.
// Building a Comp has no observable effect; it only acts when driven by Run
// or spliced into another computation.
type Comp[R any] struct {
	eval func(ctx *Context) (R, error)
}

// Return yields v without touching storage or the position marker.
func Return[R any](v R) Comp[R] {
	return Comp[R]{eval: func(*Context) (R, error) {
		return v, nil
	}}
}

// Delay defers f until the computation is actually run, so that constructing
// a computation value stays side-effect free.
func Delay[R any](f func() Comp[R]) Comp[R] {
	return Comp[R]{eval: func(ctx *Context) (R, error) {
		return f().eval(ctx)
	}}
}

// Bind is the sequencing step: it advances the Context's position marker once,
// evaluates step under the new marker, then feeds the result to cont. The
// advanced marker persists into the continuation, so cache lookups performed
// there before the next Bind still see it.
func Bind[A, B any](step Comp[A], cont func(A) Comp[B]) Comp[B] {
	return Comp[B]{eval: func(ctx *Context) (B, error) {
		ctx.pos++
		a, err := step.eval(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return cont(a).eval(ctx)
	}}
}

// From splices c into the surrounding computation verbatim: c is evaluated in
// the caller's current Context, with no new scope and no marker reset.
func From[R any](c Comp[R]) Comp[R] {
	return Comp[R]{eval: func(ctx *Context) (R, error) {
		return c.eval(ctx)
	}}
}

// Zero is the empty computation.
func Zero() Comp[Unit] {
	return Return(Unit{})
}

// Combine evaluates first for its effects, then rest for the result. Neither
// evaluation installs a marker of its own; the steps inside install theirs.
func Combine[R any](first Comp[Unit], rest Comp[R]) Comp[R] {
	return Comp[R]{eval: func(ctx *Context) (R, error) {
		if _, err := first.eval(ctx); err != nil {
			var zero R
			return zero, err
		}
		return rest.eval(ctx)
	}}
}

// For evaluates body once per item without advancing the position marker
// between iterations: every iteration starts from the loop's entry marker, so
// all iterations of one static loop body share the same default addresses.
// Cells inside the body therefore collide across iterations unless
// disambiguated with a per-iteration key (see CellKeyed).
func For[T any](items []T, body func(T) Comp[Unit]) Comp[Unit] {
	return Comp[Unit]{eval: func(ctx *Context) (Unit, error) {
		base := ctx.pos
		for _, item := range items {
			ctx.pos = base
			if _, err := body(item).eval(ctx); err != nil {
				return Unit{}, err
			}
		}
		ctx.pos = base
		return Unit{}, nil
	}}
}

// Using evaluates body(res) fully and releases res afterward, exactly once,
// on every exit path. A release failure is combined with the body's error.
func Using[T io.Closer, R any](res T, body func(T) Comp[R]) Comp[R] {
	return Comp[R]{eval: func(ctx *Context) (out R, err error) {
		defer func() {
			err = multierr.Append(err, res.Close())
		}()
		return body(res).eval(ctx)
	}}
}
