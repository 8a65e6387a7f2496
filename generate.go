// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import "errors"

// Unfold declares a producer driven by successive applications of
// next to an evolving state: each pull calls next with the current
// state, emits the returned value, and advances to the returned state.
// Returning false ends the sequence.
func Unfold[S, T any](seed S, next func(S) (T, S, bool)) Producer {
	if next == nil {
		panic(errors.New("Unfold requires a non-nil function"))
	}
	return &unfold[S]{
		seed: seed,
		next: func(s S) (any, S, bool) {
			v, s2, ok := next(s)
			return v, s2, ok
		},
	}
}

type unfold[S any] struct {
	seed S
	next func(S) (any, S, bool)
}

func (u *unfold[S]) Reduce(sig Signal, step StepFunc) Outcome {
	return u.from(u.seed, sig, step)
}

func (u *unfold[S]) from(state S, sig Signal, step StepFunc) Outcome {
	for {
		switch {
		case sig.IsHalt():
			return Halted(sig.Acc())
		case sig.IsSuspend():
			resumeAt := state
			return Suspended(sig.Acc(), func(next Signal) Outcome {
				return u.from(resumeAt, next, step)
			})
		}
		v, nextState, ok := u.next(state)
		if !ok {
			return Done(sig.Acc())
		}
		state = nextState
		sig = step(v, sig.Acc())
	}
}

// iterated is the Unfold state backing [Iterate]. The first pull emits
// the start value itself; only after that does the step function apply.
type iterated[T any] struct {
	prev   T
	primed bool
}

// Iterate declares an infinite producer whose first element is start
// and whose every subsequent element is step applied to the previous
// emitted value.
func Iterate[T any](start T, step func(T) T) Producer {
	if step == nil {
		panic(errors.New("Iterate requires a non-nil function"))
	}
	return Unfold(iterated[T]{prev: start}, func(s iterated[T]) (T, iterated[T], bool) {
		if !s.primed {
			return start, iterated[T]{prev: start, primed: true}, true
		}
		v := step(s.prev)
		return v, iterated[T]{prev: v, primed: true}, true
	})
}

// Repeatedly declares an infinite producer that calls gen afresh for
// every pull. Like [Cycle], it never reports [Done] on its own and
// must be bounded downstream.
func Repeatedly[T any](gen func() T) Producer {
	if gen == nil {
		panic(errors.New("Repeatedly requires a non-nil generator"))
	}
	return &repeatedly{gen: func() any { return gen() }}
}

type repeatedly struct {
	gen func() any
}

func (r *repeatedly) Reduce(sig Signal, step StepFunc) Outcome {
	for {
		switch {
		case sig.IsHalt():
			return Halted(sig.Acc())
		case sig.IsSuspend():
			return Suspended(sig.Acc(), func(next Signal) Outcome {
				return r.Reduce(next, step)
			})
		}
		sig = step(r.gen(), sig.Acc())
	}
}

// Resource declares a producer bound to an external resource. The
// reduction calls acquire exactly once before the first pull, then
// behaves like [Unfold] driven by next over the acquired handle, and
// releases the handle exactly once on every exit path of the whole
// reduction: normal exhaustion, a downstream [Halt], or a panic
// escaping next or a downstream step.
//
// A reduction that is suspended and never resumed holds the handle
// open; an abandoned continuation is the one path on which release
// cannot run.
func Resource[H, T any](acquire func() H, next func(H) (T, bool), release func(H)) Producer {
	switch {
	case acquire == nil:
		panic(errors.New("Resource requires a non-nil acquire function"))
	case next == nil:
		panic(errors.New("Resource requires a non-nil next function"))
	case release == nil:
		panic(errors.New("Resource requires a non-nil release function"))
	}
	return &resource[H]{
		acquire: acquire,
		next: func(h H) (any, bool) {
			v, ok := next(h)
			return v, ok
		},
		release: release,
	}
}

type resource[H any] struct {
	acquire func() H
	next    func(H) (any, bool)
	release func(H)
}

// held tracks an acquired handle across suspensions so that release
// runs exactly once no matter how many segments the reduction is
// driven in.
type held[H any] struct {
	handle   H
	release  func(H)
	released bool
}

func (h *held[H]) close() {
	if h.released {
		return
	}
	h.released = true
	h.release(h.handle)
}

func (r *resource[H]) Reduce(sig Signal, step StepFunc) Outcome {
	switch {
	case sig.IsHalt():
		// Halted before the first pull: nothing was acquired.
		return Halted(sig.Acc())
	case sig.IsSuspend():
		return Suspended(sig.Acc(), func(next Signal) Outcome {
			return r.Reduce(next, step)
		})
	}
	h := &held[H]{handle: r.acquire(), release: r.release}
	return r.drive(h, sig, step)
}

// drive runs one segment of the reduction. The deferred recover makes
// a failing callback release the handle exactly as a Halt would before
// the failure keeps unwinding.
func (r *resource[H]) drive(h *held[H], sig Signal, step StepFunc) Outcome {
	defer func() {
		if p := recover(); p != nil {
			h.close()
			panic(p)
		}
	}()
	for {
		switch {
		case sig.IsHalt():
			h.close()
			return Halted(sig.Acc())
		case sig.IsSuspend():
			return Suspended(sig.Acc(), func(next Signal) Outcome {
				return r.drive(h, next, step)
			})
		}
		v, ok := r.next(h.handle)
		if !ok {
			h.close()
			return Done(sig.Acc())
		}
		sig = step(v, sig.Acc())
	}
}
