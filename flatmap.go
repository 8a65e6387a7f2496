// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import (
	"errors"
	"slices"
)

// FlatMap declares a producer that maps every element of src to a
// sub-producer and emits the sub-producers' elements in order. Each
// sub-producer is fully reduced before the next element is pulled from
// src, so FlatMap over an infinite source remains lazy.
func FlatMap[T any](src Producer, f func(T) Producer) Producer {
	if f == nil {
		panic(errors.New("FlatMap requires a non-nil function"))
	}
	return &flatMap{
		src:    src,
		mapper: func(x any) Producer { return f(x.(T)) },
	}
}

// Concat returns a producer that emits the elements of each source in
// turn.
func Concat(srcs ...Producer) Producer {
	list := slices.Clone(srcs)
	return ConcatAll(Unfold(0, func(i int) (Producer, int, bool) {
		if i >= len(list) {
			return nil, i, false
		}
		return list[i], i + 1, true
	}))
}

// ConcatAll flattens a producer whose elements are themselves
// Producers.
func ConcatAll(src Producer) Producer {
	return &flatMap{
		src:    src,
		mapper: func(x any) Producer { return x.(Producer) },
	}
}

type flatMap struct {
	src    Producer
	mapper func(any) Producer
}

// abort unwinds an inner reduction the instant the downstream step
// halts. It is recovered at exactly one boundary: the drive loop of
// the flatMapRun that owns it. Nested FlatMaps re-raise aborts that
// are not their own.
type abort struct {
	owner *flatMapRun
	acc   any
}

// flatMapRun is the state of one in-flight FlatMap reduction: the
// trampolined outer source and, between suspensions, the continuation
// of a partially-reduced sub-producer.
type flatMapRun struct {
	fm    *flatMap
	outer *puller
	inner Continuation
	step  StepFunc
}

func (f *flatMap) Reduce(sig Signal, step StepFunc) Outcome {
	switch {
	case sig.IsHalt():
		return Halted(sig.Acc())
	case sig.IsSuspend():
		return Suspended(sig.Acc(), func(next Signal) Outcome {
			return f.Reduce(next, step)
		})
	}
	run := &flatMapRun{fm: f, outer: newPuller(f.src)}
	run.step = func(x, acc any) Signal {
		sig := step(x, acc)
		if sig.IsHalt() {
			panic(&abort{owner: run, acc: sig.Acc()})
		}
		return sig
	}
	return run.drive(sig.Acc())
}

// drive reduces sub-producers against the guarded downstream step
// until the outer source is exhausted, the downstream halts, or the
// downstream suspends.
func (r *flatMapRun) drive(acc any) (out Outcome) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if a, ok := p.(*abort); ok && a.owner == r {
			r.outer.halt()
			out = Halted(a.acc)
			return
		}
		// A user-callback failure, or an enclosing reduction's abort:
		// release the outer source, then keep unwinding.
		r.outer.halt()
		panic(p)
	}()

	for {
		var call func() Outcome
		if k := r.inner; k != nil {
			r.inner = nil
			call = func() Outcome { return k(Continue(acc)) }
		} else {
			x, ok := r.outer.next()
			if !ok {
				if r.outer.outcome().IsHalted() {
					return Halted(acc)
				}
				return Done(acc)
			}
			sub := r.fm.mapper(x)
			call = func() Outcome { return sub.Reduce(Continue(acc), r.step) }
		}

		inner := call()
		if inner.IsSuspended() {
			r.inner = inner.Continuation()
			return Suspended(inner.Acc(), r.resumeWith)
		}
		// Done, or an inner-local halt (e.g. the mapper returned a
		// pipeline bounded by its own Take): move to the next outer
		// element. A downstream halt never lands here; it panics out
		// of r.step instead.
		acc = inner.Acc()
	}
}

// resumeWith is the Continuation handed out when the downstream
// suspends mid-sub-producer.
func (r *flatMapRun) resumeWith(sig Signal) Outcome {
	switch {
	case sig.IsSuspend():
		return Suspended(sig.Acc(), r.resumeWith)
	case sig.IsHalt():
		acc := sig.Acc()
		if k := r.inner; k != nil {
			r.inner = nil
			acc = k(Halt(acc)).Acc()
		}
		r.outer.halt()
		return Halted(acc)
	}
	return r.drive(sig.Acc())
}
