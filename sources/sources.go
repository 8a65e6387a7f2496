// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package sources provides leaf producers for common element sources.
//
// Every value returned by this package honors the [lazy.Producer]
// reduce contract, so it can be used directly as a pipeline source or
// combined with any other producer.
package sources

import (
	"bufio"
	"io"

	"vawter.tech/lazy"
)

// Slice returns a producer over the elements of items, in order. The
// slice is not copied; it must not be mutated while a reduction is in
// flight.
func Slice[T any](items []T) lazy.Producer {
	return &sliceSource[T]{items: items}
}

type sliceSource[T any] struct {
	items []T
}

func (s *sliceSource[T]) Reduce(sig lazy.Signal, step lazy.StepFunc) lazy.Outcome {
	return s.from(0, sig, step)
}

func (s *sliceSource[T]) from(idx int, sig lazy.Signal, step lazy.StepFunc) lazy.Outcome {
	for {
		switch {
		case sig.IsHalt():
			return lazy.Halted(sig.Acc())
		case sig.IsSuspend():
			at := idx
			return lazy.Suspended(sig.Acc(), func(next lazy.Signal) lazy.Outcome {
				return s.from(at, next, step)
			})
		}
		if idx >= len(s.items) {
			return lazy.Done(sig.Acc())
		}
		x := s.items[idx]
		idx++
		sig = step(x, sig.Acc())
	}
}

// Range returns a producer over the integers in the half-open
// interval [lo, hi). An empty interval produces nothing.
func Range(lo, hi int) lazy.Producer {
	return &span{next: lo, stop: hi, bounded: true}
}

// Count returns an infinite producer over the integers from, from+1,
// from+2, and so on. Like any unbounded producer it must be limited
// downstream, e.g. with [lazy.Take].
func Count(from int) lazy.Producer {
	return &span{next: from}
}

type span struct {
	next    int
	stop    int
	bounded bool
}

func (s *span) Reduce(sig lazy.Signal, step lazy.StepFunc) lazy.Outcome {
	return s.from(s.next, sig, step)
}

func (s *span) from(n int, sig lazy.Signal, step lazy.StepFunc) lazy.Outcome {
	for {
		switch {
		case sig.IsHalt():
			return lazy.Halted(sig.Acc())
		case sig.IsSuspend():
			at := n
			return lazy.Suspended(sig.Acc(), func(next lazy.Signal) lazy.Outcome {
				return s.from(at, next, step)
			})
		}
		if s.bounded && n >= s.stop {
			return lazy.Done(sig.Acc())
		}
		x := n
		n++
		sig = step(x, sig.Acc())
	}
}

// Chan returns a producer that receives elements from the channel
// until it is closed. Receiving blocks the reduction, so an idle,
// open channel blocks the consumer; closing the channel is how the
// source reports exhaustion.
func Chan[T any](ch <-chan T) lazy.Producer {
	return &chanSource[T]{ch: ch}
}

type chanSource[T any] struct {
	ch <-chan T
}

func (c *chanSource[T]) Reduce(sig lazy.Signal, step lazy.StepFunc) lazy.Outcome {
	for {
		switch {
		case sig.IsHalt():
			return lazy.Halted(sig.Acc())
		case sig.IsSuspend():
			return lazy.Suspended(sig.Acc(), func(next lazy.Signal) lazy.Outcome {
				return c.Reduce(next, step)
			})
		}
		v, ok := <-c.ch
		if !ok {
			return lazy.Done(sig.Acc())
		}
		sig = step(v, sig.Acc())
	}
}

// Lines returns a producer over the lines of r, without trailing
// newlines. A read error ends the reduction with a panic, which the
// eager consumers in the lazy package surface as an error.
func Lines(r io.Reader) lazy.Producer {
	return &lineSource{r: r}
}

type lineSource struct {
	r io.Reader
}

func (l *lineSource) Reduce(sig lazy.Signal, step lazy.StepFunc) lazy.Outcome {
	return l.drive(bufio.NewScanner(l.r), sig, step)
}

func (l *lineSource) drive(sc *bufio.Scanner, sig lazy.Signal, step lazy.StepFunc) lazy.Outcome {
	for {
		switch {
		case sig.IsHalt():
			return lazy.Halted(sig.Acc())
		case sig.IsSuspend():
			return lazy.Suspended(sig.Acc(), func(next lazy.Signal) lazy.Outcome {
				return l.drive(sc, next, step)
			})
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				panic(err)
			}
			return lazy.Done(sig.Acc())
		}
		sig = step(sc.Text(), sig.Acc())
	}
}
