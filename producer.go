// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

// A StepFunc is the per-element decision function of a reduction. It
// receives the next element and the current accumulator and returns a
// [Signal] describing how the enclosing reduction should proceed.
type StepFunc func(elem, acc any) Signal

// A Producer is a lazy source of elements. Anything implementing the
// Reduce contract can act as a pipeline source, and every value built
// by this package (a [Pipeline], [Zip], [FlatMap], ...) is itself a
// Producer, so pipelines compose transparently with outside sources.
//
// Reduce behaves as a state machine over the Signal the caller passes
// in:
//
//   - [Halt]: return [Halted] with the signal's accumulator,
//     consuming no input.
//   - [Suspend]: return [Suspended] with a [Continuation] that
//     resumes as if Reduce had been called with the continuation's
//     argument at that exact position.
//   - [Continue]: pull one element, or return [Done] with the
//     accumulator on exhaustion. Otherwise evaluate the step function
//     and treat the Signal it returns as the next incoming signal.
//
// A producer that ignores an incoming Halt and keeps pulling violates
// the contract. Reduce is a blocking, synchronous call: a producer
// that never exhausts and is never halted blocks its caller forever,
// so bounding an infinite source is the consumer's responsibility (see
// [Take] and [TakeWhile]).
//
// Failures in user-supplied callbacks propagate as panics through any
// number of composed stages; the eager consumers ([Collect], [Fold],
// [First], [Drain]) convert them into errors at the boundary.
type Producer interface {
	Reduce(Signal, StepFunc) Outcome
}

// ProducerFunc adapts an ordinary function to the [Producer]
// interface.
type ProducerFunc func(Signal, StepFunc) Outcome

// Reduce implements [Producer].
func (f ProducerFunc) Reduce(sig Signal, step StepFunc) Outcome { return f(sig, step) }

// Empty returns a Producer with no elements. Reducing it reports
// [Done] without ever invoking the step function.
func Empty() Producer { return empty{} }

type empty struct{}

func (e empty) Reduce(sig Signal, step StepFunc) Outcome {
	switch {
	case sig.IsHalt():
		return Halted(sig.Acc())
	case sig.IsSuspend():
		return Suspended(sig.Acc(), func(next Signal) Outcome {
			return e.Reduce(next, step)
		})
	}
	return Done(sig.Acc())
}
