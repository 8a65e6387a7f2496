// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import "fmt"

type outcomeState uint8

const (
	stateDone outcomeState = iota
	stateHalted
	stateSuspended
)

func (s outcomeState) String() string {
	switch s {
	case stateDone:
		return "done"
	case stateHalted:
		return "halted"
	case stateSuspended:
		return "suspended"
	default:
		return fmt.Sprintf("outcomeState(%d)", s)
	}
}

// A Continuation resumes a paused reduction exactly where it left off.
// Invoking it with a new [Signal] behaves as if the producer's original
// Reduce call had received that Signal at the paused position.
//
// A Continuation is single-use. Resuming one twice, or resuming after
// the reduction has already reported [Done] or [Halted], is a contract
// violation with undefined results.
type Continuation func(Signal) Outcome

// An Outcome is the terminal or paused result a [Producer] returns to
// its consumer:
//
//   - [Done] means the source is exhausted.
//   - [Halted] means a [Halt] signal was honored.
//   - [Suspended] carries a [Continuation] that resumes the paused
//     reduction.
type Outcome struct {
	state  outcomeState
	acc    any
	resume Continuation
}

// Done returns an Outcome reporting that the source is exhausted.
func Done(acc any) Outcome { return Outcome{state: stateDone, acc: acc} }

// Halted returns an Outcome reporting that a [Halt] signal was honored.
func Halted(acc any) Outcome { return Outcome{state: stateHalted, acc: acc} }

// Suspended returns an Outcome that pauses the reduction. The
// continuation resumes it.
func Suspended(acc any, k Continuation) Outcome {
	return Outcome{state: stateSuspended, acc: acc, resume: k}
}

// Acc returns the accumulator carried by the Outcome.
func (o Outcome) Acc() any { return o.acc }

// Continuation returns the resumption handle of a suspended Outcome,
// or nil for a terminal one.
func (o Outcome) Continuation() Continuation { return o.resume }

// IsDone reports whether the source was exhausted.
func (o Outcome) IsDone() bool { return o.state == stateDone }

// IsHalted reports whether the reduction was halted early.
func (o Outcome) IsHalted() bool { return o.state == stateHalted }

// IsSuspended reports whether the reduction is paused.
func (o Outcome) IsSuspended() bool { return o.state == stateSuspended }

// WithAcc returns an Outcome with the same state and continuation and
// a replacement accumulator.
func (o Outcome) WithAcc(acc any) Outcome {
	o.acc = acc
	return o
}

// String is for debugging use only.
func (o Outcome) String() string {
	return fmt.Sprintf("%s(%v)", o.state, o.acc)
}
