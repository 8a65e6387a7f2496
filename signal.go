// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import "fmt"

type signalOp uint8

const (
	opContinue signalOp = iota
	opSuspend
	opHalt
)

func (o signalOp) String() string {
	switch o {
	case opContinue:
		return "continue"
	case opSuspend:
		return "suspend"
	case opHalt:
		return "halt"
	default:
		return fmt.Sprintf("signalOp(%d)", o)
	}
}

// A Signal is the control value a consumer passes to a [Producer] on
// every step of a reduction. It pairs one of three operations with the
// accumulator the consumer is threading through the reduction:
//
//   - [Continue] asks the producer for the next element.
//   - [Suspend] asks the producer to pause and hand back a
//     [Continuation] without discarding its position.
//   - [Halt] asks the producer to stop immediately, running any
//     pending cleanup.
//
// A [StepFunc] also returns a Signal: the value the step function
// returns is fed straight back into the producer's next pull. This
// return-as-input duality is what lets stages be chained
// transparently.
type Signal struct {
	op  signalOp
	acc any
}

// Continue returns a Signal requesting the next element.
func Continue(acc any) Signal { return Signal{op: opContinue, acc: acc} }

// Suspend returns a Signal requesting that the reduction pause.
func Suspend(acc any) Signal { return Signal{op: opSuspend, acc: acc} }

// Halt returns a Signal requesting that the reduction stop.
func Halt(acc any) Signal { return Signal{op: opHalt, acc: acc} }

// Acc returns the accumulator carried by the Signal.
func (s Signal) Acc() any { return s.acc }

// IsContinue reports whether the Signal requests the next element.
func (s Signal) IsContinue() bool { return s.op == opContinue }

// IsSuspend reports whether the Signal requests a pause.
func (s Signal) IsSuspend() bool { return s.op == opSuspend }

// IsHalt reports whether the Signal requests early termination.
func (s Signal) IsHalt() bool { return s.op == opHalt }

// WithAcc returns a Signal with the same operation and a replacement
// accumulator.
func (s Signal) WithAcc(acc any) Signal {
	s.acc = acc
	return s
}

// String is for debugging use only.
func (s Signal) String() string {
	return fmt.Sprintf("%s(%v)", s.op, s.acc)
}
