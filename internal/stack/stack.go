// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package stack threads per-stage pipeline state through an opaque
// accumulator value.
//
// The pipeline executor pushes one frame per declared stage on top of
// the consumer's accumulator. Each stage pops exactly one frame (its
// own state), hands the remainder to the next stage inward, and wraps
// its new state around whatever comes back. The consumer's step
// function therefore only ever sees its own accumulator at the bottom
// of the stack.
package stack

type frame struct {
	state any
	rest  any
}

// Push wraps a stage state around an accumulator.
func Push(state, rest any) any {
	return frame{state: state, rest: rest}
}

// Pop splits the topmost stage state from an accumulator. It panics if
// the accumulator does not carry a frame, which indicates a corrupted
// reduction.
func Pop(acc any) (state, rest any) {
	f := acc.(frame)
	return f.state, f.rest
}

// PopN removes n frames, returning the states outermost-first along
// with the underlying accumulator.
func PopN(acc any, n int) ([]any, any) {
	states := make([]any, n)
	for i := range states {
		states[i], acc = Pop(acc)
	}
	return states, acc
}

// PushN is the inverse of [PopN]: it layers the given states, provided
// outermost-first, back over an accumulator.
func PushN(states []any, acc any) any {
	for i := len(states) - 1; i >= 0; i-- {
		acc = Push(states[i], acc)
	}
	return acc
}
