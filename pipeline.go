// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import "vawter.tech/lazy/internal/stack"

// A stageOp decorates the next stage's step function with this stage's
// behavior. The returned step receives the accumulator with this
// stage's state frame on top; see the stack package.
type stageOp func(next StepFunc) StepFunc

// A Pipeline is a declared, unexecuted chain of stages over a source.
// It is produced by the stage constructors ([Map], [Filter], [Take],
// ...) and is itself a [Producer], so executing it means reducing it.
//
// Declaring a stage never touches the source: it only grows two
// parallel lists, so building a pipeline of any depth is cheap.
// Pipelines are immutable; adding a stage produces a new Pipeline
// value, and the original remains usable.
type Pipeline struct {
	source Producer

	// ops and states are parallel and stored last-declared-first.
	// Reduce documents the fold direction; TestDeclarationOrder pins
	// it, since folding the wrong way silently reverses pipeline
	// semantics without a type error.
	ops    []stageOp
	states []any
}

var _ Producer = (*Pipeline)(nil)

// addStage declares a new stage over a source. When the source is
// already a *Pipeline the stage is prepended to copies of its lists;
// otherwise the source is wrapped into a fresh single-stage Pipeline.
func addStage(src Producer, op stageOp, state any) *Pipeline {
	if p, ok := src.(*Pipeline); ok {
		ops := make([]stageOp, 0, len(p.ops)+1)
		ops = append(append(ops, op), p.ops...)
		states := make([]any, 0, len(p.states)+1)
		states = append(append(states, state), p.states...)
		return &Pipeline{source: p.source, ops: ops, states: states}
	}
	return &Pipeline{source: src, ops: []stageOp{op}, states: []any{state}}
}

// Reduce implements [Producer]. It folds the declared stages into one
// composed step function and drives the source with it.
func (p *Pipeline) Reduce(sig Signal, step StepFunc) Outcome {
	// ops is stored last-declared-first, so walking it forward wraps
	// the consumer's step from the inside out: the first-declared
	// stage ends up outermost and sees every element first.
	composed := step
	for _, op := range p.ops {
		composed = op(composed)
	}

	// Stack the per-stage states over the consumer's accumulator.
	// Walking forward again leaves the first-declared stage's state as
	// the outermost frame, matching the fold above.
	acc := sig.Acc()
	for _, st := range p.states {
		acc = stack.Push(st, acc)
	}

	return p.unwrap(p.source.Reduce(sig.WithAcc(acc), composed))
}

// unwrap strips the stage state frames from a source outcome so the
// consumer sees only its own accumulator. For a suspended reduction
// the frames are captured and re-applied around the consumer's next
// signal before delegating to the source's continuation.
func (p *Pipeline) unwrap(out Outcome) Outcome {
	states, acc := stack.PopN(out.Acc(), len(p.ops))
	if !out.IsSuspended() {
		return out.WithAcc(acc)
	}
	k := out.Continuation()
	return Suspended(acc, func(sig Signal) Outcome {
		return p.unwrap(k(sig.WithAcc(stack.PushN(states, sig.Acc()))))
	})
}
