// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package lazy provides composable, single-pass sequence pipelines
// built on a pull-based reduction protocol.
//
// A pipeline is declared without executing anything: stage
// constructors such as [Map], [Filter], and [Take] only record the
// transformation. The entire chain runs in one pass, pulling elements
// one at a time, when an eager consumer such as [Collect] asks for
// results. Early termination and pause/resume signals propagate
// through every stage.
//
//	evens, err := lazy.Collect[int](
//	    lazy.Take(
//	        lazy.Filter(sources.Count(0), func(n int) bool { return n%2 == 0 }),
//	        5))
//	// evens == []int{0, 2, 4, 6, 8}
//
// # The reduction protocol
//
// Two parties drive a reduction: the consumer sends a [Signal]
// ([Continue], [Suspend], or [Halt]) and the producer answers with an
// [Outcome] ([Done], [Halted], or [Suspended]). A suspended outcome
// carries a [Continuation], a one-shot handle that resumes the paused
// reduction exactly where it left off. The [Producer] interface
// documents the full contract; anything that honors it can act as a
// pipeline source, and everything this package builds is itself a
// Producer.
//
// Everything is single-threaded and cooperative. Suspending is not a
// goroutine yield: the producer hands a resumable closure back to its
// caller within the same call stack. Cancellation is exactly the Halt
// signal.
//
// # Stages
//
// [Map], [Filter], [Reject], [Each], [Drop], [DropWhile], [Take],
// [TakeWhile], and [WithIndex] each declare one transform over a
// source. Declaration is O(1) and never touches the source; stages
// with private state (counters, flags) have that state threaded
// through the reduction invisibly to the consumer's accumulator, so a
// declared pipeline can be executed any number of times.
//
// # Combining and generating sequences
//
// [FlatMap], [Concat], [ConcatAll], [Zip], and [Cycle] combine
// sequences, keeping one or more underlying reductions alive across
// their own pulls. [Unfold], [Iterate], and [Repeatedly] synthesize a
// producer from a function. [Resource] binds a producer to an external
// resource and guarantees the release callback runs exactly once
// whether the reduction exhausts, is halted early, or fails.
//
// # Consuming
//
// [Collect], [Fold], [First], and [Drain] execute a pipeline to
// completion. [Seq] adapts a Producer to a standard library
// [iter.Seq] for use in range loops. The [sources] sub-package
// provides ready-made leaf producers for slices, integer ranges,
// channels, line-oriented readers, and iter.Seq values, along with a
// rate-limited wrapper.
//
// # Error handling
//
// A failure in a user callback propagates immediately, past any
// number of composed stages, exactly as if a Halt had reached that
// point: pending resource releases still run. The eager consumers are
// the one boundary that converts such a failure into an error, wrapped
// in a [RecoveredError] together with the stack at the point of the
// panic. Early termination via Halt is not an error; it is a
// first-class outcome carrying the accumulator at the point of
// stopping.
package lazy
