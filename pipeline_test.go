// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDeclarationOrder pins the executor's fold direction: stages must
// run in declaration order even though they are stored
// last-declared-first. Getting this backward silently reverses
// pipeline semantics without a type error, so the two orderings below
// are chosen to produce different results.
func TestDeclarationOrder(t *testing.T) {
	r := require.New(t)

	double := func(n int) int { return n * 2 }
	small := func(n int) bool { return n <= 4 }

	// Map first: 1..4 doubled is 2,4,6,8; then filtered to 2,4.
	mapThenFilter := Filter(Map(values(1, 2, 3, 4), double), small)
	r.Equal([]int{2, 4}, mustCollect[int](t, mapThenFilter))

	// Filter first: 1..4 filtered is 1,2,3,4; then doubled.
	filterThenMap := Map(Filter(values(1, 2, 3, 4), small), double)
	r.Equal([]int{2, 4, 6, 8}, mustCollect[int](t, filterThenMap))
}

func TestPipelineStorageOrder(t *testing.T) {
	r := require.New(t)

	base := values(1, 2, 3)
	p1 := Map(base, func(n int) int { return n + 1 }).(*Pipeline)
	p2 := Take(p1, 2).(*Pipeline)

	// Declaring a stage prepends to copies of the parallel lists.
	r.Len(p1.ops, 1)
	r.Len(p1.states, 1)
	r.Len(p2.ops, 2)
	r.Len(p2.states, 2)
	r.Equal(2, p2.states[0])
	r.Nil(p2.states[1])
}

// TestPipelineReuse confirms that declaring a stage produces a new
// Pipeline value: the original remains usable and both may be
// executed, repeatedly, in any order.
func TestPipelineReuse(t *testing.T) {
	r := require.New(t)

	base := Map(values(1, 2, 3), func(n int) int { return n * 10 })
	taken := Take(base, 2)
	dropped := Drop(base, 2)

	r.Equal([]int{10, 20}, mustCollect[int](t, taken))
	r.Equal([]int{30}, mustCollect[int](t, dropped))
	r.Equal([]int{10, 20, 30}, mustCollect[int](t, base))
	// Stateful stages reset on every execution.
	r.Equal([]int{10, 20}, mustCollect[int](t, taken))
}

// TestStateStack drives a pipeline with several stateful stages and
// verifies that their private state never leaks into the consumer's
// accumulator.
func TestStateStack(t *testing.T) {
	r := require.New(t)

	p := Take(Drop(WithIndex[int](ints(10)), 2), 3)
	got, err := Fold(p, "", func(acc string, x Indexed[int]) string {
		r.Equal(x.Value, x.Index)
		return acc + string(rune('0'+x.Value))
	})
	r.NoError(err)
	r.Equal("234", got)
}

func TestPipelineHaltPassthrough(t *testing.T) {
	r := require.New(t)

	pulled := 0
	p := Map(counted(values(1, 2, 3), &pulled), func(n int) int { return n })
	out := p.Reduce(Halt("acc"), func(x, acc any) Signal {
		t.Fatal("step should not run")
		return Continue(acc)
	})
	r.True(out.IsHalted())
	r.Equal("acc", out.Acc())
	r.Zero(pulled)
}

// TestPipelineSuspendResume pauses a stateful pipeline after every
// element and verifies the sequence is identical to an uninterrupted
// run, per-stage counters included.
func TestPipelineSuspendResume(t *testing.T) {
	r := require.New(t)

	build := func() Producer {
		return Take(
			Filter(
				Drop(naturals(), 3),
				func(n int) bool { return n%2 == 1 }),
			4)
	}

	plain := mustCollect[int](t, build())
	paused := collectSuspending[int](t, build())
	r.Equal([]int{3, 5, 7, 9}, plain)
	r.Equal(plain, paused)
}

// TestPipelineSuspendBeforeStart suspends a pipeline before any
// element is pulled; resuming must start it from the top.
func TestPipelineSuspendBeforeStart(t *testing.T) {
	r := require.New(t)

	pulled := 0
	p := Map(counted(values("a", "b"), &pulled), func(s string) string { return s + "!" })

	var got []string
	out := p.Reduce(Suspend(nil), func(x, acc any) Signal {
		got = append(got, x.(string))
		return Continue(acc)
	})
	r.True(out.IsSuspended())
	r.Zero(pulled)

	out = out.Continuation()(Continue(nil))
	r.True(out.IsDone())
	r.Equal([]string{"a!", "b!"}, got)
	r.Equal(2, pulled)
}

// TestPipelineResumeWithHalt pauses a reduction mid-stream and then
// resumes it with Halt; the outcome carries the accumulator from the
// point of stopping.
func TestPipelineResumeWithHalt(t *testing.T) {
	r := require.New(t)

	p := Map(values(1, 2, 3), func(n int) int { return n })
	seen := 0
	out := p.Reduce(Continue(0), func(x, acc any) Signal {
		seen++
		return Suspend(acc.(int) + x.(int))
	})
	r.True(out.IsSuspended())
	r.Equal(1, out.Acc())

	out = out.Continuation()(Halt(out.Acc()))
	r.True(out.IsHalted())
	r.Equal(1, out.Acc())
	r.Equal(1, seen)
}
