// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignal(t *testing.T) {
	r := require.New(t)

	c := Continue(1)
	r.True(c.IsContinue())
	r.False(c.IsSuspend())
	r.False(c.IsHalt())
	r.Equal(1, c.Acc())
	r.Equal("continue(1)", c.String())

	s := Suspend("acc")
	r.True(s.IsSuspend())
	r.Equal("acc", s.Acc())
	r.Equal("suspend(acc)", s.String())

	h := Halt(nil)
	r.True(h.IsHalt())
	r.Nil(h.Acc())

	r.Equal(2, c.WithAcc(2).Acc())
	r.True(c.WithAcc(2).IsContinue())
	// The receiver is a value; WithAcc must not mutate it.
	r.Equal(1, c.Acc())
}

func TestOutcome(t *testing.T) {
	r := require.New(t)

	d := Done(10)
	r.True(d.IsDone())
	r.False(d.IsHalted())
	r.False(d.IsSuspended())
	r.Equal(10, d.Acc())
	r.Nil(d.Continuation())
	r.Equal("done(10)", d.String())

	h := Halted("x")
	r.True(h.IsHalted())
	r.Equal("x", h.Acc())

	k := Continuation(func(Signal) Outcome { return Done(nil) })
	s := Suspended(3, k)
	r.True(s.IsSuspended())
	r.Equal(3, s.Acc())
	r.NotNil(s.Continuation())
	r.Equal("suspended(3)", s.String())

	r.Equal(4, s.WithAcc(4).Acc())
	r.NotNil(s.WithAcc(4).Continuation())
	r.Equal(3, s.Acc())
}

// TestReduceContract exercises the three-way state machine that every
// producer must implement, using Empty and a small finite source.
func TestReduceContract(t *testing.T) {
	r := require.New(t)

	noStep := StepFunc(func(x, acc any) Signal {
		t.Fatal("step should not run")
		return Continue(acc)
	})

	// Halt returns immediately, consuming no input.
	out := values(1, 2, 3).Reduce(Halt("acc"), noStep)
	r.True(out.IsHalted())
	r.Equal("acc", out.Acc())

	// Suspend returns a continuation that resumes at the same
	// position.
	out = values(1, 2, 3).Reduce(Suspend("acc"), func(x, acc any) Signal {
		return Continue(acc)
	})
	r.True(out.IsSuspended())
	r.Equal("acc", out.Acc())
	out = out.Continuation()(Continue("acc2"))
	r.True(out.IsDone())
	r.Equal("acc2", out.Acc())

	// Continue pulls until exhaustion.
	out = Empty().Reduce(Continue(42), noStep)
	r.True(out.IsDone())
	r.Equal(42, out.Acc())
}

func TestEmptySuspend(t *testing.T) {
	r := require.New(t)

	out := Empty().Reduce(Suspend(nil), func(x, acc any) Signal {
		t.Fatal("step should not run")
		return Continue(acc)
	})
	r.True(out.IsSuspended())
	out = out.Continuation()(Halt(7))
	r.True(out.IsHalted())
	r.Equal(7, out.Acc())
}
