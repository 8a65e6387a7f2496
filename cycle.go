// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

// Cycle declares a producer that repeats the source's sequence
// indefinitely: exhaustion is invisible to the consumer and
// immediately yields more elements from the top of the source.
// Halts and suspensions propagate unchanged.
//
// Cycle never terminates on its own, so it must be bounded downstream
// by [Take], [TakeWhile], or an explicit [Halt]. Cycling an empty
// source is a pathological case: every lap exhausts immediately, and
// the reduction spins forever without producing anything.
func Cycle(src Producer) Producer { return &cycle{src: src} }

type cycle struct {
	src Producer
}

func (c *cycle) Reduce(sig Signal, step StepFunc) Outcome {
	switch {
	case sig.IsHalt():
		return Halted(sig.Acc())
	case sig.IsSuspend():
		return Suspended(sig.Acc(), func(next Signal) Outcome {
			return c.Reduce(next, step)
		})
	}
	return c.drive(c.lap(step), sig, step)
}

// lap returns a fresh reduction of the unconsumed source.
func (c *cycle) lap(step StepFunc) func(Signal) Outcome {
	return func(sig Signal) Outcome { return c.src.Reduce(sig, step) }
}

func (c *cycle) drive(resume func(Signal) Outcome, sig Signal, step StepFunc) Outcome {
	for {
		out := resume(sig)
		switch {
		case out.IsDone():
			// Restart with the accumulator carried over.
			resume = c.lap(step)
			sig = Continue(out.Acc())
		case out.IsHalted():
			return out
		default:
			k := out.Continuation()
			return Suspended(out.Acc(), func(next Signal) Outcome {
				return c.drive(k, next, step)
			})
		}
	}
}
