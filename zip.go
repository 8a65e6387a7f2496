// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

// A Pair is the element type emitted by [Zip].
type Pair[T, U any] struct {
	Left  T
	Right U
}

// Zip declares a producer that pulls one element from each side per
// output element and emits them as a [Pair]. The zipped sequence ends
// as soon as either side is exhausted or halts; the other side is then
// halted so its cleanup runs, and any element already pulled from it
// is discarded.
func Zip[T, U any](left, right Producer) Producer {
	return &zipped{
		left:  left,
		right: right,
		pair: func(x, y any) any {
			return Pair[T, U]{Left: x.(T), Right: y.(U)}
		},
	}
}

type zipped struct {
	left, right Producer
	pair        func(x, y any) any
}

func (z *zipped) Reduce(sig Signal, step StepFunc) Outcome {
	switch {
	case sig.IsHalt():
		return Halted(sig.Acc())
	case sig.IsSuspend():
		return Suspended(sig.Acc(), func(next Signal) Outcome {
			return z.Reduce(next, step)
		})
	}
	run := &zipRun{
		left:  newPuller(z.left),
		right: newPuller(z.right),
		pair:  z.pair,
		step:  step,
	}
	return run.drive(sig.Acc())
}

// zipRun holds the two independent, live reductions of a zipped pair
// of sources. Each side is driven in suspend mode so exactly one
// element is pulled at a time.
type zipRun struct {
	left, right *puller
	pair        func(x, y any) any
	step        StepFunc
}

func (r *zipRun) drive(acc any) (out Outcome) {
	defer func() {
		if p := recover(); p != nil {
			// A failing downstream step must not strand the two
			// suspended sides.
			r.left.halt()
			r.right.halt()
			panic(p)
		}
	}()

	for {
		x, ok := r.left.next()
		if !ok {
			return r.finish(r.left.outcome(), r.right, acc)
		}
		y, ok := r.right.next()
		if !ok {
			return r.finish(r.right.outcome(), r.left, acc)
		}
		sig := r.step(r.pair(x, y), acc)
		switch {
		case sig.IsContinue():
			acc = sig.Acc()
		case sig.IsSuspend():
			return Suspended(sig.Acc(), r.resumeWith)
		default:
			r.left.halt()
			r.right.halt()
			return Halted(sig.Acc())
		}
	}
}

// finish propagates one side's terminal reason as the zipped
// reduction's own outcome, halting the surviving side.
func (r *zipRun) finish(end Outcome, survivor *puller, acc any) Outcome {
	survivor.halt()
	if end.IsHalted() {
		return Halted(acc)
	}
	return Done(acc)
}

func (r *zipRun) resumeWith(sig Signal) Outcome {
	switch {
	case sig.IsSuspend():
		return Suspended(sig.Acc(), r.resumeWith)
	case sig.IsHalt():
		r.left.halt()
		r.right.halt()
		return Halted(sig.Acc())
	}
	return r.drive(sig.Acc())
}
