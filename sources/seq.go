// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package sources

import (
	"iter"

	"vawter.tech/lazy"
)

// Seq returns a producer over a standard library [iter.Seq]. It is the
// inverse of [lazy.Seq]. Each reduction pulls the sequence afresh via
// [iter.Pull]; the pull iterator is stopped on exhaustion, on a
// downstream halt, and when a panic unwinds through the reduction.
func Seq[T any](seq iter.Seq[T]) lazy.Producer {
	return &seqSource[T]{seq: seq}
}

type seqSource[T any] struct {
	seq iter.Seq[T]
}

func (s *seqSource[T]) Reduce(sig lazy.Signal, step lazy.StepFunc) lazy.Outcome {
	next, stop := iter.Pull(s.seq)
	return s.drive(next, stop, sig, step)
}

func (s *seqSource[T]) drive(
	next func() (T, bool), stop func(), sig lazy.Signal, step lazy.StepFunc,
) lazy.Outcome {
	defer func() {
		if p := recover(); p != nil {
			stop()
			panic(p)
		}
	}()
	for {
		switch {
		case sig.IsHalt():
			stop()
			return lazy.Halted(sig.Acc())
		case sig.IsSuspend():
			return lazy.Suspended(sig.Acc(), func(resumed lazy.Signal) lazy.Outcome {
				return s.drive(next, stop, resumed, step)
			})
		}
		v, ok := next()
		if !ok {
			stop()
			return lazy.Done(sig.Acc())
		}
		sig = step(v, sig.Acc())
	}
}
