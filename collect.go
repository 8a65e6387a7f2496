// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import "vawter.tech/lazy/internal/safe"

// A RecoveredError will be returned by an eager consumer when a user
// callback panics.
type RecoveredError = safe.RecoveredError

// Collect executes the pipeline in a single pass and returns the
// produced elements in order. A panic escaping a user callback is
// returned as a [RecoveredError]; resource-backed producers will
// already have run their cleanup by the time it surfaces.
func Collect[T any](src Producer) ([]T, error) {
	var out []T
	err := safe.Call(func() {
		src.Reduce(Continue(nil), func(x, acc any) Signal {
			out = append(out, x.(T))
			return Continue(acc)
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Fold executes the pipeline, combining every element into a single
// accumulator value.
func Fold[T, A any](src Producer, init A, fn func(A, T) A) (A, error) {
	out, err := safe.CallR(func() any {
		return src.Reduce(Continue(init), func(x, acc any) Signal {
			return Continue(fn(acc.(A), x.(T)))
		}).Acc()
	})
	if err != nil {
		var zero A
		return zero, err
	}
	return out.(A), nil
}

// First executes the pipeline just far enough to produce one element,
// halting the source immediately afterward. It returns false when the
// pipeline produces nothing.
func First[T any](src Producer) (T, bool, error) {
	var (
		v     T
		found bool
	)
	err := safe.Call(func() {
		src.Reduce(Continue(nil), func(x, acc any) Signal {
			v, found = x.(T), true
			return Halt(acc)
		})
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return v, found, nil
}

// Drain executes the pipeline for its side effects, discarding every
// element. It is the natural consumer for pipelines built with [Each].
func Drain(src Producer) error {
	return safe.Call(func() {
		src.Reduce(Continue(nil), func(_, acc any) Signal {
			return Continue(acc)
		})
	})
}
