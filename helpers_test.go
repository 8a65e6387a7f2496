// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

// Test sources are built from the package's own generators so the
// in-package tests do not depend on the sources sub-package.

// values returns a producer over the given elements, in order.
func values[T any](items ...T) Producer {
	return Unfold(0, func(i int) (T, int, bool) {
		if i >= len(items) {
			var zero T
			return zero, i, false
		}
		return items[i], i + 1, true
	})
}

// ints returns a producer over 0..n-1.
func ints(n int) Producer {
	return Unfold(0, func(i int) (int, int, bool) {
		if i >= n {
			return 0, i, false
		}
		return i, i + 1, true
	})
}

// naturals returns an infinite producer over 0, 1, 2, ...
func naturals() Producer {
	return Iterate(0, func(n int) int { return n + 1 })
}

// counted wraps a producer, counting how many elements it emits.
func counted(src Producer, n *int) Producer {
	return ProducerFunc(func(sig Signal, step StepFunc) Outcome {
		return src.Reduce(sig, func(x, acc any) Signal {
			*n++
			return step(x, acc)
		})
	})
}

// mustCollect reduces src to a slice, failing the test on error.
type failer interface {
	Helper()
	Fatalf(format string, args ...any)
}

func mustCollect[T any](t failer, src Producer) []T {
	t.Helper()
	out, err := Collect[T](src)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	return out
}

// collectSuspending reduces src one element at a time, answering every
// element with a Suspend and resuming with Continue, to prove that
// pausing is invisible to the produced sequence.
func collectSuspending[T any](t failer, src Producer) []T {
	t.Helper()
	var out []T
	res := src.Reduce(Continue(nil), func(x, acc any) Signal {
		out = append(out, x.(T))
		return Suspend(acc)
	})
	for res.IsSuspended() {
		res = res.Continuation()(Continue(res.Acc()))
	}
	return out
}
