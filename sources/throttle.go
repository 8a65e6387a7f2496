// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package sources

import (
	"context"
	"errors"

	"golang.org/x/time/rate"
	"vawter.tech/lazy"
)

// Throttle wraps a producer so that elements are delivered no faster
// than the limiter allows. The reduction blocks on the limiter before
// each element is forwarded downstream. If the context is canceled
// while waiting, the source is halted cooperatively and the reduction
// reports [lazy.Halted] with the accumulator it had reached.
func Throttle(ctx context.Context, src lazy.Producer, l *rate.Limiter) lazy.Producer {
	switch {
	case ctx == nil:
		panic(errors.New("Throttle requires a non-nil context"))
	case src == nil:
		panic(errors.New("Throttle requires a non-nil source"))
	case l == nil:
		panic(errors.New("Throttle requires a non-nil limiter"))
	}
	return lazy.ProducerFunc(func(sig lazy.Signal, step lazy.StepFunc) lazy.Outcome {
		return src.Reduce(sig, func(x, acc any) lazy.Signal {
			if err := l.Wait(ctx); err != nil {
				// Context canceled: stop pulling, run source cleanup.
				return lazy.Halt(acc)
			}
			return step(x, acc)
		})
	})
}
