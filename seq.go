// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import "iter"

// Seq exposes a [Producer] as a standard library [iter.Seq], pulling
// one element per loop iteration. Breaking out of the range loop sends
// a [Halt] upstream, so resource-backed producers still run their
// cleanup. Panics from user callbacks propagate into the range loop.
func Seq[T any](src Producer) iter.Seq[T] {
	return func(yield func(T) bool) {
		p := newPuller(src)
		defer p.halt()
		for {
			x, ok := p.next()
			if !ok {
				return
			}
			if !yield(x.(T)) {
				return
			}
		}
	}
}
