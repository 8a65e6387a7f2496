// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

// pulled is the sentinel accumulator a puller's step function smuggles
// an element out through.
type pulled struct {
	value any
}

// A puller turns a Producer's reduction into a trampoline that yields
// one element per call. It primes the producer with a Suspend signal,
// which by contract returns a continuation without pulling anything,
// and then drives that continuation one Continue at a time with a step
// function that suspends immediately after each element.
//
// Pullers are how the multi-source combinators keep another producer's
// reduction alive across multiple of their own pulls.
type puller struct {
	resume Continuation
	final  Outcome
}

func newPuller(src Producer) *puller {
	p := &puller{}
	out := src.Reduce(Suspend(nil), func(x, _ any) Signal {
		return Suspend(pulled{value: x})
	})
	if out.IsSuspended() {
		p.resume = out.Continuation()
	} else {
		p.final = out
	}
	return p
}

// next yields the producer's next element. It returns false once the
// underlying reduction has finished; outcome then reports why.
func (p *puller) next() (any, bool) {
	if p.resume == nil {
		return nil, false
	}
	k := p.resume
	p.resume = nil
	out := k(Continue(nil))
	if out.IsSuspended() {
		p.resume = out.Continuation()
		return out.Acc().(pulled).value, true
	}
	p.final = out
	return nil, false
}

// halt stops the underlying reduction, giving the producer a chance to
// run its cleanup. It is a no-op once the reduction has finished.
func (p *puller) halt() {
	if p.resume == nil {
		return
	}
	k := p.resume
	p.resume = nil
	p.final = k(Halt(nil))
}

// outcome reports how the underlying reduction ended. It is only
// meaningful after next has returned false or halt has been called.
func (p *puller) outcome() Outcome { return p.final }
