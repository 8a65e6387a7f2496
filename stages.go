// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import (
	"errors"

	"vawter.tech/lazy/internal/stack"
)

// Indexed pairs an element with its zero-based position in the
// sequence. It is the element type emitted by [WithIndex].
type Indexed[T any] struct {
	Value T
	Index int
}

// rewrap restores a stage's state frame around the signal returned by
// the next stage inward.
func rewrap(sig Signal, state any) Signal {
	return sig.WithAcc(stack.Push(state, sig.Acc()))
}

// Map declares a stage that transforms every element with f.
func Map[T, U any](src Producer, f func(T) U) Producer {
	if f == nil {
		panic(errors.New("Map requires a non-nil function"))
	}
	return addStage(src, func(next StepFunc) StepFunc {
		return func(x, acc any) Signal {
			st, rest := stack.Pop(acc)
			return rewrap(next(f(x.(T)), rest), st)
		}
	}, nil)
}

// Filter declares a stage that forwards only the elements for which
// pred returns true.
func Filter[T any](src Producer, pred func(T) bool) Producer {
	if pred == nil {
		panic(errors.New("Filter requires a non-nil predicate"))
	}
	return addStage(src, func(next StepFunc) StepFunc {
		return func(x, acc any) Signal {
			st, rest := stack.Pop(acc)
			if !pred(x.(T)) {
				return Continue(acc)
			}
			return rewrap(next(x, rest), st)
		}
	}, nil)
}

// Reject declares a stage that drops the elements for which pred
// returns true. It is the complement of [Filter].
func Reject[T any](src Producer, pred func(T) bool) Producer {
	if pred == nil {
		panic(errors.New("Reject requires a non-nil predicate"))
	}
	return Filter(src, func(x T) bool { return !pred(x) })
}

// Each declares a stage that invokes fn on every element for its side
// effect and forwards the element unchanged. The callback only runs
// once the pipeline is executed.
func Each[T any](src Producer, fn func(T)) Producer {
	if fn == nil {
		panic(errors.New("Each requires a non-nil function"))
	}
	return addStage(src, func(next StepFunc) StepFunc {
		return func(x, acc any) Signal {
			st, rest := stack.Pop(acc)
			fn(x.(T))
			return rewrap(next(x, rest), st)
		}
	}, nil)
}

// Drop declares a stage that discards the first n elements and
// forwards every element after that.
func Drop(src Producer, n int) Producer {
	if n < 0 {
		panic(errors.New("Drop requires a non-negative count"))
	}
	return addStage(src, func(next StepFunc) StepFunc {
		return func(x, acc any) Signal {
			st, rest := stack.Pop(acc)
			if left := st.(int); left > 0 {
				return Continue(stack.Push(left-1, rest))
			}
			return rewrap(next(x, rest), st)
		}
	}, n)
}

// DropWhile declares a stage that discards elements while pred holds.
// Once pred fails for the first time, every remaining element is
// forwarded; the stage never goes back to dropping.
func DropWhile[T any](src Producer, pred func(T) bool) Producer {
	if pred == nil {
		panic(errors.New("DropWhile requires a non-nil predicate"))
	}
	return addStage(src, func(next StepFunc) StepFunc {
		return func(x, acc any) Signal {
			st, rest := stack.Pop(acc)
			if dropping := st.(bool); dropping {
				if pred(x.(T)) {
					return Continue(acc)
				}
				st = false
			}
			return rewrap(next(x, rest), st)
		}
	}, true)
}

// Take declares a stage that forwards the first n elements, then halts
// the whole pipeline so the source evaluates no more than n elements
// even when it is infinite. Take(src, 0) short-circuits to [Empty] at
// construction and never examines the source at all.
func Take(src Producer, n int) Producer {
	if n < 0 {
		panic(errors.New("Take requires a non-negative count"))
	}
	if n == 0 {
		return Empty()
	}
	return addStage(src, func(next StepFunc) StepFunc {
		return func(x, acc any) Signal {
			st, rest := stack.Pop(acc)
			left := st.(int)
			if left <= 0 {
				// Only reachable when the final element's signal was a
				// Suspend and the reduction was resumed afterward.
				return Halt(acc)
			}
			sig := next(x, rest)
			left--
			if left == 0 && sig.IsContinue() {
				return Halt(stack.Push(left, sig.Acc()))
			}
			return rewrap(sig, left)
		}
	}, n)
}

// TakeWhile declares a stage that forwards elements while pred holds
// and halts the pipeline on the first element that fails, without
// forwarding it.
func TakeWhile[T any](src Producer, pred func(T) bool) Producer {
	if pred == nil {
		panic(errors.New("TakeWhile requires a non-nil predicate"))
	}
	return addStage(src, func(next StepFunc) StepFunc {
		return func(x, acc any) Signal {
			st, rest := stack.Pop(acc)
			if !pred(x.(T)) {
				return Halt(acc)
			}
			return rewrap(next(x, rest), st)
		}
	}, nil)
}

// WithIndex declares a stage that pairs every element with its
// zero-based position, emitting [Indexed] values.
func WithIndex[T any](src Producer) Producer {
	return addStage(src, func(next StepFunc) StepFunc {
		return func(x, acc any) Signal {
			st, rest := stack.Pop(acc)
			idx := st.(int)
			return rewrap(next(Indexed[T]{Value: x.(T), Index: idx}, rest), idx+1)
		}
	}, 0)
}
