// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "sync/atomic"

// Suspension represents an Expr parked on an effect operation. It holds the
// pending operation and a one-shot resumption handle: Resume (or
// TryResume) may be called at most once, matching the affine lifecycle
// Request/Executor already enforce one layer up.
type Suspension[A any] struct {
	used atomic.Uintptr
	op   any
	rest Frame
}

// Op returns the effect operation that caused the suspension — always one
// of OneShotOp, SubscribeOp or StreamNextOp in this kernel, since those are
// the only operations capability.Context ever performs.
func (s *Suspension[A]) Op() any { return s.op }

// Resume advances the computation with v, the shell's response. It returns
// either a completed value (with a nil suspension) or the next suspension,
// reusing the receiver's memory for it when the Expr suspends again.
// Panics if the suspension has already been resumed or discarded.
func (s *Suspension[A]) Resume(v any) (A, *Suspension[A]) {
	if s.used.Add(1) != 1 {
		panic("task: suspension resumed twice")
	}
	return stepFrames[A](v, s.rest, s)
}

// TryResume attempts to advance the computation, reporting false instead
// of panicking if the suspension was already resumed or discarded.
func (s *Suspension[A]) TryResume(v any) (a A, next *Suspension[A], ok bool) {
	if s.used.Add(1) != 1 {
		return a, nil, false
	}
	a, next = stepFrames[A](v, s.rest, s)
	return a, next, true
}

// Discard marks the suspension as consumed without resuming it, so a
// cancelled task's parked continuation is never driven forward.
func (s *Suspension[A]) Discard() { s.used.Store(1) }

// StepExpr drives m until it either completes or suspends on an effect
// operation. Returns (value, nil) on completion, or (zero, suspension) once
// parked; the executor's drain loop calls this once per ready task.
func StepExpr[A any](m Expr[A]) (A, *Suspension[A]) {
	return stepFrames[A](m.Value, m.Frame, nil)
}

// stepFrames walks frame from current, flattening chained frames, applying
// MapFrame transforms in place, and stopping at the first EffectFrame
// (suspend) or ReturnFrame (done). reuse, if non-nil, is refilled in place
// for the next suspension instead of allocating a fresh Suspension.
func stepFrames[A any](current any, frame Frame, reuse *Suspension[A]) (A, *Suspension[A]) {
	for {
		for {
			cf, ok := frame.(*chainedFrame)
			if !ok {
				break
			}
			if nested, ok := cf.first.(*chainedFrame); ok {
				frame = &chainedFrame{first: nested.first, rest: ChainFrames(nested.rest, cf.rest)}
				continue
			}
			switch f := cf.first.(type) {
			case ReturnFrame:
				frame = cf.rest
			case *MapFrame:
				current = f.F(current)
				frame = ChainFrames(f.Next, cf.rest)
			case *EffectFrame:
				return suspend[A](reuse, f, cf.rest)
			default:
				panic("task: unknown frame type in chain")
			}
			break
		}
		if _, ok := frame.(*chainedFrame); ok {
			continue
		}

		switch f := frame.(type) {
		case ReturnFrame:
			return current.(A), nil
		case *MapFrame:
			current = f.F(current)
			frame = f.Next
		case *EffectFrame:
			return suspend[A](reuse, f, f.Next)
		default:
			panic("task: unknown frame type")
		}
	}
}

// suspend parks on f, reusing s's memory when a previous suspension is
// being stepped past rather than allocating a new one.
func suspend[A any](s *Suspension[A], f *EffectFrame, rest Frame) (A, *Suspension[A]) {
	if s == nil {
		s = &Suspension[A]{}
	} else {
		s.used.Store(0)
	}
	s.op = f.Operation
	s.rest = rest
	var zero A
	return zero, s
}
