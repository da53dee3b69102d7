// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

// Op is the F-bounded interface identifying an effect operation together
// with the value type it resolves to. Each capability operation implements
// Op with a phantom OpResult method; the self-referencing constraint lets
// ExprPerform recover both the operation's own type and its result type
// from a single type argument.
//
// Example:
//
//	type Get struct{ Key string }
//	func (Get) OpResult() GetResponse { panic("phantom") }
type Op[O Op[O, A], A any] interface {
	OpResult() A
}

// Frame is a defunctionalized continuation frame: the data needed to
// resume an Expr past the point where it last transformed a value or
// suspended on an effect. Dispatch is a type switch, not a tag, so Frame
// is a pure marker interface.
type Frame interface {
	frame()
}

// ReturnFrame marks a completed computation; the evaluator stops and
// returns the current value.
type ReturnFrame struct{}

func (ReturnFrame) frame() {}

// MapFrame applies F to the value produced by the frame chain ahead of it,
// then continues with Next. It is the frame ExprMap builds.
type MapFrame struct {
	F    func(any) any
	Next Frame
}

func (*MapFrame) frame() {}

// EffectFrame marks a suspended effect operation. Operation is handed to
// the executor's park dispatch; Next is the frame chain to resume once the
// shell (or a capability's own synchronous path) supplies a value.
type EffectFrame struct {
	Operation any
	Next      Frame
}

func (*EffectFrame) frame() {}

// chainedFrame links two frame chains so ExprMap can be applied to an Expr
// that already carries its own chain, without flattening eagerly.
type chainedFrame struct {
	first Frame
	rest  Frame
}

func (*chainedFrame) frame() {}

// ChainFrames links first and second into one chain, returning whichever
// operand is non-trivial when the other is a bare ReturnFrame rather than
// allocating a chainedFrame node for it.
func ChainFrames(first, second Frame) Frame {
	if _, ok := first.(ReturnFrame); ok {
		return second
	}
	if _, ok := second.(ReturnFrame); ok {
		return first
	}
	return &chainedFrame{first: first, rest: second}
}

// Expr is a defunctionalized asynchronous computation: either a completed
// Value (Frame is ReturnFrame) or a pending computation described by Frame.
// A capability builds one with ExprPerform; task.Executor steps it one
// effect at a time with StepExpr.
type Expr[A any] struct {
	Value A
	Frame Frame
}

// ExprReturn builds an already-completed Expr carrying a.
func ExprReturn[A any](a A) Expr[A] {
	return Expr[A]{Value: a, Frame: ReturnFrame{}}
}

// ExprPerform builds an Expr that suspends on op and resolves to whatever
// value the shell (or a synchronous capability path) resumes it with.
func ExprPerform[O Op[O, A], A any](op O) Expr[A] {
	var zero A
	return Expr[A]{Value: zero, Frame: &EffectFrame{Operation: op, Next: ReturnFrame{}}}
}

// ExprMap transforms the eventual value of m with f, without forcing m to
// resolve first: if m is already complete, f runs immediately; otherwise a
// MapFrame is appended to m's frame chain and runs once m's suspension
// resumes.
func ExprMap[A, B any](m Expr[A], f func(A) B) Expr[B] {
	if _, ok := m.Frame.(ReturnFrame); ok {
		return ExprReturn(f(m.Value))
	}
	mapFrame := &MapFrame{
		F:    func(a any) any { return f(a.(A)) },
		Next: ReturnFrame{},
	}
	var zero B
	return Expr[B]{Value: zero, Frame: ChainFrames(m.Frame, mapFrame)}
}
