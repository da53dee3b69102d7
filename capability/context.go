// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package capability defines the Context apps and capabilities use to talk
// to the shell: acknowledged notifications, single-response requests,
// and open-ended streams, all expressed as task.Expr[command.Command]
// computations a task.Executor can drive.
package capability

import (
	"code.hybscloud.com/kernel/command"
	"code.hybscloud.com/kernel/task"

	"github.com/google/uuid"
)

// Context is passed to a capability's async body. Ev is the app's event
// type; UpdateApp folds an event back into the running app within the same
// task without a shell round-trip.
type Context[Ev any] struct {
	mapEvent func(Ev) any
}

// NewContext builds a root Context whose events are injected unchanged.
func NewContext[Ev any]() *Context[Ev] {
	return &Context[Ev]{mapEvent: func(e Ev) any { return e }}
}

// MapEvent returns a Context that transforms every event it emits through
// f before the host's Context sees it, composing with any transform
// already in effect. Nesting capabilities preserves event identity and
// ordering: this is the capability-side counterpart of command.Map.
func MapEvent[Ev, Outer any](ctx *Context[Outer], f func(Ev) Outer) *Context[Ev] {
	inner := ctx.mapEvent
	return &Context[Ev]{mapEvent: func(e Ev) any { return inner(f(e)) }}
}

// NotifyShell performs a OneShot operation whose response carries no data:
// the task stays parked until the host resolves it, and the response value
// is discarded.
func NotifyShell[Op task.Op[Op, A], A any](op Op) task.Expr[struct{}] {
	raw := task.ExprPerform[task.OneShotOp, any](task.OneShotOp{Operation: op})
	return task.ExprMap(raw, func(any) struct{} { return struct{}{} })
}

// RequestFromShell performs op and awaits exactly one typed response.
func RequestFromShell[Op task.Op[Op, Resp], Resp any](op Op) task.Expr[Resp] {
	raw := task.ExprPerform[task.OneShotOp, any](task.OneShotOp{Operation: op})
	return task.ExprMap(raw, func(v any) Resp { return v.(Resp) })
}

// Subscription identifies an open Stream request previously opened by
// StreamFromShell.
type Subscription struct{ id uuid.UUID }

// StreamFromShell opens a Stream request for op and returns the handle
// used to pull subsequent items with Next.
func StreamFromShell[Op task.Op[Op, A], A any](op Op) task.Expr[Subscription] {
	raw := task.ExprPerform[task.SubscribeOp, any](task.SubscribeOp{Operation: op})
	return task.ExprMap(raw, func(v any) Subscription { return Subscription{id: v.(uuid.UUID)} })
}

// Next awaits the next item of sub, or ok=false once the shell has closed
// the stream.
func Next[Resp any](sub Subscription) task.Expr[Either[Resp]] {
	raw := task.ExprPerform[task.StreamNextOp, any](task.StreamNextOp{RequestID: sub.id})
	return task.ExprMap(raw, func(v any) Either[Resp] {
		if _, closed := v.(task.StreamClosed); closed {
			return Either[Resp]{}
		}
		return Either[Resp]{Value: v.(Resp), Ok: true}
	})
}

// Either carries a stream item, or its absence once the stream has closed.
type Either[Resp any] struct {
	Value Resp
	Ok    bool
}

// Emit folds ev into the app as an event, without a shell round-trip. The
// Context's accumulated MapEvent chain is applied so the host always sees
// events in the app's own vocabulary.
func (ctx *Context[Ev]) Emit(ev Ev) command.Command {
	return command.Event(ctx.mapEvent(ev))
}

// UpdateApp is an alias for Emit matching the spec's capability vocabulary.
func (ctx *Context[Ev]) UpdateApp(ev Ev) command.Command {
	return ctx.Emit(ev)
}
