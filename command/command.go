// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package command defines the composable value update returns: a small
// algebra of none/event/effect/join/map constructors, reduced by the task
// executor into scheduling actions.
package command

// Kind tags the constructor used to build a Command.
type Kind int

const (
	KindNone Kind = iota
	KindEvent
	KindEffect
	KindJoin
	KindMap
)

// Command is an immutable description of work returned by update. Events
// and effect bodies are both carried type-erased (any): the façade asserts
// Event back to the app's concrete event type at the turn boundary, and
// the task executor asserts Body back to task.Expr[Command] when it spawns
// a KindEffect command. Keeping command dependency-free of task avoids a
// package cycle, since task itself depends on command for this type.
type Command struct {
	Kind  Kind
	Event any

	// Body holds a task.Expr[Command] for a KindEffect command: the
	// asynchronous computation the task executor runs. Its final value is
	// itself a Command, folded back into the executor when the task
	// completes.
	Body any

	// A and B are the two reduced sub-commands of a KindJoin.
	A, B *Command

	// Inner and MapFn describe a KindMap: every event eventually produced
	// by Inner (directly, or by an effect task Inner spawns) is passed
	// through MapFn before being appended to the turn's event buffer.
	Inner *Command
	MapFn func(any) any
}

// None is the empty command: the executor takes no action.
func None() Command { return Command{Kind: KindNone} }

// Event injects e as a new event, appended to the current turn's event
// buffer in submission order.
func Event(e any) Command { return Command{Kind: KindEvent, Event: e} }

// Effect runs body (a task.Expr[Command]) as an asynchronous task on the
// executor. body's final value must itself be a Command, folded back in
// when the task completes.
func Effect(body any) Command {
	return Command{Kind: KindEffect, Body: body}
}

// Join reduces both a and b; the surrounding task completes when both are
// done. Events and effects from a and b interleave by source order.
func Join(a, b Command) Command {
	return Command{Kind: KindJoin, A: &a, B: &b}
}

// JoinEffect is shorthand for Join(a, Effect(body)).
func JoinEffect(a Command, body any) Command {
	return Join(a, Effect(body))
}

// Map transforms every event produced by c through f. Effects emitted by c
// (or by any effect task it spawns) are untouched.
func Map(c Command, f func(any) any) Command {
	return Command{Kind: KindMap, Inner: &c, MapFn: f}
}
