// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package task drives the asynchronous computations spawned by
// command.Effect: a forest of cooperatively scheduled tasks, each stepped
// through Expr[command.Command] one effect operation at a time via
// StepExpr, parked on a Request until the shell posts a response.
package task

import (
	"code.hybscloud.com/kernel/command"

	"github.com/google/uuid"
)

// Task is one node of the cancellation tree. Spawned by an Effect command,
// it owns the continuation currently awaiting a response, if any.
type Task struct {
	ID        uuid.UUID
	parent    *Task
	children  []*Task
	cancelled bool
	done      bool

	pending   Expr[command.Command]
	susp      *Suspension[command.Command]
	waitingOn *Request

	// mapChain is the composed event transform in effect when this task was
	// spawned; it is reapplied when the task's final Command is reduced, so
	// a map(effect(...), f) keeps transforming events the spawned task
	// produces only once it actually completes.
	mapChain func(any) any
}

func newTask(body Expr[command.Command], parent *Task, mapChain func(any) any) *Task {
	t := &Task{ID: uuid.New(), parent: parent, pending: body, mapChain: mapChain}
	if parent != nil {
		parent.children = append(parent.children, t)
	}
	return t
}

func compose(outer, inner func(any) any) func(any) any {
	switch {
	case outer == nil:
		return inner
	case inner == nil:
		return outer
	default:
		return func(e any) any { return outer(inner(e)) }
	}
}
