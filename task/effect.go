// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "github.com/google/uuid"

// Effect is the host-facing envelope posted out of a turn: an opaque
// capability operation paired with the handle the host must quote back to
// Executor.Resolve (through kernel.Core.Resolve), for OneShot and Stream
// requests alike.
type Effect struct {
	Operation any
	Handle    uuid.UUID
}

// The three operation wrappers below are how capability.Context tags each
// performed effect with the lifecycle the executor should apply. They are
// an implementation seam between capability and task, not something
// capability authors construct directly: capability.NotifyShell,
// capability.RequestFromShell, capability.StreamFromShell and
// capability.Next build them.

// OneShotOp requests a single response for Operation.
type OneShotOp struct{ Operation any }

func (OneShotOp) OpResult() any { panic("task: OneShotOp is phantom") }

// SubscribeOp opens a Stream request for Operation. The executor resumes
// it immediately with the assigned Request.ID; it never reaches the ready
// queue as a parked suspension.
type SubscribeOp struct{ Operation any }

func (SubscribeOp) OpResult() any { panic("task: SubscribeOp is phantom") }

// StreamNextOp asks for the next buffered item of an existing Stream
// request. The executor resumes it synchronously if an item is already
// buffered, otherwise parks the task on the existing Request without
// emitting a new Effect (the shell already knows about the subscription).
type StreamNextOp struct{ RequestID uuid.UUID }

func (StreamNextOp) OpResult() any { panic("task: StreamNextOp is phantom") }
