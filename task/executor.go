// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"code.hybscloud.com/kernel/command"

	"github.com/google/uuid"
)

// Executor runs the task forest spawned by command.Effect. A turn (a call
// to RunTurn or Resolve) drains the ready queue to completion before
// returning; tasks parked on a Request stay parked across turns.
type Executor struct {
	ready   []*Task
	parked  map[uuid.UUID]*Request
	events  []any
	effects []Effect
}

// NewExecutor returns an empty Executor.
func NewExecutor() *Executor {
	return &Executor{parked: make(map[uuid.UUID]*Request)}
}

// RunTurn reduces cmd and drains the ready queue, returning the events
// produced (in submission order) and the effects newly posted to the host.
func (ex *Executor) RunTurn(cmd command.Command) ([]any, []Effect) {
	ex.events = nil
	ex.effects = nil
	ex.reduce(cmd, nil, nil)
	ex.drain()
	return ex.events, ex.effects
}

// Resolve posts response to the Request identified by handle. ok is false
// if handle names no outstanding Request (including a OneShot Request
// already resolved, or a Stream already closed/cancelled) — the spec's
// "not outstanding" case, never an error.
func (ex *Executor) Resolve(handle uuid.UUID, response any) (events []any, effects []Effect, ok bool) {
	ex.events = nil
	ex.effects = nil

	req, found := ex.parked[handle]
	if !found {
		return nil, nil, false
	}

	switch req.Lifecycle {
	case OneShot:
		if req.state != statePending {
			return nil, nil, false
		}
		req.state = stateResolved
		delete(ex.parked, handle)
		ex.resumeOwner(req, response)
	case Stream:
		if req.state != statePending {
			return nil, nil, false
		}
		if _, isClose := response.(StreamClosed); isClose {
			req.state = stateClosed
		}
		t := req.owner
		if t != nil && t.susp != nil && t.waitingOn == req {
			ex.resumeOwner(req, response)
		} else {
			req.pushBuffered(response)
		}
		if req.state == stateClosed && len(req.buffered) == 0 {
			delete(ex.parked, handle)
		}
	}

	ex.drain()
	return ex.events, ex.effects, true
}

// resumeOwner resumes req's owning task's parked suspension with v and
// continues it (parking again, or folding its final Command back in).
func (ex *Executor) resumeOwner(req *Request, v any) {
	t := req.owner
	if t == nil || t.susp == nil {
		return
	}
	susp := t.susp
	t.susp = nil
	t.waitingOn = nil
	value, next := susp.Resume(v)
	ex.continueTask(t, value, next)
}

// CancelRequest cancels the task parked on handle, and recursively cancels
// every descendant it has spawned. Each cancelled task's own outstanding
// Request (if any) becomes terminal and its parked continuation is
// discarded without ever being resumed. ok is false if handle names no
// outstanding Request.
func (ex *Executor) CancelRequest(handle uuid.UUID) (ok bool) {
	req, found := ex.parked[handle]
	if !found || req.owner == nil {
		return false
	}
	ex.cancelTask(req.owner)
	return true
}

// cancelTask recursively cancels t and its descendants: any Request it is
// parked on becomes terminal and its parked continuation is discarded
// without ever being resumed.
func (ex *Executor) cancelTask(t *Task) {
	if t == nil || t.cancelled || t.done {
		return
	}
	t.cancelled = true
	if t.waitingOn != nil {
		t.waitingOn.state = stateCancelled
		delete(ex.parked, t.waitingOn.ID)
		t.waitingOn = nil
	}
	if t.susp != nil {
		t.susp.Discard()
		t.susp = nil
	}
	for _, c := range t.children {
		ex.cancelTask(c)
	}
}

// reduce applies a Command, mutating executor state: events append to the
// turn's buffer, effects spawn child tasks onto the ready queue.
func (ex *Executor) reduce(cmd command.Command, owner *Task, mapChain func(any) any) {
	switch cmd.Kind {
	case command.KindNone:
	case command.KindEvent:
		ev := cmd.Event
		if mapChain != nil {
			ev = mapChain(ev)
		}
		ex.events = append(ex.events, ev)
	case command.KindEffect:
		t := newTask(cmd.Body.(Expr[command.Command]), owner, mapChain)
		ex.ready = append(ex.ready, t)
	case command.KindJoin:
		ex.reduce(*cmd.A, owner, mapChain)
		ex.reduce(*cmd.B, owner, mapChain)
	case command.KindMap:
		ex.reduce(*cmd.Inner, owner, compose(mapChain, cmd.MapFn))
	}
}

// drain steps every ready task to its next suspension or completion, in
// FIFO order, including tasks newly spawned or resumed while draining.
func (ex *Executor) drain() {
	for len(ex.ready) > 0 {
		t := ex.ready[0]
		ex.ready = ex.ready[1:]
		if t.cancelled || t.done {
			continue
		}
		value, next := StepExpr(t.pending)
		ex.continueTask(t, value, next)
	}
}

// continueTask handles the outcome of stepping or resuming t: park on the
// new suspension, or fold the final Command back into the executor.
func (ex *Executor) continueTask(t *Task, value command.Command, next *Suspension[command.Command]) {
	if next != nil {
		ex.park(t, next)
		return
	}
	t.done = true
	ex.reduce(value, t, t.mapChain)
}

// park records the operation t suspended on as an outstanding Request (or,
// for StreamNextOp, resolves synchronously against buffered data or an
// already-closed subscription).
func (ex *Executor) park(t *Task, susp *Suspension[command.Command]) {
	switch o := susp.Op().(type) {
	case OneShotOp:
		req := &Request{ID: uuid.New(), Operation: o.Operation, Lifecycle: OneShot, state: statePending, owner: t}
		t.susp = susp
		t.waitingOn = req
		ex.parked[req.ID] = req
		ex.effects = append(ex.effects, Effect{Operation: req.Operation, Handle: req.ID})
	case SubscribeOp:
		req := &Request{ID: uuid.New(), Operation: o.Operation, Lifecycle: Stream, state: statePending, owner: t}
		ex.parked[req.ID] = req
		ex.effects = append(ex.effects, Effect{Operation: req.Operation, Handle: req.ID})
		value, next := susp.Resume(req.ID)
		ex.continueTask(t, value, next)
	case StreamNextOp:
		req, found := ex.parked[o.RequestID]
		if !found {
			value, next := susp.Resume(StreamClosed{})
			ex.continueTask(t, value, next)
			return
		}
		if item, ok := req.popBuffered(); ok {
			value, next := susp.Resume(item)
			ex.continueTask(t, value, next)
			return
		}
		if req.state == stateClosed || req.state == stateCancelled {
			value, next := susp.Resume(StreamClosed{})
			ex.continueTask(t, value, next)
			return
		}
		t.susp = susp
		t.waitingOn = req
		req.owner = t
	default:
		panic("task: effect operation not produced via capability.Context")
	}
}
