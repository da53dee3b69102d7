// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package harness wraps a kernel.Core for in-process, synchronous testing:
// typed access to queued effect payloads, and a resolve that returns the
// events it observed. It introduces no ordering beyond what production
// code sees — every call goes through the same Core.ProcessEvent/Resolve
// the real shell binding uses.
package harness

import (
	"fmt"

	"code.hybscloud.com/kernel/task"

	"github.com/google/uuid"
)

// core is the subset of kernel.Core[Model, Ev, View] the harness depends
// on, expressed without the View type parameter so Harness only needs to
// know about Model and Ev.
type core[Model, Ev any] interface {
	ProcessEvent(ev Ev) ([]Ev, []task.Effect)
	Resolve(handle uuid.UUID, response any) ([]Ev, []task.Effect, bool)
}

// Harness drives a Core and records every effect it has queued so far,
// keyed by handle, for typed inspection and resolution by tests.
type Harness[Model, Ev any] struct {
	c        core[Model, Ev]
	queued   []task.Effect
	byHandle map[uuid.UUID]task.Effect
}

// New wraps c. c is typically a *kernel.Core[Model, Ev, View]; the harness
// only needs its ProcessEvent and Resolve methods.
func New[Model, Ev any](c core[Model, Ev]) *Harness[Model, Ev] {
	return &Harness[Model, Ev]{c: c, byHandle: make(map[uuid.UUID]task.Effect)}
}

// ProcessEvent drives ev through the wrapped Core and records any newly
// queued effects for later inspection.
func (h *Harness[Model, Ev]) ProcessEvent(ev Ev) []Ev {
	events, effects := h.c.ProcessEvent(ev)
	h.record(effects)
	return events
}

// Effects returns every effect queued since the harness was created that
// has not yet been resolved, in the order it was queued.
func (h *Harness[Model, Ev]) Effects() []task.Effect {
	out := make([]task.Effect, len(h.queued))
	copy(out, h.queued)
	return out
}

// NextEffect returns the oldest unresolved effect, or ok=false if none is
// queued.
func (h *Harness[Model, Ev]) NextEffect() (task.Effect, bool) {
	if len(h.queued) == 0 {
		return task.Effect{}, false
	}
	return h.queued[0], true
}

// Operation asserts eff's payload to Op, panicking with a descriptive
// message on mismatch — tests are expected to know the shape of the
// capability they are driving.
func Operation[Op any](eff task.Effect) Op {
	op, ok := eff.Operation.(Op)
	if !ok {
		panic(fmt.Sprintf("harness: effect payload is %T, not %T", eff.Operation, op))
	}
	return op
}

// Resolve posts response to eff's handle and returns the events it
// produced. It panics if eff does not name an outstanding Request: tests
// driving double-resolve protection (S6) should call
// ResolveAllowingNotOutstanding instead.
func (h *Harness[Model, Ev]) Resolve(eff task.Effect, response any) []Ev {
	events, ok := h.resolve(eff, response)
	if !ok {
		panic("harness: resolve on a handle with no outstanding request")
	}
	return events
}

// ResolveAllowingNotOutstanding posts response to eff's handle and reports
// whether the Request was still outstanding, without panicking when it was
// not — the shape S6 (double-resolve) exercises.
func (h *Harness[Model, Ev]) ResolveAllowingNotOutstanding(eff task.Effect, response any) ([]Ev, bool) {
	return h.resolve(eff, response)
}

func (h *Harness[Model, Ev]) resolve(eff task.Effect, response any) ([]Ev, bool) {
	events, effects, ok := h.c.Resolve(eff.Handle, response)
	if !ok {
		return nil, false
	}
	h.record(effects)
	h.consume(eff.Handle)
	return events, true
}

func (h *Harness[Model, Ev]) record(effects []task.Effect) {
	for _, e := range effects {
		h.queued = append(h.queued, e)
		h.byHandle[e.Handle] = e
	}
}

// consume drops an effect from the queued/NextEffect view once resolved.
// This only affects harness bookkeeping: a caller holding on to the
// task.Effect value from a prior NextEffect can still call Resolve on it
// again, which is how tests drive a Stream request across multiple posts
// or exercise S6's double-resolve-on-a-OneShot case.
func (h *Harness[Model, Ev]) consume(handle uuid.UUID) {
	for i, e := range h.queued {
		if e.Handle == handle {
			h.queued = append(h.queued[:i:i], h.queued[i+1:]...)
			return
		}
	}
}
