// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kernel provides the Core façade: process_event, resolve and view,
// the three operations a host shell drives the application runtime with.
// Everything underneath — command reduction, task scheduling, capability
// context — is plumbing; Core is the only thing a shell binding imports.
package kernel

import (
	"code.hybscloud.com/kernel/capability"
	"code.hybscloud.com/kernel/command"
	"code.hybscloud.com/kernel/task"

	"github.com/google/uuid"
)

// App is the user-supplied program: a pure update function and a pure view
// projection over Model. Update never performs I/O directly; it describes
// what should happen by returning a Command.
type App[Model, Ev, View any] interface {
	Update(ev Ev, model *Model, ctx *capability.Context[Ev]) command.Command
	View(model Model) View
}

// Core drives one App instance: it owns the model, the task executor, and
// the turn loop that feeds update_app events back through Update before the
// turn is considered quiescent.
type Core[Model, Ev, View any] struct {
	app   App[Model, Ev, View]
	model Model
	exec  *task.Executor
}

// New builds a Core with the given initial model.
func New[Model, Ev, View any](app App[Model, Ev, View], initial Model) *Core[Model, Ev, View] {
	return &Core[Model, Ev, View]{app: app, model: initial, exec: task.NewExecutor()}
}

// ProcessEvent runs one turn: it feeds ev through update, reduces the
// returned Command, and drains the resulting task forest to quiescence.
// Events injected via capability.Context.UpdateApp are fed back through
// update within the same turn, before ProcessEvent returns.
func (c *Core[Model, Ev, View]) ProcessEvent(ev Ev) (events []Ev, effects []task.Effect) {
	return c.turn([]Ev{ev})
}

// Resolve posts response to the Request identified by handle, wakes the
// parked task, and runs it (and any events it produces) to the turn's
// quiescence. ok is false if handle names no outstanding Request — a
// OneShot already resolved, or a Stream already closed — which the spec
// treats as a benign "not outstanding" result, never an error.
func (c *Core[Model, Ev, View]) Resolve(handle uuid.UUID, response any) (events []Ev, effects []task.Effect, ok bool) {
	raw, firstEffects, ok := c.exec.Resolve(handle, response)
	if !ok {
		return nil, nil, false
	}
	pending := make([]Ev, len(raw))
	for i, e := range raw {
		pending[i] = e.(Ev)
	}
	moreEvents, moreEffects := c.turn(pending)
	return moreEvents, append(firstEffects, moreEffects...), true
}

// View calls the pure view projection. It never drives the executor.
func (c *Core[Model, Ev, View]) View() View {
	return c.app.View(c.model)
}

// turn repeatedly feeds pending events through update, reducing each
// returned Command and folding any events it produces back into the queue,
// until no events remain. It returns every event observed (in the order
// produced) and every effect newly posted to the host.
func (c *Core[Model, Ev, View]) turn(pending []Ev) (events []Ev, effects []task.Effect) {
	for len(pending) > 0 {
		ev := pending[0]
		pending = pending[1:]
		events = append(events, ev)

		ctx := capability.NewContext[Ev]()
		cmd := c.app.Update(ev, &c.model, ctx)
		raw, turnEffects := c.exec.RunTurn(cmd)
		effects = append(effects, turnEffects...)
		for _, e := range raw {
			pending = append(pending, e.(Ev))
		}
	}
	return events, effects
}
