// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package timer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron"
)

// Scheduler is the shell-side implementation of the timer capability: a
// cron.Cron instance for Every subscriptions, plus plain time.AfterFunc
// timers for one-shot After requests.
type Scheduler struct {
	cron    *cron.Cron
	entries map[uuid.UUID]cron.EntryID
}

// NewScheduler starts an empty scheduler. Call Stop when done.
func NewScheduler() *Scheduler {
	c := cron.New()
	c.Start()
	return &Scheduler{cron: c, entries: make(map[uuid.UUID]cron.EntryID)}
}

// Stop halts the underlying cron runner.
func (s *Scheduler) Stop() { s.cron.Stop() }

// RunAfter arranges for onFire to be called once with handle, op.Duration
// after RunAfter is called, matching an After request.
func (s *Scheduler) RunAfter(handle uuid.UUID, op After, onFire func(uuid.UUID, any)) {
	time.AfterFunc(op.Duration, func() {
		onFire(handle, struct{}{})
	})
}

// Open starts a recurring schedule matching op.Spec, calling onTick with
// handle and a Tick on every firing.
func (s *Scheduler) Open(handle uuid.UUID, op Every, onTick func(uuid.UUID, any)) error {
	id, err := s.cron.AddFunc(op.Spec, func() {
		onTick(handle, Tick{At: time.Now()})
	})
	if err != nil {
		return fmt.Errorf("timer: schedule %q: %w", op.Spec, err)
	}
	s.entries[handle] = id
	return nil
}

// Cancel stops a recurring schedule.
func (s *Scheduler) Cancel(handle uuid.UUID) {
	if id, ok := s.entries[handle]; ok {
		s.cron.Remove(id)
		delete(s.entries, handle)
	}
}
