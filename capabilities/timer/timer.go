// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package timer is the app-facing time capability: a one-shot delay,
// resolved once by a single OneShot response, and a recurring schedule
// expressed as a cron spec, delivered as Stream ticks so a single
// subscription can carry repeat firings. Package timer
// also provides Scheduler, the shell-side implementation backed by
// robfig/cron.
package timer

import (
	"time"

	"code.hybscloud.com/kernel/capability"
	"code.hybscloud.com/kernel/task"
)

// After asks the shell to resolve it once, with an empty response, after
// Duration elapses.
type After struct{ Duration time.Duration }

func (After) OpResult() struct{} { panic("timer: After is phantom") }

// Every opens a subscription that ticks once per match of spec, a standard
// five-field cron expression.
type Every struct{ Spec string }

func (Every) OpResult() any { panic("timer: Every is phantom") }

// Tick is the payload of every scheduled firing.
type Tick struct{ At time.Time }

// Delay waits d, then resolves once.
func Delay(d time.Duration) task.Expr[struct{}] {
	return capability.NotifyShell[After, struct{}](After{Duration: d})
}

// Schedule opens a recurring timer matching spec, returning the handle
// used with Next to await each firing.
func Schedule(spec string) task.Expr[capability.Subscription] {
	return capability.StreamFromShell[Every, any](Every{Spec: spec})
}

// Next awaits the next Tick of sub, or ok=false once the schedule has been
// cancelled.
func Next(sub capability.Subscription) task.Expr[capability.Either[Tick]] {
	return capability.Next[Tick](sub)
}
