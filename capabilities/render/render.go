// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package render is the built-in capability used to tell the shell a UI
// update is needed. The shell is expected to call Core.View and reconcile
// against its previous view model; render carries no payload of its own.
package render

import (
	"code.hybscloud.com/kernel/capability"
	"code.hybscloud.com/kernel/task"
)

// Operation is the single, parameterless effect Notify performs.
type Operation struct{}

func (Operation) OpResult() struct{} { panic("render: Operation is phantom") }

// Notify tells the shell the view model has changed and should be
// re-rendered. Call it from update after mutating the model.
func Notify() task.Expr[struct{}] {
	return capability.NotifyShell[Operation, struct{}](Operation{})
}
