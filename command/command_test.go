// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package command_test

import (
	"testing"

	"code.hybscloud.com/kernel/command"
	"code.hybscloud.com/kernel/task"

	"github.com/stretchr/testify/assert"
)

func TestNoneIsZeroKind(t *testing.T) {
	assert.Equal(t, command.KindNone, command.None().Kind)
}

func TestEventCarriesPayload(t *testing.T) {
	c := command.Event("hello")
	assert.Equal(t, command.KindEvent, c.Kind)
	assert.Equal(t, "hello", c.Event)
}

func TestJoinKeepsBothSides(t *testing.T) {
	a := command.Event(1)
	b := command.Event(2)
	j := command.Join(a, b)
	assert.Equal(t, command.KindJoin, j.Kind)
	assert.Equal(t, 1, j.A.Event)
	assert.Equal(t, 2, j.B.Event)
}

func TestMapWrapsInnerWithoutMutatingIt(t *testing.T) {
	inner := command.Event(21)
	mapped := command.Map(inner, func(e any) any { return e.(int) * 2 })
	assert.Equal(t, command.KindMap, mapped.Kind)
	assert.Equal(t, 21, mapped.Inner.Event)
	assert.Equal(t, 42, mapped.MapFn(mapped.Inner.Event))
}

func TestJoinEffectJoinsAPlainEffect(t *testing.T) {
	a := command.Event("a")
	body := task.ExprReturn(command.None())
	j := command.JoinEffect(a, body)
	assert.Equal(t, command.KindJoin, j.Kind)
	assert.Equal(t, command.KindEvent, j.A.Kind)
	assert.Equal(t, command.KindEffect, j.B.Kind)
}
