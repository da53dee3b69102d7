// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capability_test

import (
	"testing"

	"code.hybscloud.com/kernel/capability"

	"github.com/stretchr/testify/assert"
)

type outerEvent struct{ Inner int }

func TestEmitAppliesNoTransformAtRoot(t *testing.T) {
	ctx := capability.NewContext[int]()
	cmd := ctx.Emit(7)
	assert.Equal(t, 7, cmd.Event)
}

func TestMapEventComposesWrapping(t *testing.T) {
	root := capability.NewContext[outerEvent]()
	nested := capability.MapEvent[int](root, func(inner int) outerEvent {
		return outerEvent{Inner: inner}
	})

	cmd := nested.Emit(5)
	assert.Equal(t, outerEvent{Inner: 5}, cmd.Event)
}

func TestMapEventNestsTwoLevelsDeep(t *testing.T) {
	type middleEvent struct{ Inner int }
	root := capability.NewContext[outerEvent]()
	mid := capability.MapEvent[middleEvent](root, func(m middleEvent) outerEvent {
		return outerEvent{Inner: m.Inner}
	})
	leaf := capability.MapEvent[int](mid, func(i int) middleEvent {
		return middleEvent{Inner: i * 10}
	})

	cmd := leaf.Emit(3)
	assert.Equal(t, outerEvent{Inner: 30}, cmd.Event)
}
