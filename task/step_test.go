// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepExprReturnsImmediatelyOnACompletedExpr(t *testing.T) {
	v, susp := StepExpr(ExprReturn(7))
	assert.Nil(t, susp)
	assert.Equal(t, 7, v)
}

func TestStepExprSuspendsOnAnEffectFrame(t *testing.T) {
	e := ExprPerform[testOp, string](testOp{tag: "ask"})
	_, susp := StepExpr(e)
	require.NotNil(t, susp)
	assert.Equal(t, testOp{tag: "ask"}, susp.Op())
}

func TestResumeAppliesChainedMapFramesAfterTheEffect(t *testing.T) {
	e := ExprMap(ExprPerform[testOp, string](testOp{}), func(v string) int { return len(v) })
	e = ExprMap(e, func(n int) int { return n + 1 })
	_, susp := StepExpr(e)
	require.NotNil(t, susp)

	v, next := susp.Resume("abc")
	assert.Nil(t, next)
	assert.Equal(t, 4, v)
}

func TestResumingASuspensionTwicePanics(t *testing.T) {
	_, susp := StepExpr(ExprPerform[testOp, string](testOp{}))
	require.NotNil(t, susp)
	susp.Resume("x")
	assert.Panics(t, func() { susp.Resume("y") })
}

func TestTryResumeReportsFalseOnceAlreadyUsed(t *testing.T) {
	_, susp := StepExpr(ExprPerform[testOp, string](testOp{}))
	require.NotNil(t, susp)
	_, _, ok := susp.TryResume("x")
	assert.True(t, ok)
	_, _, ok = susp.TryResume("y")
	assert.False(t, ok)
}

func TestDiscardPreventsAnySubsequentResume(t *testing.T) {
	_, susp := StepExpr(ExprPerform[testOp, string](testOp{}))
	require.NotNil(t, susp)
	susp.Discard()
	assert.Panics(t, func() { susp.Resume("x") })
}
