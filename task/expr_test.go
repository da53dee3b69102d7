// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOp struct{ tag string }

func (testOp) OpResult() string { panic("test: testOp is phantom") }

func TestExprReturnIsImmediatelyComplete(t *testing.T) {
	e := ExprReturn(42)
	_, ok := e.Frame.(ReturnFrame)
	require.True(t, ok)
	assert.Equal(t, 42, e.Value)
}

func TestExprPerformSuspendsOnAnEffectFrame(t *testing.T) {
	e := ExprPerform[testOp, string](testOp{tag: "ping"})
	ef, ok := e.Frame.(*EffectFrame)
	require.True(t, ok)
	assert.Equal(t, testOp{tag: "ping"}, ef.Operation)
}

func TestExprMapOnCompletedExprAppliesImmediately(t *testing.T) {
	e := ExprMap(ExprReturn(10), func(v int) int { return v * 2 })
	_, ok := e.Frame.(ReturnFrame)
	require.True(t, ok)
	assert.Equal(t, 20, e.Value)
}

func TestExprMapOnPendingExprChainsAFrame(t *testing.T) {
	e := ExprMap(ExprPerform[testOp, string](testOp{}), func(v string) int { return len(v) })
	_, ok := e.Frame.(*chainedFrame)
	assert.True(t, ok, "ExprMap should chain a MapFrame after the pending EffectFrame")
}

func TestChainFramesReturnsTheOtherOperandForReturnFrame(t *testing.T) {
	mf := &MapFrame{F: func(a any) any { return a }, Next: ReturnFrame{}}
	assert.Same(t, Frame(mf), ChainFrames(ReturnFrame{}, mf))
	assert.Same(t, Frame(mf), ChainFrames(mf, ReturnFrame{}))
}

func TestChainFramesLinksTwoNonTrivialFrames(t *testing.T) {
	first := &MapFrame{F: func(a any) any { return a }, Next: ReturnFrame{}}
	second := &MapFrame{F: func(a any) any { return a }, Next: ReturnFrame{}}
	chained, ok := ChainFrames(first, second).(*chainedFrame)
	require.True(t, ok)
	assert.Same(t, Frame(first), chained.first)
	assert.Same(t, Frame(second), chained.rest)
}
