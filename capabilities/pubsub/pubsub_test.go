// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pubsub_test

import (
	"testing"

	"code.hybscloud.com/kernel/capabilities/pubsub"
	"code.hybscloud.com/kernel/task"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishToSuspendsOnOneShotPublish(t *testing.T) {
	_, susp := task.StepExpr(pubsub.PublishTo("orders.created", []byte("payload")))
	require.NotNil(t, susp)

	oneShot, ok := susp.Op().(task.OneShotOp)
	require.True(t, ok)
	publish, ok := oneShot.Operation.(pubsub.Publish)
	require.True(t, ok)
	assert.Equal(t, "orders.created", publish.Subject)
	assert.Equal(t, []byte("payload"), publish.Payload)
}

func TestSubscribeToOpensStreamSubscription(t *testing.T) {
	_, susp := task.StepExpr(pubsub.SubscribeTo("orders.created"))
	require.NotNil(t, susp)

	subscribe, ok := susp.Op().(task.SubscribeOp)
	require.True(t, ok)
	assert.Equal(t, pubsub.Subscribe{Subject: "orders.created"}, subscribe.Operation)
}

func TestNextAwaitsStreamItemByRequestID(t *testing.T) {
	handle := uuid.New()

	_, openSusp := task.StepExpr(pubsub.SubscribeTo("orders.created"))
	require.NotNil(t, openSusp)
	sub, rest := openSusp.Resume(handle)
	require.Nil(t, rest)

	_, susp := task.StepExpr(pubsub.Next(sub))
	require.NotNil(t, susp)

	next, ok := susp.Op().(task.StreamNextOp)
	require.True(t, ok)
	assert.Equal(t, handle, next.RequestID)
}
