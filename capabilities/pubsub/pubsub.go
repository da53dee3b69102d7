// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pubsub is the app-facing publish/subscribe capability: publish
// is a notify the shell acknowledges with an empty response, subscribe opens a Stream request that
// delivers one message per post. Package pubsub also provides Broker, the
// shell-side implementation backed by NATS.
package pubsub

import (
	"code.hybscloud.com/kernel/capability"
	"code.hybscloud.com/kernel/task"
)

// Publish sends payload to subject. The shell acknowledges delivery but no
// further response is awaited.
type Publish struct {
	Subject string
	Payload []byte
}

func (Publish) OpResult() struct{} { panic("pubsub: Publish is phantom") }

// Subscribe opens a subscription to subject; each matching message becomes
// one item of the resulting Stream.
type Subscribe struct{ Subject string }

func (Subscribe) OpResult() any { panic("pubsub: Subscribe is phantom") }

// Message is one delivered pubsub message.
type Message struct {
	Subject string
	Payload []byte
}

// PublishTo notifies the shell to publish payload on subject.
func PublishTo(subject string, payload []byte) task.Expr[struct{}] {
	return capability.NotifyShell[Publish, struct{}](Publish{Subject: subject, Payload: payload})
}

// SubscribeTo opens a subscription to subject, returning the handle used
// with Next to pull messages one at a time.
func SubscribeTo(subject string) task.Expr[capability.Subscription] {
	return capability.StreamFromShell[Subscribe, any](Subscribe{Subject: subject})
}

// Next awaits the next message of sub, or ok=false once the subscription
// has been closed.
func Next(sub capability.Subscription) task.Expr[capability.Either[Message]] {
	return capability.Next[Message](sub)
}
