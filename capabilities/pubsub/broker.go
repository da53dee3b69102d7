// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pubsub

import (
	"fmt"

	"code.hybscloud.com/kernel/task"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Broker is the shell-side implementation of the pubsub capability,
// backed by a NATS connection. It answers Publish/Subscribe operations and
// forwards every message on an open subscription to the kernel's Resolve
// as a Stream response, keyed by the handle the kernel assigned when the
// subscription was opened.
type Broker struct {
	nc   *nats.Conn
	subs map[uuid.UUID]*nats.Subscription
}

// Dial connects to a NATS server at url (e.g. nats.DefaultURL).
func Dial(url string) (*Broker, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("pubsub: connect: %w", err)
	}
	return &Broker{nc: nc, subs: make(map[uuid.UUID]*nats.Subscription)}, nil
}

// Close unsubscribes all open subscriptions and closes the connection.
func (b *Broker) Close() {
	for _, sub := range b.subs {
		sub.Unsubscribe()
	}
	b.nc.Close()
}

// Execute answers a Publish effect immediately. Subscribe effects are
// handled by Open, since opening a subscription needs the Request handle
// the kernel assigned — call Open from the loop that services effects,
// passing the Resolve callback it should invoke on every message.
func (b *Broker) Execute(op any) any {
	p, ok := op.(Publish)
	if !ok {
		panic(fmt.Sprintf("pubsub: Execute only answers Publish, got %T", op))
	}
	if err := b.nc.Publish(p.Subject, p.Payload); err != nil {
		return struct{}{}
	}
	return struct{}{}
}

// Open starts forwarding messages on subject to onMessage, called with the
// handle the kernel assigned to this subscription and the decoded
// Message. A shell loop typically passes a closure that calls
// kernel.Core.Resolve(handle, msg).
func (b *Broker) Open(handle uuid.UUID, op Subscribe, onMessage func(uuid.UUID, Message)) error {
	sub, err := b.nc.Subscribe(op.Subject, func(m *nats.Msg) {
		onMessage(handle, Message{Subject: m.Subject, Payload: m.Data})
	})
	if err != nil {
		return fmt.Errorf("pubsub: subscribe %s: %w", op.Subject, err)
	}
	b.subs[handle] = sub
	return nil
}

// CloseSubscription stops forwarding messages for handle and posts a
// task.StreamClosed response through onClose, matching the Stream
// lifecycle's explicit close signal.
func (b *Broker) CloseSubscription(handle uuid.UUID, onClose func(uuid.UUID, any)) {
	if sub, ok := b.subs[handle]; ok {
		sub.Unsubscribe()
		delete(b.subs, handle)
	}
	onClose(handle, task.StreamClosed{})
}
