// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package task

import "github.com/google/uuid"

// Lifecycle distinguishes a Request answered exactly once from one the
// shell may post to repeatedly.
type Lifecycle int

const (
	// OneShot requests resolve exactly once; a second resolve is reported
	// as not-outstanding rather than treated as an error.
	OneShot Lifecycle = iota
	// Stream requests may be posted to many times until the shell (or the
	// owning task's cancellation) closes them.
	Stream
)

func (l Lifecycle) String() string {
	if l == Stream {
		return "stream"
	}
	return "one-shot"
}

type requestState int

const (
	statePending requestState = iota
	stateResolved
	stateCancelled
	stateClosed
)

// streamQueueCap bounds how many unconsumed stream items a Request buffers
// before applying drop-oldest back-pressure.
const streamQueueCap = 64

// Request correlates a host-facing Effect to the Task awaiting its
// response(s). Operation is the capability payload the task performed,
// already unwrapped from the internal lifecycle envelope.
type Request struct {
	ID        uuid.UUID
	Operation any
	Lifecycle Lifecycle

	state    requestState
	owner    *Task
	buffered []any
	// Dropped counts stream items discarded under back-pressure because
	// buffered already held streamQueueCap unconsumed items.
	Dropped int
}

// StreamClosed is posted as a Stream response to signal the sequence has no
// further items. The owning task observes it exactly like any other
// response; application code distinguishes it with a type switch.
type StreamClosed struct{}

func (r *Request) pushBuffered(v any) {
	if len(r.buffered) >= streamQueueCap {
		r.buffered = r.buffered[1:]
		r.Dropped++
	}
	r.buffered = append(r.buffered, v)
}

func (r *Request) popBuffered() (any, bool) {
	if len(r.buffered) == 0 {
		return nil, false
	}
	v := r.buffered[0]
	r.buffered = r.buffered[1:]
	return v, true
}
