// SPDX-License-Identifier: MIT
// Package: distmst/ghs
//
// inbox.go — per-node message queue with postponement support.
//
// Two FIFO queues back each inbox (ef-ds/deque, unbounded):
//   • main  — messages awaiting dispatch, in arrival order.
//   • stash — postponed messages, parked until the node's state may have
//     changed.
//
// Postponement rule (the algorithm's liveness hinges on it):
//   • postpone(m) parks m in the stash, NEVER at the head of main.
//   • flush() moves the stash to the TAIL of main. The node calls it after
//     handling any message it did not postpone; only such messages can have
//     changed the state that blocked the stashed ones. A node whose pending
//     traffic is all postponed therefore blocks for a fresh delivery instead
//     of spinning.
//
// Concurrency: deliver is called by neighbor goroutines, everything else by
// the owning node only. A single mutex guards both queues; next blocks on a
// 1-buffered notifier channel (no missed wakeups: deliver leaves a token).

package ghs

import (
	"sync"

	"github.com/ef-ds/deque"
)

// envelope pairs a message with the neighbor edge it arrived on.
type envelope struct {
	msg  Message
	from int
}

// inbox is the FIFO mailbox owned by one node.
type inbox struct {
	mu     sync.Mutex
	main   deque.Deque
	stash  deque.Deque
	notify chan struct{}
	done   chan struct{}
}

func newInbox(done chan struct{}) *inbox {
	return &inbox{
		notify: make(chan struct{}, 1),
		done:   done,
	}
}

// deliver appends env to the tail of the main queue and wakes the consumer.
// Non-blocking; called from any goroutine.
func (in *inbox) deliver(env envelope) {
	in.mu.Lock()
	in.main.PushBack(env)
	in.mu.Unlock()

	select {
	case in.notify <- struct{}{}:
	default: // a wakeup token is already pending
	}
}

// next pops the head of the main queue, blocking while it is empty.
// Returns ok=false when the run is torn down.
func (in *inbox) next() (envelope, bool) {
	for {
		in.mu.Lock()
		if v, ok := in.main.PopFront(); ok {
			in.mu.Unlock()

			return v.(envelope), true
		}
		in.mu.Unlock()

		select {
		case <-in.notify:
		case <-in.done:
			return envelope{}, false
		}
	}
}

// postpone parks env in the stash.
func (in *inbox) postpone(env envelope) {
	in.mu.Lock()
	in.stash.PushBack(env)
	in.mu.Unlock()
}

// flush moves every stashed message to the tail of the main queue,
// preserving stash order.
func (in *inbox) flush() {
	in.mu.Lock()
	for {
		v, ok := in.stash.PopFront()
		if !ok {
			break
		}
		in.main.PushBack(v)
	}
	in.mu.Unlock()
}

// pending reports the number of queued messages (main + stash).
// Used only in violation dumps and tests.
func (in *inbox) pending() int {
	in.mu.Lock()
	defer in.mu.Unlock()

	return in.main.Len() + in.stash.Len()
}
