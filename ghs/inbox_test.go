package ghs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInbox_FIFO verifies arrival-order delivery.
func TestInbox_FIFO(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	in := newInbox(done)

	in.deliver(envelope{msg: Message{Kind: KindAccept}, from: 1})
	in.deliver(envelope{msg: Message{Kind: KindReject}, from: 2})
	in.deliver(envelope{msg: Message{Kind: KindChangeRoot}, from: 3})

	for _, want := range []int{1, 2, 3} {
		env, ok := in.next()
		require.True(t, ok)
		assert.Equal(t, want, env.from)
	}
}

// TestInbox_PostponeBehindNewer verifies the liveness rule: a flushed
// message re-enters BEHIND traffic that arrived after it was postponed.
func TestInbox_PostponeBehindNewer(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	in := newInbox(done)

	// A message is postponed, then a fresh one arrives.
	in.postpone(envelope{msg: Message{Kind: KindConnect}, from: 7})
	in.deliver(envelope{msg: Message{Kind: KindInitiate}, from: 8})

	// The fresh message is handled first; the stash stays parked until flush.
	env, ok := in.next()
	require.True(t, ok)
	assert.Equal(t, 8, env.from)
	assert.Equal(t, 1, in.pending())

	// After flush the postponed message is retried.
	in.flush()
	env, ok = in.next()
	require.True(t, ok)
	assert.Equal(t, 7, env.from)
	assert.Equal(t, KindConnect, env.msg.Kind)
}

// TestInbox_FlushPreservesStashOrder verifies stash order survives the move.
func TestInbox_FlushPreservesStashOrder(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	in := newInbox(done)

	in.postpone(envelope{from: 1})
	in.postpone(envelope{from: 2})
	in.deliver(envelope{from: 3})
	in.flush()

	// Main queue now: 3 (delivered), then 1, 2 (flushed in stash order).
	for _, want := range []int{3, 1, 2} {
		env, ok := in.next()
		require.True(t, ok)
		assert.Equal(t, want, env.from)
	}
}

// TestInbox_NextBlocksUntilDelivery verifies the consumer sleeps on an empty
// queue and wakes on deliver.
func TestInbox_NextBlocksUntilDelivery(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	in := newInbox(done)

	got := make(chan envelope, 1)
	go func() {
		env, ok := in.next()
		if ok {
			got <- env
		}
	}()

	select {
	case <-got:
		t.Fatal("next returned on an empty inbox")
	case <-time.After(20 * time.Millisecond):
	}

	in.deliver(envelope{from: 5})
	select {
	case env := <-got:
		assert.Equal(t, 5, env.from)
	case <-time.After(time.Second):
		t.Fatal("next did not wake on delivery")
	}
}

// TestInbox_DoneUnblocksNext verifies teardown releases a blocked consumer.
func TestInbox_DoneUnblocksNext(t *testing.T) {
	done := make(chan struct{})
	in := newInbox(done)

	released := make(chan bool, 1)
	go func() {
		_, ok := in.next()
		released <- ok
	}()

	close(done)
	select {
	case ok := <-released:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("next did not observe teardown")
	}
}
