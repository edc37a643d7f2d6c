package controller

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLiveFeedBroadcastDoesNotBlockOnSlowSubscriber(t *testing.T) {
	lf := NewLiveFeed(log.New(io.Discard, "", 0))

	// A subscriber that never drains its buffer.
	events := make(chan LiveEvent, 1)
	lf.mu.Lock()
	lf.subscribers[nil] = events
	lf.mu.Unlock()

	lf.Broadcast(LiveEvent{Type: "contact_submission"})

	// The buffer is full now; further broadcasts must drop the event
	// rather than wait for the subscriber.
	done := make(chan struct{})
	go func() {
		lf.Broadcast(LiveEvent{Type: "demo_request"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a slow subscriber")
	}
	assert.Len(t, events, 1)
	assert.Equal(t, "contact_submission", (<-events).Type)
}

func TestLiveFeedBroadcastWithoutSubscribers(t *testing.T) {
	lf := NewLiveFeed(log.New(io.Discard, "", 0))
	lf.Broadcast(LiveEvent{Type: "contact_submission"})
}
