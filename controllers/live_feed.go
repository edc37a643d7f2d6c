package controller

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

const (
	liveWriteTimeout = 5 * time.Second
	liveEventBuffer  = 16
)

// LiveEvent is pushed to every connected admin dashboard when a new
// submission arrives.
type LiveEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// LiveFeed broadcasts new submissions to admin dashboards over
// websocket so the list refreshes without polling. Broadcast only ever
// touches per-subscriber buffers; the socket writes happen on each
// connection's own goroutine, so a stalled dashboard cannot slow down
// form submissions.
type LiveFeed struct {
	mu          sync.Mutex
	subscribers map[*websocket.Conn]chan LiveEvent
	logger      *log.Logger
}

func NewLiveFeed(logger *log.Logger) *LiveFeed {
	return &LiveFeed{
		subscribers: make(map[*websocket.Conn]chan LiveEvent),
		logger:      logger,
	}
}

// Handle keeps the connection subscribed until the client goes away.
func (lf *LiveFeed) Handle(c *websocket.Conn) {
	events := make(chan LiveEvent, liveEventBuffer)

	lf.mu.Lock()
	lf.subscribers[c] = events
	lf.mu.Unlock()

	defer func() {
		lf.mu.Lock()
		delete(lf.subscribers, c)
		lf.mu.Unlock()
		// Broadcast and delete both hold the mutex, so no send can be
		// in flight once the entry is gone.
		close(events)
		c.Close()
	}()

	go func() {
		for event := range events {
			c.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
			if err := c.WriteJSON(event); err != nil {
				lf.logger.Printf("Live feed write failed: %v", err)
				return
			}
		}
	}()

	// Drain client messages; the read error is our disconnect signal.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast queues the event for every subscriber without blocking.
// A subscriber whose buffer is full misses the event.
func (lf *LiveFeed) Broadcast(event LiveEvent) {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	for _, events := range lf.subscribers {
		select {
		case events <- event:
		default:
			lf.logger.Println("Live feed subscriber too slow, dropping event")
		}
	}
}
