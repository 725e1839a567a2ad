package events

import (
	"log/slog"
	"sync"
	"time"
)

type subscription struct {
	id      int
	handler Handler
}

// Bus is an in-process publisher. Delivery is synchronous and in publish
// order: SendEvent returns only after every subscriber has run.
type Bus struct {
	mu           sync.Mutex
	subs         []subscription
	nextSub      int
	lastSequence int64
	closed       bool
	now          func() time.Time
}

// NewBus creates an open bus with no subscribers
func NewBus() *Bus {
	return &Bus{now: time.Now}
}

// SendEvent stamps the event with a timestamp and the next sequence id, then
// hands it to each subscriber in subscription order.
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBusClosed
	}
	b.lastSequence++
	event.SequenceID = b.lastSequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	slog.Debug("dispatching event",
		"event_type", event.Type,
		"sequence_id", event.SequenceID,
		"subscribers", len(subs))

	// Handlers run without the lock held so they may publish or unsubscribe
	for _, s := range subs {
		s.handler(event)
	}
	return nil
}

// Subscribe registers handler. The returned func removes it and is safe to
// call more than once.
func (b *Bus) Subscribe(handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSub++
	id := b.nextSub
	b.subs = append(b.subs, subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Close drops all subscribers. Closing twice is a no-op.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.subs = nil
	return nil
}

// LastSequence returns the sequence id of the most recent event
func (b *Bus) LastSequence() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSequence
}
