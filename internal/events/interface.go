package events

// EventPublisher defines the interface for sending and receiving events.
// Services depend on this rather than on the concrete bus.
type EventPublisher interface {
	// SendEvent stamps the event and delivers it to every subscriber
	SendEvent(event Event) error

	// Subscribe registers a handler and returns a func that removes it
	Subscribe(handler Handler) (unsubscribe func())

	// Close stops delivery; later sends fail with ErrBusClosed
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
