package eventbus

import "context"

// Topic is the type for event topics.
type Topic string

// Event represents a message passed on the bus.
type Event struct {
	Topic   Topic
	Payload any
}

// Handler processes an event. Returned errors are logged by the bus.
type Handler func(ctx context.Context, event Event) error

// Publisher is the narrow view of the bus that services depend on.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}
