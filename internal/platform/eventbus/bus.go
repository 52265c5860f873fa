package eventbus

import (
	"context"
	"sync"

	"github.com/philly/arch-gallery/backend/internal/platform/logger"
)

// Bus is an in-process fire-and-forget dispatcher. Handlers run in their own
// goroutines on a context detached from the publisher's cancellation, so a
// finished HTTP request does not abort follow-up work such as recounts.
type Bus struct {
	subscriptions map[Topic][]Handler
	mu            sync.RWMutex
	inflight      sync.WaitGroup
	logger        logger.Logger
}

func NewBus(logger logger.Logger) *Bus {
	return &Bus{
		subscriptions: make(map[Topic][]Handler),
		logger:        logger,
	}
}

// Subscribe adds a handler for a specific topic.
func (b *Bus) Subscribe(topic Topic, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions[topic] = append(b.subscriptions[topic], handler)
}

// Publish dispatches event to every subscriber of its topic and returns
// without waiting for them.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.subscriptions[event.Topic]...)
	b.mu.RUnlock()

	detached := context.WithoutCancel(ctx)
	for _, handler := range handlers {
		b.inflight.Add(1)
		go func(h Handler) {
			defer b.inflight.Done()
			if err := h(detached, event); err != nil {
				b.logger.Error(detached, "event handler failed", "topic", event.Topic, "error", err)
			}
		}(handler)
	}
}

// Drain waits for in-flight handlers to finish or ctx to expire.
func (b *Bus) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ Publisher = (*Bus)(nil)
