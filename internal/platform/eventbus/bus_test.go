package eventbus_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philly/arch-gallery/backend/internal/platform/eventbus"
)

type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, msg string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

func (m *mockLogger) getErrors() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.errors...)
}

func drain(t *testing.T, bus *eventbus.Bus) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, bus.Drain(ctx))
}

func TestBusSubscribeAndPublish(t *testing.T) {
	bus := eventbus.NewBus(&mockLogger{})
	topic := eventbus.Topic("album.recycled")

	var mu sync.Mutex
	var calls []string
	record := func(name string) eventbus.Handler {
		return func(ctx context.Context, event eventbus.Event) error {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, "payload", event.Payload)
			calls = append(calls, name)
			return nil
		}
	}
	bus.Subscribe(topic, record("first"))
	bus.Subscribe(topic, record("second"))

	bus.Publish(context.Background(), eventbus.Event{Topic: topic, Payload: "payload"})
	drain(t, bus)

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"first", "second"}, calls)
}

func TestBusPublishWithNoSubscribers(t *testing.T) {
	log := &mockLogger{}
	bus := eventbus.NewBus(log)

	bus.Publish(context.Background(), eventbus.Event{Topic: "nobody.listens"})
	drain(t, bus)

	assert.Empty(t, log.getErrors())
}

func TestBusLogsHandlerErrors(t *testing.T) {
	log := &mockLogger{}
	bus := eventbus.NewBus(log)
	bus.Subscribe("image.restored", func(ctx context.Context, event eventbus.Event) error {
		return errors.New("recount failed")
	})

	bus.Publish(context.Background(), eventbus.Event{Topic: "image.restored"})
	drain(t, bus)

	assert.Equal(t, []string{"event handler failed"}, log.getErrors())
}

func TestBusHandlersOutliveCancelledPublisher(t *testing.T) {
	bus := eventbus.NewBus(&mockLogger{})
	ctx, cancel := context.WithCancel(context.Background())

	seen := make(chan error, 1)
	bus.Subscribe("image.recycled", func(hctx context.Context, event eventbus.Event) error {
		time.Sleep(10 * time.Millisecond)
		seen <- hctx.Err()
		return nil
	})

	bus.Publish(ctx, eventbus.Event{Topic: "image.recycled"})
	cancel()
	drain(t, bus)

	assert.NoError(t, <-seen)
}

func TestBusDrainHonoursDeadline(t *testing.T) {
	bus := eventbus.NewBus(&mockLogger{})
	release := make(chan struct{})
	bus.Subscribe("slow", func(ctx context.Context, event eventbus.Event) error {
		<-release
		return nil
	})
	bus.Publish(context.Background(), eventbus.Event{Topic: "slow"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, bus.Drain(ctx), context.DeadlineExceeded)

	close(release)
	drain(t, bus)
}

func TestBusConcurrentPublish(t *testing.T) {
	bus := eventbus.NewBus(&mockLogger{})

	var mu sync.Mutex
	count := 0
	bus.Subscribe("concurrent", func(ctx context.Context, event eventbus.Event) error {
		mu.Lock()
		defer mu.Unlock()
		count++
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			bus.Publish(context.Background(), eventbus.Event{Topic: "concurrent", Payload: id})
		}(i)
	}
	wg.Wait()
	drain(t, bus)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 10, count)
}
