// Package dispatcher implements the in-process synchronous event publisher.
// Fan-out is failure-isolated: a listener that errors or panics is logged and
// the remaining listeners still run. Publish never fails its caller.
package dispatcher

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/seguro/quotes-service/internal/domain/event"
)

// Listener handles a single domain event.
type Listener func(ctx context.Context, evt event.Event) error

// Publisher fans domain events out to registered listeners.
type Publisher interface {
	// Subscribe registers a listener with an auto-generated name.
	Subscribe(l Listener)

	// SubscribeNamed registers a listener under a name for log output.
	SubscribeNamed(name string, l Listener)

	// Publish delivers the event to every listener in subscription order on
	// the calling goroutine. Listener failures are logged, never propagated.
	Publish(ctx context.Context, evt event.Event)
}

type listenerInfo struct {
	name     string
	listener Listener
}

type eventPublisher struct {
	mu        sync.RWMutex
	listeners []listenerInfo
	logger    *zap.Logger
}

// NewPublisher creates a publisher with an empty listener list.
func NewPublisher(logger *zap.Logger) Publisher {
	return &eventPublisher{logger: logger}
}

func (p *eventPublisher) Subscribe(l Listener) {
	p.mu.Lock()
	name := fmt.Sprintf("listener-%d", len(p.listeners))
	p.mu.Unlock()
	p.SubscribeNamed(name, l)
}

func (p *eventPublisher) SubscribeNamed(name string, l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.listeners = append(p.listeners, listenerInfo{name: name, listener: l})
	p.logger.Info("Event listener registered",
		zap.String("listener_name", name),
		zap.Int("total_listeners", len(p.listeners)))
}

func (p *eventPublisher) Publish(ctx context.Context, evt event.Event) {
	p.mu.RLock()
	listeners := make([]listenerInfo, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.RUnlock()

	p.logger.Debug("Publishing event",
		zap.String("event_type", evt.EventType().String()),
		zap.String("event_id", evt.EventID().String()),
		zap.Int("listener_count", len(listeners)))

	for _, info := range listeners {
		if err := p.safeExecute(ctx, evt, info); err != nil {
			p.logger.Error("Event listener failed",
				zap.String("event_type", evt.EventType().String()),
				zap.String("event_id", evt.EventID().String()),
				zap.String("listener_name", info.name),
				zap.Error(err))
		}
	}
}

// safeExecute runs a listener with panic recovery.
func (p *eventPublisher) safeExecute(ctx context.Context, evt event.Event, info listenerInfo) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener panic: %v", r)
		}
	}()

	return info.listener(ctx, evt)
}
