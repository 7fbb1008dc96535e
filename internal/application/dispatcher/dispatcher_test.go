package dispatcher

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seguro/quotes-service/internal/domain/entity"
	"github.com/seguro/quotes-service/internal/domain/event"
)

func approvedEvent(t *testing.T) event.QuoteApproved {
	t.Helper()
	price := 150.0
	q := entity.Quote{
		ID:     uuid.New(),
		Status: entity.QuoteStatusApproved,
		Price:  &price,
	}
	evt, ok := event.QuoteApprovedFrom(q)
	if !ok {
		t.Fatal("expected an approval event from an approved quote")
	}
	return evt
}

func TestPublish_DeliversInSubscriptionOrder(t *testing.T) {
	p := NewPublisher(zap.NewNop())

	var order []string
	p.SubscribeNamed("first", func(ctx context.Context, evt event.Event) error {
		order = append(order, "first")
		return nil
	})
	p.SubscribeNamed("second", func(ctx context.Context, evt event.Event) error {
		order = append(order, "second")
		return nil
	})

	p.Publish(context.Background(), approvedEvent(t))

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("delivery order = %v, want [first second]", order)
	}
}

func TestPublish_FailingListenerDoesNotStopOthers(t *testing.T) {
	p := NewPublisher(zap.NewNop())

	var reached bool
	p.SubscribeNamed("broken", func(ctx context.Context, evt event.Event) error {
		return errors.New("boom")
	})
	p.SubscribeNamed("healthy", func(ctx context.Context, evt event.Event) error {
		reached = true
		return nil
	})

	p.Publish(context.Background(), approvedEvent(t))

	if !reached {
		t.Error("listener after a failing one was not invoked")
	}
}

func TestPublish_PanickingListenerIsContained(t *testing.T) {
	p := NewPublisher(zap.NewNop())

	var reached bool
	p.SubscribeNamed("panicky", func(ctx context.Context, evt event.Event) error {
		panic("listener exploded")
	})
	p.SubscribeNamed("healthy", func(ctx context.Context, evt event.Event) error {
		reached = true
		return nil
	})

	// Must not propagate the panic to the publisher's caller.
	p.Publish(context.Background(), approvedEvent(t))

	if !reached {
		t.Error("listener after a panicking one was not invoked")
	}
}

func TestPublish_NoListenersIsNoop(t *testing.T) {
	p := NewPublisher(zap.NewNop())
	p.Publish(context.Background(), approvedEvent(t))
}
