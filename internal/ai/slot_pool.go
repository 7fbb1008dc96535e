package ai

import "context"

// SlotPool is a resource with finite capacity. Acquire blocks until a slot is
// free or the context ends; the returned release must be called exactly once.
type SlotPool interface {
	Acquire(ctx context.Context) (release func(), ok bool)
}

type chanPool struct {
	sem chan struct{}
}

// NewSlotPool creates a channel-backed pool with the given capacity. The risk
// gateway is constructed with capacity 1 so external model calls are
// serialized process-wide; tests may substitute a wider or no-op pool.
func NewSlotPool(max int) SlotPool {
	return &chanPool{sem: make(chan struct{}, max)}
}

func (p *chanPool) Acquire(ctx context.Context) (func(), bool) {
	select {
	case p.sem <- struct{}{}:
		return func() { <-p.sem }, true
	case <-ctx.Done():
		return nil, false
	}
}
