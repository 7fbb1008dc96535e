// Package worker provides the background task submission seam used by the
// asynchronous quoting path.
package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Runner submits a named task for execution. The asynchronous pipeline is
// intentionally fire-and-forget: callers hold no handle to await or cancel a
// submitted task.
type Runner interface {
	Go(name string, fn func(ctx context.Context))
}

// Supervised runs each task on its own goroutine behind an error boundary:
// panics are caught and logged, never crash the process, and the task is not
// retried.
type Supervised struct {
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewSupervised creates a runner.
func NewSupervised(logger *zap.Logger) *Supervised {
	return &Supervised{logger: logger}
}

func (r *Supervised) Go(name string, fn func(ctx context.Context)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("Background task panicked",
					zap.String("task_name", name),
					zap.Any("panic", rec))
			}
		}()

		fn(context.Background())
	}()
}

// Wait blocks until every submitted task has finished. Used at shutdown.
func (r *Supervised) Wait() {
	r.wg.Wait()
}

// Inline runs the task on the calling goroutine. It exists as the
// deterministic substitute for Supervised in tests.
type Inline struct{}

func (Inline) Go(_ string, fn func(ctx context.Context)) {
	fn(context.Background())
}
