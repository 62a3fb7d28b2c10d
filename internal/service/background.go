package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Background runs fire-and-forget work (notifications, chat logs) off the
// request path. Errors are logged, never returned.
type Background struct {
	wg     sync.WaitGroup
	logger *zap.Logger
}

// NewBackground creates a task runner.
func NewBackground(logger *zap.Logger) *Background {
	return &Background{logger: logger}
}

// Go runs fn in a goroutine with its own timeout.
func (b *Background) Go(name string, timeout time.Duration, fn func(ctx context.Context) error) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				b.logger.Error("Background task panicked", zap.String("task", name), zap.Any("panic", rec))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			b.logger.Warn("Background task failed", zap.String("task", name), zap.Error(err))
		}
	}()
}

// Wait blocks until all started tasks finish.
func (b *Background) Wait() {
	b.wg.Wait()
}
