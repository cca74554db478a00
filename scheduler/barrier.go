package scheduler

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Barrier is the semaphore-backed count-down join primitive spec.md §5
// requires tasks use to synchronize, since tasks otherwise communicate
// only through explicit shared state.
type Barrier struct {
	sem   *semaphore.Weighted
	count int
}

// NewBarrier creates a barrier that releases its waiter once count
// participants have each called Done.
func NewBarrier(count int) *Barrier {
	sem := semaphore.NewWeighted(int64(count))
	// Acquire the full weight up front; each Done releases one unit
	// back, and Wait blocks until it can acquire the full weight again.
	_ = sem.Acquire(context.Background(), int64(count))
	return &Barrier{sem: sem, count: count}
}

// Done signals that one participant has finished its share of work.
func (b *Barrier) Done() {
	b.sem.Release(1)
}

// Wait blocks until every participant has called Done.
func (b *Barrier) Wait(ctx context.Context) error {
	if err := b.sem.Acquire(ctx, int64(b.count)); err != nil {
		return err
	}
	b.sem.Release(int64(b.count))
	return nil
}
