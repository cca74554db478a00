package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsTaskAndWaits(t *testing.T) {
	p := New()
	defer p.Shutdown()

	var ran int32
	h := p.StartTask(func() {
		atomic.StoreInt32(&ran, 1)
	})
	p.Wait(h)

	if atomic.LoadInt32(&ran) != 1 {
		t.Fatal("task did not run before Wait returned")
	}
}

func TestBarrierReleasesAfterAllDone(t *testing.T) {
	b := NewBarrier(3)
	for i := 0; i < 3; i++ {
		go b.Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := b.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}
