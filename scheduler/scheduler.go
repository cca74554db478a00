// Package scheduler is the engine's fixed OS-thread pool of spec.md §5:
// half the logical CPUs, each thread idling on a condition variable
// between tasks. Built on golang.org/x/sync/errgroup the way the
// teacher's module already depends on it (vala/go.mod).
package scheduler

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// TaskHandle identifies one dispatched task: the thread it landed on and
// that thread's generation at dispatch time. Waiting on a handle
// compares the stored generation against the thread's current one, so a
// handle from a prior task never matches a thread that has since moved
// on (spec.md §5).
type TaskHandle struct {
	ThreadIndex int
	Generation  uint64
}

type thread struct {
	mu         sync.Mutex
	cond       *sync.Cond
	generation uint64
	busy       bool
	fn         func()
	done       chan struct{}
}

// Pool is the fixed thread pool. Threads never suspend inside user work;
// they suspend only on their condition variable between tasks.
type Pool struct {
	threads []*thread
	group   *errgroup.Group
	ctx     context.Context
	cancel  context.CancelFunc
}

// New starts a pool sized to half the logical CPUs (minimum 1).
func New() *Pool {
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	p := &Pool{threads: make([]*thread, n), group: g, ctx: ctx, cancel: cancel}
	for i := range p.threads {
		t := &thread{done: make(chan struct{})}
		t.cond = sync.NewCond(&t.mu)
		p.threads[i] = t
		idx := i
		g.Go(func() error {
			p.run(idx)
			return nil
		})
	}
	return p
}

func (p *Pool) stopped() bool {
	select {
	case <-p.ctx.Done():
		return true
	default:
		return false
	}
}

func (p *Pool) run(idx int) {
	t := p.threads[idx]
	t.mu.Lock()
	defer t.mu.Unlock()
	for {
		for !t.busy && !p.stopped() {
			t.cond.Wait()
		}
		if p.stopped() && !t.busy {
			return
		}
		fn := t.fn
		t.mu.Unlock()
		fn()
		t.mu.Lock()
		t.fn = nil
		t.busy = false
		t.generation++
		close(t.done)
		t.done = make(chan struct{})
	}
}

// StartTask picks the first idle thread, assigns fn to its slot, and
// signals its condition variable. It returns the handle the caller uses
// to wait for completion.
func (p *Pool) StartTask(fn func()) TaskHandle {
	for {
		for i, t := range p.threads {
			t.mu.Lock()
			if !t.busy {
				t.fn = fn
				t.busy = true
				gen := t.generation
				t.mu.Unlock()
				t.cond.Signal()
				return TaskHandle{ThreadIndex: i, Generation: gen}
			}
			t.mu.Unlock()
		}
		runtime.Gosched()
	}
}

// Wait blocks until the task identified by h has completed.
func (p *Pool) Wait(h TaskHandle) {
	t := p.threads[h.ThreadIndex]
	for {
		t.mu.Lock()
		if t.generation > h.Generation {
			t.mu.Unlock()
			return
		}
		done := t.done
		t.mu.Unlock()
		<-done
	}
}

// Shutdown stops every thread once its current task (if any) completes.
func (p *Pool) Shutdown() {
	p.cancel()
	for _, t := range p.threads {
		t.mu.Lock()
		t.cond.Broadcast()
		t.mu.Unlock()
	}
	_ = p.group.Wait()
}
