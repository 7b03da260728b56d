package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/nbodysim/barnes-hut/simerr"
)

func TestBulkVisitsEveryIndexExactlyOnceStatic(t *testing.T) {
	p := NewWorkerPool(Config{WorkerCount: 4, ScheduleKind: Static})
	testBulkVisitsEveryIndexExactlyOnce(t, p)
}

func TestBulkVisitsEveryIndexExactlyOnceDynamic(t *testing.T) {
	p := NewWorkerPool(Config{WorkerCount: 4, ScheduleKind: Dynamic})
	testBulkVisitsEveryIndexExactlyOnce(t, p)
}

func testBulkVisitsEveryIndexExactlyOnce(t *testing.T, p *WorkerPool) {
	const n = 100
	var mu sync.Mutex
	seen := make(map[int]int, n)

	err := p.Bulk(context.Background(), n, func(i int) error {
		mu.Lock()
		seen[i]++
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("Bulk returned error: %v", err)
	}
	if len(seen) != n {
		t.Fatalf("visited %d distinct indices, want %d", len(seen), n)
	}
	for i := 0; i < n; i++ {
		if seen[i] != 1 {
			t.Errorf("index %d visited %d times, want 1", i, seen[i])
		}
	}
}

func TestBulkWithZeroItemsIsNoop(t *testing.T) {
	p := NewWorkerPool(Config{WorkerCount: 2})
	called := false
	err := p.Bulk(context.Background(), 0, func(int) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("Bulk(n=0) returned error: %v", err)
	}
	if called {
		t.Error("Bulk(n=0) should never call f")
	}
}

func TestBulkPropagatesPanicAsSchedulerFault(t *testing.T) {
	p := NewWorkerPool(Config{WorkerCount: 2})
	err := p.Bulk(context.Background(), 10, func(i int) error {
		if i == 3 {
			panic("boom")
		}
		return nil
	})
	if !errors.Is(err, simerr.ErrSchedulerFault) {
		t.Errorf("Bulk with a panicking worker: got %v, want ErrSchedulerFault", err)
	}
}

func TestBulkRespectsCancelledContext(t *testing.T) {
	p := NewWorkerPool(Config{WorkerCount: 2})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Bulk(ctx, 10, func(int) error { return nil })
	if !errors.Is(err, simerr.ErrPipelineCancelled) {
		t.Errorf("Bulk with a pre-cancelled context: got %v, want ErrPipelineCancelled", err)
	}
}

func TestBulkAbortsRemainingWorkOnError(t *testing.T) {
	p := NewWorkerPool(Config{WorkerCount: 1, ScheduleKind: Static})
	var calls int32
	sentinel := errors.New("stop here")

	err := p.Bulk(context.Background(), 10, func(i int) error {
		atomic.AddInt32(&calls, 1)
		if i == 2 {
			return sentinel
		}
		return nil
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if atomic.LoadInt32(&calls) > 3 {
		t.Errorf("expected work to stop shortly after the failing index, got %d calls", calls)
	}
}

func TestThenRunsSequentiallyAndPropagatesPanic(t *testing.T) {
	p := NewWorkerPool(Config{WorkerCount: 1})

	ran := false
	err := p.Then(context.Background(), func() error {
		ran = true
		return nil
	})
	if err != nil || !ran {
		t.Fatalf("Then: err=%v ran=%v", err, ran)
	}

	err = p.Then(context.Background(), func() error {
		panic("nope")
	})
	if !errors.Is(err, simerr.ErrSchedulerFault) {
		t.Errorf("Then with a panic: got %v, want ErrSchedulerFault", err)
	}
}

func TestNewWorkerPoolClampsNonPositiveWorkerCount(t *testing.T) {
	p := NewWorkerPool(Config{WorkerCount: 0})
	if p.cfg.WorkerCount != 1 {
		t.Errorf("WorkerCount: got %d, want 1", p.cfg.WorkerCount)
	}
}
