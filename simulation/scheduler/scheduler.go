// Package scheduler provides the abstract bulk-parallel executor the
// pipeline consumes: `Bulk` applies a function to every index in
// [0, n) with unspecified ordering, `Then` chains a unit of sequential
// work after whatever came before. The pipeline depends only on the
// Executor interface; WorkerPool is the concrete implementation used by
// the rest of this repository.
//
// Adapted from the teacher's simulation/world.WorkerPool (a bare
// sync.WaitGroup-backed task channel) but rebuilt on
// golang.org/x/sync/errgroup so a panic or error from any one bulk item
// aborts the remaining items and is reported to the caller (a panic as
// simerr.ErrSchedulerFault, an error with its own kind), instead of being
// silently swallowed the way the teacher's WaitGroup pool would.
package scheduler

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nbodysim/barnes-hut/simerr"
)

// ScheduleKind selects how Bulk distributes iterations across workers.
type ScheduleKind int

const (
	// Static splits [0, n) into worker_count contiguous chunks up front.
	Static ScheduleKind = iota
	// Dynamic hands out one index at a time over a shared channel, so a
	// worker that finishes early picks up more work.
	Dynamic
)

// Config configures a WorkerPool.
type Config struct {
	// WorkerCount is the degree of parallelism. Must be positive.
	WorkerCount int
	// ScheduleKind selects static or dynamic index distribution.
	ScheduleKind ScheduleKind
}

// Executor is the abstract bulk-parallel scheduler the pipeline consumes.
type Executor interface {
	// Bulk applies f(i) for every i in [0, n), returning once all have
	// completed or aborting early on the first error/panic/cancellation.
	Bulk(ctx context.Context, n int, f func(i int) error) error
	// Then runs work on some worker, sequentially after anything already
	// submitted to this executor has completed.
	Then(ctx context.Context, work func() error) error
}

// WorkerPool is the default Executor, backed by errgroup.Group.
type WorkerPool struct {
	cfg Config
}

// NewWorkerPool creates a WorkerPool with the given configuration. A
// non-positive WorkerCount is treated as 1.
func NewWorkerPool(cfg Config) *WorkerPool {
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 1
	}
	return &WorkerPool{cfg: cfg}
}

// Bulk applies f(i) for all i in [0, n). It polls ctx for cancellation
// before starting and between chunks/items; a cancelled context aborts
// the remaining work and returns simerr.ErrPipelineCancelled. A recovered
// panic aborts the remaining work and returns an error wrapping
// simerr.ErrSchedulerFault. An error returned by f also aborts the
// remaining work and is returned wrapped, keeping its own kind (it is not
// turned into simerr.ErrSchedulerFault).
func (p *WorkerPool) Bulk(ctx context.Context, n int, f func(i int) error) error {
	if n == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return simerr.ErrPipelineCancelled
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.WorkerCount)

	safeF := func(i int) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("scheduler: worker panic on index %d: %v: %w", i, r, simerr.ErrSchedulerFault)
			}
		}()
		return f(i)
	}

	switch p.cfg.ScheduleKind {
	case Dynamic:
		// One extra slot for the index feeder, so WorkerCount workers can
		// run alongside it.
		g.SetLimit(p.cfg.WorkerCount + 1)
		indices := make(chan int)
		g.Go(func() error {
			defer close(indices)
			for i := 0; i < n; i++ {
				select {
				case indices <- i:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
		for w := 0; w < p.cfg.WorkerCount; w++ {
			g.Go(func() error {
				for i := range indices {
					if err := safeF(i); err != nil {
						return err
					}
				}
				return nil
			})
		}

	default: // Static
		chunk := (n + p.cfg.WorkerCount - 1) / p.cfg.WorkerCount
		for start := 0; start < n; start += chunk {
			start := start
			end := start + chunk
			if end > n {
				end = n
			}
			g.Go(func() error {
				for i := start; i < end; i++ {
					if err := safeF(i); err != nil {
						return err
					}
					if gctx.Err() != nil {
						return gctx.Err()
					}
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return simerr.ErrPipelineCancelled
		}
		if errors.Is(err, simerr.ErrSchedulerFault) {
			return err
		}
		return fmt.Errorf("scheduler: bulk stage failed: %w", err)
	}
	return nil
}

// Then runs work synchronously on the caller's goroutine. It exists as a
// distinct Executor method (rather than folding into Bulk) because a
// single sequential item, such as the tick's tree build, needs no
// worker-pool fan-out at all.
func (p *WorkerPool) Then(ctx context.Context, work func() error) (err error) {
	if err := ctx.Err(); err != nil {
		return simerr.ErrPipelineCancelled
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scheduler: panic in sequential stage: %v: %w", r, simerr.ErrSchedulerFault)
		}
	}()
	return work()
}
