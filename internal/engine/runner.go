package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/keepactive/keepactive/internal/platform"
)

// Handle represents one running activation loop. Handles are created and
// exclusively owned by the Controller; they never outlive it.
type Handle interface {
	// Stop signals the worker to terminate and waits for it to finish.
	Stop() error

	// Done reports whether the worker already terminated on its own.
	Done() bool
}

// Runner spawns keep-alive workers in a concrete topology: goroutines in
// this process, or separately launched worker processes.
type Runner interface {
	Spawn(spec TargetSpec) (Handle, error)
}

// GoroutineRunner runs each worker as a goroutine in this process. Each
// worker gets its own cancellation context; the only shared resource between
// controller and worker is that context, written once by Stop.
type GoroutineRunner struct {
	Interval  time.Duration
	Locator   *Locator
	Activator platform.Activator
	Log       *zap.Logger
}

// Spawn starts the worker loop and returns its handle.
func (r *GoroutineRunner) Spawn(spec TargetSpec) (Handle, error) {
	ctx, cancel := context.WithCancel(context.Background())
	h := &goroutineHandle{cancel: cancel, done: make(chan struct{})}

	w := NewWorker(spec, r.Interval, r.Locator, r.Activator, r.Log)
	go func() {
		defer close(h.done)
		w.Run(ctx)
	}()
	return h, nil
}

type goroutineHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (h *goroutineHandle) Stop() error {
	h.cancel()
	<-h.done
	return nil
}

func (h *goroutineHandle) Done() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}
