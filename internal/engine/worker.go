package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/keepactive/keepactive/internal/platform"
)

// DefaultInterval is the poll cadence of the keep-alive loop.
const DefaultInterval = 100 * time.Millisecond

// Worker runs the poll-locate-activate loop for one target group.
type Worker struct {
	spec      TargetSpec
	interval  time.Duration
	locator   *Locator
	activator platform.Activator
	log       *zap.Logger
}

// NewWorker creates a worker bound to its own copy of the spec. An interval
// of zero or less falls back to DefaultInterval.
func NewWorker(spec TargetSpec, interval time.Duration, locator *Locator, activator platform.Activator, log *zap.Logger) *Worker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Worker{
		spec:      spec,
		interval:  interval,
		locator:   locator,
		activator: activator,
		log:       log,
	}
}

// Run polls until ctx is cancelled, observing cancellation within one
// interval. A cycle that resolves no window is an expected steady state,
// not an exit condition: the loop keeps polling so a not-yet-launched
// target is picked up once it appears.
func (w *Worker) Run(ctx context.Context) {
	for {
		if win, ok := w.locator.Locate(w.spec); ok {
			if err := w.activator.Activate(win); err != nil {
				w.log.Debug("activation failed", zap.Error(err))
			}
		} else {
			w.log.Debug("no target window this cycle")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.interval):
		}
	}
}
