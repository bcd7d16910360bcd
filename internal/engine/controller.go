package engine

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrNoTargets is returned by Start when the spec has no window titles or
// executable names left after normalization.
var ErrNoTargets = errors.New("no targets configured")

// Controller owns the set of active workers and their lifecycle. Its state
// is Idle (no workers) or Running (one or more); Start while Running and
// Stop while Idle are no-ops.
type Controller struct {
	mu      sync.Mutex
	runner  Runner
	workers []Handle
	log     *zap.Logger
}

// NewController creates an idle controller spawning workers via runner.
func NewController(runner Runner, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{runner: runner, log: log}
}

// Start spawns workers for the spec and transitions to Running. When the
// controller is already running (after pruning workers that terminated on
// their own), Start is a no-op: repeated calls never create duplicate
// workers for the same targets. A spawn failure tears down any worker
// spawned by the same call, so the controller is never partially running.
func (c *Controller) Start(spec TargetSpec) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked()
	if len(c.workers) > 0 {
		return nil
	}

	spec.WindowTitles = NormalizeList(spec.WindowTitles)
	spec.ProcessNames = NormalizeList(spec.ProcessNames)
	if spec.IsEmpty() {
		return ErrNoTargets
	}

	// One worker serves the combined spec: the locator applies its full
	// priority order across all targets, so a resolved window receives at
	// most one activation signal per interval.
	groups := []TargetSpec{spec}

	var spawned []Handle
	for _, group := range groups {
		h, err := c.runner.Spawn(group)
		if err != nil {
			for _, s := range spawned {
				if serr := s.Stop(); serr != nil {
					c.log.Warn("failed to stop worker during rollback", zap.Error(serr))
				}
			}
			return fmt.Errorf("failed to spawn worker: %w", err)
		}
		spawned = append(spawned, h)
	}

	c.workers = spawned
	c.log.Info("supervision started",
		zap.Strings("windows", spec.WindowTitles),
		zap.Strings("executables", spec.ProcessNames),
		zap.Int("workers", len(spawned)))
	return nil
}

// Stop signals every worker to terminate and waits for each before
// returning. Safe to call while Idle. The worker set is cleared even when a
// join fails: no zombie handle may survive a Stop.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.workers) == 0 {
		return nil
	}

	var firstErr error
	for _, h := range c.workers {
		if err := h.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.workers = nil

	c.log.Info("supervision stopped")
	return firstErr
}

// IsRunning prunes workers that terminated on their own, then reports
// whether any remain.
func (c *Controller) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked()
	return len(c.workers) > 0
}

// Close stops all workers. Callers defer it at construction site so no
// background activity outlives the controller.
func (c *Controller) Close() error {
	return c.Stop()
}

func (c *Controller) pruneLocked() {
	active := c.workers[:0]
	for _, h := range c.workers {
		if !h.Done() {
			active = append(active, h)
		}
	}
	c.workers = active
}
