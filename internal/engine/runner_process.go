package engine

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// ProcessRunner launches each worker as a hidden child process that
// re-enters this executable through the internal worker subcommand. Workers
// survive faults in the supervising process's other parts, at the cost of
// kill-and-reap on stop instead of a cooperative cancel.
type ProcessRunner struct {
	// ExePath overrides the worker executable; defaults to os.Executable().
	ExePath  string
	Interval time.Duration
}

// Spawn launches one worker process carrying the serialized spec.
func (r *ProcessRunner) Spawn(spec TargetSpec) (Handle, error) {
	exe := r.ExePath
	if exe == "" {
		var err error
		exe, err = os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to locate keepactive executable: %w", err)
		}
	}

	args := []string{"worker"}
	for _, title := range spec.WindowTitles {
		args = append(args, "--window", title)
	}
	for _, name := range spec.ProcessNames {
		args = append(args, "--exe", name)
	}
	if r.Interval > 0 {
		args = append(args, "--interval", r.Interval.String())
	}

	cmd := exec.Command(exe, args...)
	hideSpawnedConsole(cmd)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to launch worker: %w", err)
	}

	h := &processHandle{cmd: cmd, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.waitErr = cmd.Wait()
	}()
	return h, nil
}

type processHandle struct {
	cmd     *exec.Cmd
	done    chan struct{}
	waitErr error
}

func (h *processHandle) Stop() error {
	err := h.cmd.Process.Kill()
	<-h.done
	if err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to kill worker pid %d: %w", h.cmd.Process.Pid, err)
	}
	return nil
}

func (h *processHandle) Done() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}
