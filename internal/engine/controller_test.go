package engine

import (
	"errors"
	"testing"
)

func TestController_StartTwice_NoDuplicateWorkers(t *testing.T) {
	runner := &fakeRunner{}
	c := NewController(runner, nil)
	defer c.Close()

	spec := TargetSpec{WindowTitles: []string{"Sample"}}
	if err := c.Start(spec); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if err := c.Start(spec); err != nil {
		t.Fatalf("second start: %v", err)
	}
	if got := runner.spawnCount(); got != 1 {
		t.Errorf("spawned %d workers, want 1", got)
	}
	if !c.IsRunning() {
		t.Error("controller should be running")
	}
}

func TestController_StartEmptySpec(t *testing.T) {
	c := NewController(&fakeRunner{}, nil)
	defer c.Close()

	err := c.Start(TargetSpec{WindowTitles: []string{"  ", ""}})
	if !errors.Is(err, ErrNoTargets) {
		t.Errorf("got %v, want ErrNoTargets", err)
	}
	if c.IsRunning() {
		t.Error("controller must stay idle after a configuration error")
	}
}

func TestController_StopWhileIdle(t *testing.T) {
	c := NewController(&fakeRunner{}, nil)
	if err := c.Stop(); err != nil {
		t.Errorf("stop while idle: %v", err)
	}
	if c.IsRunning() {
		t.Error("controller should be idle")
	}
}

func TestController_StopTerminatesWorkers(t *testing.T) {
	runner := &fakeRunner{}
	c := NewController(runner, nil)

	if err := c.Start(TargetSpec{WindowTitles: []string{"Sample"}}); err != nil {
		t.Fatal(err)
	}
	if err := c.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if c.IsRunning() {
		t.Error("controller should be idle after stop")
	}
	for i, h := range runner.handles {
		if !h.stopped {
			t.Errorf("worker %d was not signalled to stop", i)
		}
	}
}

func TestController_SpawnFailure(t *testing.T) {
	runner := &fakeRunner{spawnErr: errors.New("out of resources")}
	c := NewController(runner, nil)

	err := c.Start(TargetSpec{WindowTitles: []string{"Sample"}})
	if err == nil {
		t.Fatal("expected spawn error")
	}
	if c.IsRunning() {
		t.Error("controller must not be partially running after a spawn failure")
	}
}

func TestController_StopClearsWorkersOnJoinError(t *testing.T) {
	runner := &fakeRunner{}
	c := NewController(runner, nil)

	if err := c.Start(TargetSpec{WindowTitles: []string{"Sample"}}); err != nil {
		t.Fatal(err)
	}
	runner.handles[0].stopErr = errors.New("did not terminate")

	if err := c.Stop(); err == nil {
		t.Error("expected the join failure to surface")
	}
	// The worker set is cleared regardless, so no zombie handles remain.
	if c.IsRunning() {
		t.Error("controller must be idle even after a failed join")
	}
}

func TestController_PrunesSelfTerminatedWorkers(t *testing.T) {
	runner := &fakeRunner{}
	c := NewController(runner, nil)
	defer c.Close()

	if err := c.Start(TargetSpec{WindowTitles: []string{"Sample"}}); err != nil {
		t.Fatal(err)
	}
	runner.handles[0].finish()

	if c.IsRunning() {
		t.Error("a worker that terminated on its own should be pruned")
	}

	// And a fresh start spawns again rather than no-opping.
	if err := c.Start(TargetSpec{WindowTitles: []string{"Sample"}}); err != nil {
		t.Fatal(err)
	}
	if got := runner.spawnCount(); got != 2 {
		t.Errorf("spawned %d workers total, want 2", got)
	}
}

func TestController_StartNormalizesSpec(t *testing.T) {
	runner := &fakeRunner{}
	c := NewController(runner, nil)
	defer c.Close()

	if err := c.Start(TargetSpec{
		WindowTitles: []string{" Sample ", "sample"},
		ProcessNames: []string{"a.exe", "A.EXE"},
	}); err != nil {
		t.Fatal(err)
	}

	spawned := runner.specs[0]
	if len(spawned.WindowTitles) != 1 || spawned.WindowTitles[0] != "Sample" {
		t.Errorf("WindowTitles = %v, want [Sample]", spawned.WindowTitles)
	}
	if len(spawned.ProcessNames) != 1 || spawned.ProcessNames[0] != "a.exe" {
		t.Errorf("ProcessNames = %v, want [a.exe]", spawned.ProcessNames)
	}
}
