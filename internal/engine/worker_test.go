package engine

import (
	"testing"
	"time"

	"github.com/keepactive/keepactive/internal/platform"
)

// waitFor polls cond until it returns true or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return cond()
}

func newTestRunner(reader *fakeReader, act *countingActivator) *GoroutineRunner {
	return &GoroutineRunner{
		Interval:  5 * time.Millisecond,
		Locator:   NewLocator(reader, nil),
		Activator: act,
	}
}

func TestWorker_ActivatesResolvedWindow(t *testing.T) {
	reader := &fakeReader{}
	reader.setTitle("Sample", platform.ResolvedWindow{Handle: 0x42, PID: 7})
	act := &countingActivator{}

	c := NewController(newTestRunner(reader, act), nil)
	defer c.Close()

	if err := c.Start(TargetSpec{WindowTitles: []string{"Sample"}}); err != nil {
		t.Fatal(err)
	}

	// The window must receive a signal within a couple of poll intervals.
	if !waitFor(t, time.Second, func() bool { return act.count() >= 1 }) {
		t.Fatal("window never received an activation signal")
	}
	if win, _ := act.last(); win.Handle != 0x42 {
		t.Errorf("activated handle %#x, want 0x42", win.Handle)
	}
}

func TestWorker_StopHaltsSignals(t *testing.T) {
	reader := &fakeReader{}
	reader.setTitle("Sample", platform.ResolvedWindow{Handle: 0x42, PID: 7})
	act := &countingActivator{}

	c := NewController(newTestRunner(reader, act), nil)

	if err := c.Start(TargetSpec{WindowTitles: []string{"Sample"}}); err != nil {
		t.Fatal(err)
	}
	waitFor(t, time.Second, func() bool { return act.count() >= 1 })

	if err := c.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}

	// No further signal may arrive once Stop has returned.
	n := act.count()
	time.Sleep(50 * time.Millisecond)
	if got := act.count(); got != n {
		t.Errorf("received %d signals after stop, want none", got-n)
	}
}

func TestWorker_MissingTargetIsSteadyState(t *testing.T) {
	reader := &fakeReader{} // no windows at all yet
	act := &countingActivator{}

	c := NewController(newTestRunner(reader, act), nil)
	defer c.Close()

	if err := c.Start(TargetSpec{WindowTitles: []string{"Later"}}); err != nil {
		t.Fatal(err)
	}

	// The loop keeps polling through misses without terminating.
	time.Sleep(30 * time.Millisecond)
	if !c.IsRunning() {
		t.Fatal("worker must not exit on resolution misses")
	}
	if act.count() != 0 {
		t.Fatal("no window existed, so nothing should have been activated")
	}

	// Once the target appears it is picked up on a subsequent cycle.
	reader.setTitle("Later", platform.ResolvedWindow{Handle: 0x7, PID: 3})
	if !waitFor(t, time.Second, func() bool { return act.count() >= 1 }) {
		t.Fatal("late-appearing window was never activated")
	}
}

func TestGoroutineHandle_DoneAfterStop(t *testing.T) {
	reader := &fakeReader{}
	act := &countingActivator{}
	runner := newTestRunner(reader, act)

	h, err := runner.Spawn(TargetSpec{WindowTitles: []string{"X"}})
	if err != nil {
		t.Fatal(err)
	}
	if h.Done() {
		t.Error("freshly spawned worker should not be done")
	}
	if err := h.Stop(); err != nil {
		t.Fatal(err)
	}
	if !h.Done() {
		t.Error("stopped worker should report done")
	}
}
