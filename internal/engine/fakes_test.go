package engine

import (
	"sync"

	"github.com/keepactive/keepactive/internal/model"
	"github.com/keepactive/keepactive/internal/platform"
)

// fakeReader is a concurrency-safe in-memory platform.Reader.
type fakeReader struct {
	mu        sync.Mutex
	procs     []model.Process
	procErr   error
	winsByPID map[uint32][]model.Window
	winErr    error
	byTitle   map[string]platform.ResolvedWindow
}

func (f *fakeReader) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.winErr != nil {
		return nil, f.winErr
	}
	if opts.PID != 0 {
		return f.winsByPID[opts.PID], nil
	}
	var all []model.Window
	for _, wins := range f.winsByPID {
		all = append(all, wins...)
	}
	return all, nil
}

func (f *fakeReader) ListProcesses() ([]model.Process, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.procErr != nil {
		return nil, f.procErr
	}
	return f.procs, nil
}

func (f *fakeReader) FindWindowByTitle(title string) (platform.ResolvedWindow, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	win, ok := f.byTitle[title]
	return win, ok
}

func (f *fakeReader) setTitle(title string, win platform.ResolvedWindow) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.byTitle == nil {
		f.byTitle = make(map[string]platform.ResolvedWindow)
	}
	f.byTitle[title] = win
}

// countingActivator records every activation signal it receives.
type countingActivator struct {
	mu      sync.Mutex
	signals []platform.ResolvedWindow
}

func (a *countingActivator) Activate(w platform.ResolvedWindow) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.signals = append(a.signals, w)
	return nil
}

func (a *countingActivator) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.signals)
}

func (a *countingActivator) last() (platform.ResolvedWindow, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.signals) == 0 {
		return platform.ResolvedWindow{}, false
	}
	return a.signals[len(a.signals)-1], true
}

// fakeHandle is a controllable engine.Handle.
type fakeHandle struct {
	mu       sync.Mutex
	stopped  bool
	finished bool
	stopErr  error
}

func (h *fakeHandle) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopped = true
	h.finished = true
	return h.stopErr
}

func (h *fakeHandle) Done() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.finished
}

func (h *fakeHandle) finish() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.finished = true
}

// fakeRunner hands out fakeHandles and records every spawned spec.
type fakeRunner struct {
	mu       sync.Mutex
	spawnErr error
	handles  []*fakeHandle
	specs    []TargetSpec
}

func (r *fakeRunner) Spawn(spec TargetSpec) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spawnErr != nil {
		return nil, r.spawnErr
	}
	h := &fakeHandle{}
	r.handles = append(r.handles, h)
	r.specs = append(r.specs, spec)
	return h, nil
}

func (r *fakeRunner) spawnCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}
