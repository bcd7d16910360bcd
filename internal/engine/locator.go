package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/keepactive/keepactive/internal/platform"
)

// Locator resolves a TargetSpec to a live window handle through process and
// window enumeration. Resolution is re-executed from scratch every cycle; a
// stale handle is never trusted, since the target process may have exited
// and restarted with a new window.
type Locator struct {
	reader platform.Reader
	log    *zap.Logger
}

// NewLocator creates a locator over the given platform reader.
func NewLocator(reader platform.Reader, log *zap.Logger) *Locator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Locator{reader: reader, log: log}
}

// Locate finds a window for the spec, first success wins:
//
//  1. For each executable name in order, match a running process image name
//     case-insensitively, then take that process's first visible, titled
//     top-level window. Executable matching comes first because it is
//     robust to title changes.
//  2. For each window title in order, a direct exact-title lookup.
//
// Enumeration failures count as a miss for this cycle, not an error: the
// caller's poll loop simply retries next interval.
func (l *Locator) Locate(spec TargetSpec) (platform.ResolvedWindow, bool) {
	for _, name := range spec.ProcessNames {
		pid, ok := l.findProcess(name)
		if !ok {
			continue
		}
		if win, ok := l.firstWindowOf(pid); ok {
			return win, true
		}
	}

	for _, title := range spec.WindowTitles {
		if win, ok := l.reader.FindWindowByTitle(title); ok {
			return win, true
		}
	}

	return platform.ResolvedWindow{}, false
}

func (l *Locator) findProcess(name string) (uint32, bool) {
	procs, err := l.reader.ListProcesses()
	if err != nil {
		l.log.Debug("process enumeration failed", zap.Error(err))
		return 0, false
	}
	for _, p := range procs {
		if strings.EqualFold(p.Exe, name) {
			return p.PID, true
		}
	}
	return 0, false
}

func (l *Locator) firstWindowOf(pid uint32) (platform.ResolvedWindow, bool) {
	wins, err := l.reader.ListWindows(platform.ListOptions{PID: pid})
	if err != nil {
		l.log.Debug("window enumeration failed", zap.Uint32("pid", pid), zap.Error(err))
		return platform.ResolvedWindow{}, false
	}
	if len(wins) == 0 {
		return platform.ResolvedWindow{}, false
	}
	return platform.ResolvedWindow{Handle: wins[0].Handle, PID: wins[0].PID}, true
}
