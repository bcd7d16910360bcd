//go:build windows

package win32

import (
	"github.com/keepactive/keepactive/internal/platform"
)

// Activator implements platform.Activator by posting WM_ACTIVATE to the
// target window, mimicking a click-driven activation.
type Activator struct{}

// NewActivator creates a Win32-backed activation driver.
func NewActivator() *Activator {
	return &Activator{}
}

// Activate sends a single WM_ACTIVATE/WA_CLICKACTIVE message to the window.
// SendMessage's return value carries no failure signal for WM_ACTIVATE; a
// destroyed handle is recovered by the next locate cycle.
func (a *Activator) Activate(w platform.ResolvedWindow) error {
	procSendMessageW.Call(w.Handle, wmActivate, waClickActive, 0)
	return nil
}
