package platform

import "github.com/keepactive/keepactive/internal/model"

// Reader enumerates windows and processes through the OS.
type Reader interface {
	// ListWindows returns visible top-level windows with non-empty titles,
	// optionally filtered.
	ListWindows(opts ListOptions) ([]model.Window, error)

	// ListProcesses returns a point-in-time snapshot of running processes.
	ListProcesses() ([]model.Process, error)

	// FindWindowByTitle performs a direct system lookup by exact window title.
	FindWindowByTitle(title string) (ResolvedWindow, bool)
}

// Activator reasserts foreground/activation state on a window.
type Activator interface {
	// Activate sends a single activation signal to the window. Fire-and-forget:
	// a transient failure self-heals on the next poll cycle, so the OS call's
	// own result is not surfaced beyond the returned error.
	Activate(w ResolvedWindow) error
}
