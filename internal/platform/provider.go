package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Reader    Reader
	Activator Activator
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("keepactive is not supported on %s/%s; supported: windows/amd64, windows/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win32/init.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// EnsureElevatedFunc is set by platform-specific packages via init().
// It checks for elevated rights and relaunches the process via the OS
// "run as administrator" path when they are missing. When it reports a
// relaunch, the current process must exit without touching the engine.
var EnsureElevatedFunc func() (relaunched bool, err error)

// HideConsoleFunc is set by platform-specific packages via init().
// Worker processes call it to detach their console window.
var HideConsoleFunc func()

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
