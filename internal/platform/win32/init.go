//go:build windows

package win32

import "github.com/keepactive/keepactive/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Reader:    NewReader(),
			Activator: NewActivator(),
		}, nil
	}
	platform.EnsureElevatedFunc = EnsureElevated
	platform.HideConsoleFunc = HideConsole
}
