//go:build windows

package win32

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// EnsureElevated checks whether the current process runs with an elevated
// token. If not, it relaunches the same executable with the same arguments
// through the shell "runas" verb and reports relaunched=true; the caller
// must then exit without constructing the engine.
func EnsureElevated() (relaunched bool, err error) {
	if windows.GetCurrentProcessToken().IsElevated() {
		return false, nil
	}
	if err := relaunchElevated(); err != nil {
		return false, err
	}
	return true, nil
}

func relaunchElevated() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to determine executable path: %w", err)
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	exeW, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}

	// Re-quote the original arguments so they survive the shell round-trip.
	var argsW *uint16
	if len(os.Args) > 1 {
		params := windows.ComposeCommandLine(os.Args[1:])
		argsW, err = windows.UTF16PtrFromString(params)
		if err != nil {
			return err
		}
	}

	if err := windows.ShellExecute(0, verb, exeW, argsW, nil, windows.SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("failed to request elevation: %w", err)
	}
	return nil
}
