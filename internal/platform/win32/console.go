//go:build windows

package win32

import "golang.org/x/sys/windows"

// HideConsole detaches the console window of the current process, if any.
// Worker processes call this so no console flashes up for each spawn.
func HideConsole() {
	h, _, _ := procGetConsoleWindow.Call()
	if h != 0 {
		procShowWindow.Call(h, uintptr(windows.SW_HIDE))
	}
}
