// Package win32 provides Windows platform support using user32/kernel32 APIs.
// Window enumeration, process snapshots, and activation messages go through
// golang.org/x/sys/windows; no CGo is required.
package win32
