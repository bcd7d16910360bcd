//go:build windows

package cmd

// Register the Windows platform backends.
import _ "github.com/keepactive/keepactive/internal/platform/win32"
