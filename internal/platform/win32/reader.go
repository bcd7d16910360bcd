//go:build windows

package win32

import (
	"fmt"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/keepactive/keepactive/internal/model"
	"github.com/keepactive/keepactive/internal/platform"
)

// Reader implements platform.Reader on top of user32/kernel32.
type Reader struct{}

// NewReader creates a Win32-backed window and process reader.
func NewReader() *Reader {
	return &Reader{}
}

// ListWindows enumerates visible top-level windows with non-empty titles.
func (r *Reader) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	var wins []model.Window
	cb := windows.NewCallback(func(h uintptr, _ uintptr) uintptr {
		if !isWindowVisible(h) {
			return 1
		}
		pid := windowPID(h)
		if pid == 0 {
			return 1
		}
		if opts.PID != 0 && pid != opts.PID {
			return 1
		}
		title := getWindowText(h)
		if strings.TrimSpace(title) == "" {
			return 1
		}
		w := model.Window{Handle: h, Title: title, PID: pid}
		if opts.IncludeExe {
			w.Exe = processExeBase(pid)
		}
		wins = append(wins, w)
		return 1
	})
	ret, _, err := procEnumWindows.Call(cb, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumWindows failed: %w", err)
	}
	return wins, nil
}

// ListProcesses takes a Toolhelp32 snapshot of running processes.
func (r *Reader) ListProcesses() ([]model.Process, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, fmt.Errorf("process snapshot failed: %w", err)
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	var procs []model.Process
	if err := windows.Process32First(snapshot, &entry); err != nil {
		return nil, fmt.Errorf("process snapshot iteration failed: %w", err)
	}
	for {
		procs = append(procs, model.Process{
			PID: entry.ProcessID,
			Exe: windows.UTF16ToString(entry.ExeFile[:]),
		})
		if err := windows.Process32Next(snapshot, &entry); err != nil {
			break
		}
	}
	return procs, nil
}

// FindWindowByTitle performs a direct FindWindowW lookup by exact title.
func (r *Reader) FindWindowByTitle(title string) (platform.ResolvedWindow, bool) {
	wide, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return platform.ResolvedWindow{}, false
	}
	h, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(wide)))
	if h == 0 {
		return platform.ResolvedWindow{}, false
	}
	return platform.ResolvedWindow{Handle: h, PID: windowPID(h)}, true
}

func isWindowVisible(h uintptr) bool {
	ret, _, _ := procIsWindowVisible.Call(h)
	return ret != 0
}

func windowPID(h uintptr) uint32 {
	var pid uint32
	procGetWindowThreadProcessId.Call(h, uintptr(unsafe.Pointer(&pid)))
	return pid
}

func getWindowText(h uintptr) string {
	l, _, _ := procGetWindowTextLengthW.Call(h)
	length := int(l)
	if length == 0 {
		return ""
	}
	buf := make([]uint16, length+1)
	procGetWindowTextW.Call(h, uintptr(unsafe.Pointer(&buf[0])), uintptr(length+1))
	return windows.UTF16ToString(buf)
}

// processExeBase returns the lower-cased executable base name for a PID,
// or "" when the process cannot be opened (e.g. protected system process).
func processExeBase(pid uint32) string {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(h)

	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err != nil {
		return ""
	}
	return strings.ToLower(filepath.Base(windows.UTF16ToString(buf[:size])))
}
