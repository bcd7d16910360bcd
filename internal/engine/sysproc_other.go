//go:build !windows

package engine

import "os/exec"

func hideSpawnedConsole(_ *exec.Cmd) {}
