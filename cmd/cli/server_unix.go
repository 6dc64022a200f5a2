//go:build !windows

package main

import (
	"os/exec"
	"syscall"
)

// detachFromTerminal puts the auto-started server in its own process group
// so Ctrl-C in the CLI does not reach it
func detachFromTerminal(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
