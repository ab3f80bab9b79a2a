//go:build !windows

package supervisor

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"
)

// detachedSysProcAttr puts the child in its own process group so the whole
// service (uvicorn workers included) can be signalled as a unit, and so it
// keeps running when the launcher quits.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// Signals go to -pid: the child leads its own group, so pgid == pid.

func terminateProcess(pid int) error {
	return unix.Kill(-pid, unix.SIGTERM)
}

func killProcess(pid int) error {
	return unix.Kill(-pid, unix.SIGKILL)
}

func errProcessGone(err error) bool {
	return errors.Is(err, unix.ESRCH)
}
