//go:build windows

package supervisor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
)

func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}

// taskkill exits with 128 when no process has the given PID.
const taskkillNotFound = 128

// terminateProcess uses taskkill /T so the whole process tree goes down,
// matching what a process group signal does on unix. Windows has no
// graceful-TERM equivalent for console children, so this is already forced.
// A PID that is already gone maps to os.ErrProcessDone, the benign
// "already stopped" outcome.
func terminateProcess(pid int) error {
	out, err := exec.Command("taskkill", "/PID", strconv.Itoa(pid), "/T", "/F").CombinedOutput()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == taskkillNotFound {
		return os.ErrProcessDone
	}
	if strings.Contains(strings.ToLower(string(out)), "not found") {
		return os.ErrProcessDone
	}
	return fmt.Errorf("taskkill: %s", strings.TrimSpace(string(out)))
}

func killProcess(pid int) error {
	p, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return p.Kill()
}

func errProcessGone(err error) bool {
	return errors.Is(err, os.ErrProcessDone)
}
