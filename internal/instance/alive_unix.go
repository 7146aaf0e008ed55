//go:build !windows

package instance

import (
	"errors"
	"os"
	"syscall"
)

// processAlive probes pid with signal 0, which delivers nothing. EPERM means
// the process exists but belongs to another user, so it counts as alive.
func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	return errors.Is(err, syscall.EPERM)
}
