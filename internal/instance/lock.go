package instance

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Lock prevents two daemons from fighting over the keyboard hook and the
// clipboard. It writes the process PID to a lock file; a lock left behind by
// a dead process is treated as stale and reclaimed.
type Lock struct {
	path     string
	acquired bool
}

func NewLock(path string) *Lock {
	return &Lock{path: path}
}

// Acquire takes the lock. It returns an error when another live instance
// holds it.
func (l *Lock) Acquire() error {
	if pid, ok := l.currentHolder(); ok {
		if processAlive(pid) {
			return fmt.Errorf("another instance is already running (pid %d)", pid)
		}
		log.Printf("[LOCK] Removing stale lock file (pid %d is gone)", pid)
		_ = os.Remove(l.path)
	}

	if err := os.WriteFile(l.path, []byte(strconv.Itoa(os.Getpid())), 0600); err != nil {
		return fmt.Errorf("writing lock file: %v", err)
	}
	l.acquired = true
	return nil
}

// Release removes the lock file if this process owns it.
func (l *Lock) Release() {
	if !l.acquired {
		return
	}
	l.acquired = false
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		log.Printf("[LOCK] Failed to remove lock file: %v", err)
	}
}

func (l *Lock) currentHolder() (int, bool) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		// Garbage in the lock file means a stale or corrupt lock.
		return 0, false
	}
	return pid, true
}
