//go:build !windows

package app

import (
	"os"
	"syscall"
)

// contSignals are delivered when the shell resumes a stopped session.
func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

// stopSignals end the session as an abort so the terminal is restored.
func stopSignals() []os.Signal {
	return []os.Signal{syscall.SIGTERM, syscall.SIGHUP}
}
