//go:build windows

package app

import (
	"os"
	"syscall"
)

// Windows has no job control signals.
func contSignals() []os.Signal {
	return nil
}

// stopSignals end the session as an abort so the terminal is restored.
// Ctrl-C reaches tcell as a key event; Ctrl-Break arrives as os.Interrupt.
func stopSignals() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}
