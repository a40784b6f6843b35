//go:build windows

package app

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// flushConsoleInput drops keystrokes left in the console buffer so they do
// not leak into the shell. Stdin is usually the input pipe, so the console
// is opened by name.
func flushConsoleInput() error {
	name, err := windows.UTF16PtrFromString("CONIN$")
	if err != nil {
		return err
	}
	handle, err := windows.CreateFile(name,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil, windows.OPEN_EXISTING, 0, 0)
	if err != nil {
		return fmt.Errorf("open console input: %w", err)
	}
	defer func() { _ = windows.CloseHandle(handle) }()
	return windows.FlushConsoleInputBuffer(handle)
}
