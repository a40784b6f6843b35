//go:build windows

package app

// Ctrl-Z has nothing to stop on Windows; the session keeps running.
func (app *Application) suspendToShell() {
	app.logger.Debug("suspend ignored on windows")
}

func (app *Application) resumeAfterStop() bool {
	return false
}
