//go:build !darwin

package sound

// playForEvent falls back to terminal bell outside macOS
func playForEvent(event string) error {
	return terminalBell()
}
