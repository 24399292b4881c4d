//go:build darwin

package sound

import (
	"os/exec"

	"github.com/renato0307/fieldscan/internal/ports"
)

// playForEvent plays sounds on macOS using afplay
func playForEvent(event string) error {
	var soundFiles []string

	switch event {
	case ports.SoundScanComplete:
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Tink.aiff",
		}
	case ports.SoundSaved:
		soundFiles = []string{
			"/System/Library/Sounds/Pop.aiff",
			"/System/Library/Sounds/Ping.aiff",
		}
	case ports.SoundRefused:
		soundFiles = []string{
			"/System/Library/Sounds/Basso.aiff",
			"/System/Library/Sounds/Funk.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	// Try each sound file
	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
