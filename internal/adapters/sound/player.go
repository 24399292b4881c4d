package sound

import (
	"fmt"
	"io"
	"os"

	"github.com/renato0307/fieldscan/internal/ports"
)

// Player implements ports.SoundPlayer
type Player struct {
	enabled bool
}

// Compile-time interface verification
var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player. A disabled player is silent.
func NewPlayer(enabled bool) *Player {
	return &Player{enabled: enabled}
}

// PlaySoundForEvent plays a cue for a scanner event.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(event string) error {
	if !p.enabled {
		return nil
	}
	return playForEvent(event)
}

// bellOut is where the terminal bell is written
var bellOut io.Writer = os.Stderr

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	_, err := fmt.Fprint(bellOut, "\a")
	return err
}
