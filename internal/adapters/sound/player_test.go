package sound

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/fieldscan/internal/ports"
)

func TestDisabledPlayerIsSilent(t *testing.T) {
	var buf bytes.Buffer
	prev := bellOut
	bellOut = &buf
	t.Cleanup(func() { bellOut = prev })

	require.NoError(t, NewPlayer(false).PlaySoundForEvent(ports.SoundSaved))
	assert.Zero(t, buf.Len())
}

func TestTerminalBell(t *testing.T) {
	var buf bytes.Buffer
	prev := bellOut
	bellOut = &buf
	t.Cleanup(func() { bellOut = prev })

	require.NoError(t, terminalBell())
	assert.Equal(t, "\a", buf.String())
}
