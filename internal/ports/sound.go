package ports

// Sound events emitted by the scanner
const (
	SoundScanComplete = "scan-complete"
	SoundSaved        = "saved"
	SoundRefused      = "refused"
)

// SoundPlayer plays an audible cue for a scanner event
type SoundPlayer interface {
	PlaySoundForEvent(event string) error
}
