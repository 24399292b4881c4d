package scanner

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/logging"
)

// FieldStatus is the capture state of one identifier
type FieldStatus string

const (
	FieldIdle     FieldStatus = "idle"
	FieldScanning FieldStatus = "scanning"
	FieldCaptured FieldStatus = "captured"
)

// Phase is the overall state of a scan
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseInitializing Phase = "initializing"
	PhaseDetecting    Phase = "detecting"
	PhaseCompleted    Phase = "completed"
)

// captureThreshold is the progress at which values become readable
const captureThreshold = 95.0

// KnownModels are the display models the simulator reports
var KnownModels = []string{
	"43BDL3650Q/00",
	"55BDL3050Q/00",
	"32BDL3051T/00",
	"43BDL4550D/00",
	"55BDL4510D/00",
}

// FieldState is the value and confidence of one identifier
type FieldState struct {
	Confidence float64     `json:"confidence"`
	Status     FieldStatus `json:"status"`
	Value      string      `json:"value"`
}

// Fields groups the three identifiers captured per position
type Fields struct {
	AssetTag     FieldState `json:"assetTag"`
	ModelID      FieldState `json:"modelId"`
	SerialNumber FieldState `json:"serialNumber"`
}

// AllCaptured reports whether every field is captured
func (f Fields) AllCaptured() bool {
	return f.ModelID.Status == FieldCaptured &&
		f.SerialNumber.Status == FieldCaptured &&
		f.AssetTag.Status == FieldCaptured
}

func idleFields() Fields {
	idle := FieldState{Status: FieldIdle}
	return Fields{AssetTag: idle, ModelID: idle, SerialNumber: idle}
}

// Photo is the evidence image attached to a capture
type Photo struct {
	CapturedAt time.Time          `json:"captured_at"`
	Method     domain.PhotoMethod `json:"method"`
	URL        string             `json:"url"`
}

// Snapshot is the state of a running scan at one tick
type Snapshot struct {
	Fields   Fields  `json:"fields"`
	Phase    Phase   `json:"phase"`
	Photo    *Photo  `json:"photo,omitempty"`
	Progress float64 `json:"progress"`
}

// Random is the randomness source of the simulator. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// Options tune the simulator cadence and randomness
type Options struct {
	Interval time.Duration
	Now      func() time.Time
	Rand     Random
	WarmUp   time.Duration
}

// DefaultOptions returns the cadence used by the app
func DefaultOptions() Options {
	return Options{
		Interval: 100 * time.Millisecond,
		Now:      time.Now,
		Rand:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5ca11)),
		WarmUp:   500 * time.Millisecond,
	}
}

// Simulator produces fake recognition results over time
type Simulator struct {
	opts Options
}

// NewSimulator creates a simulator; zero option fields take their defaults
func NewSimulator(opts Options) *Simulator {
	def := DefaultOptions()
	if opts.Interval <= 0 {
		opts.Interval = def.Interval
	}
	if opts.Now == nil {
		opts.Now = def.Now
	}
	if opts.Rand == nil {
		opts.Rand = def.Rand
	}
	if opts.WarmUp < 0 {
		opts.WarmUp = 0
	}
	return &Simulator{opts: opts}
}

// mockReading is the set of values the scan will reveal
type mockReading struct {
	assetTag     string
	modelID      string
	serialNumber string
}

func (s *Simulator) mockReading() mockReading {
	return mockReading{
		assetTag:     s.digits(6),
		modelID:      KnownModels[s.opts.Rand.IntN(len(KnownModels))],
		serialNumber: "AU0A" + s.digits(10),
	}
}

func (s *Simulator) digits(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + s.opts.Rand.IntN(10)))
	}
	return b.String()
}

// Start begins a scan. The returned task runs until it completes, Cancel is
// called, or ctx is done.
func (s *Simulator) Start(ctx context.Context) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		cancel:  cancel,
		done:    make(chan struct{}),
		updates: make(chan Snapshot, 1),
	}
	go s.run(ctx, t)
	return t
}

func (s *Simulator) run(ctx context.Context, t *Task) {
	defer close(t.done)
	defer close(t.updates)

	reading := s.mockReading()
	scanning := FieldState{Status: FieldScanning}
	snap := Snapshot{
		Fields: Fields{AssetTag: scanning, ModelID: scanning, SerialNumber: scanning},
		Phase:  PhaseInitializing,
	}
	t.publish(snap)

	if s.opts.WarmUp > 0 {
		warmUp := time.NewTimer(s.opts.WarmUp)
		select {
		case <-ctx.Done():
			warmUp.Stop()
			t.finish(ctx.Err())
			return
		case <-warmUp.C:
		}
	}

	snap.Phase = PhaseDetecting
	t.publish(snap)

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Logger.Debug("Scan cancelled", "progress", snap.Progress)
			t.finish(ctx.Err())
			return
		case <-ticker.C:
		}

		snap.Progress += 5 + s.opts.Rand.Float64()*15
		if snap.Progress >= 100 {
			snap.Progress = 100
		}
		snap.Fields = fieldsAt(snap.Progress, reading)

		if snap.Progress >= 100 {
			now := s.opts.Now()
			snap.Photo = &Photo{
				CapturedAt: now,
				Method:     domain.PhotoScan,
				URL:        PhotoURL("Scanned Image", now),
			}
			snap.Phase = PhaseCompleted
			t.publish(snap)
			logging.Logger.Debug("Scan completed", "model_id", reading.modelID)
			t.finish(nil)
			return
		}
		t.publish(snap)
	}
}

func fieldsAt(progress float64, r mockReading) Fields {
	state := func(value string) FieldState {
		if progress >= captureThreshold {
			return FieldState{Confidence: progress, Status: FieldCaptured, Value: value}
		}
		return FieldState{Confidence: progress, Status: FieldScanning}
	}
	return Fields{
		AssetTag:     state(r.assetTag),
		ModelID:      state(r.modelID),
		SerialNumber: state(r.serialNumber),
	}
}

// PhotoURL returns the placeholder image URL for a simulated photo
func PhotoURL(caption string, at time.Time) string {
	text := strings.ReplaceAll(fmt.Sprintf("%s %s", caption, at.Format("15:04:05")), " ", "+")
	return "https://placehold.co/600x400/grey/white?text=" + text
}

// Task is a running scan
type Task struct {
	cancel  context.CancelFunc
	done    chan struct{}
	err     error
	last    Snapshot
	mu      sync.Mutex
	updates chan Snapshot
}

// Updates delivers snapshots as the scan progresses. A slow reader only
// misses intermediate snapshots; the channel is closed when the task ends.
func (t *Task) Updates() <-chan Snapshot {
	return t.updates
}

// Done is closed when the task ends
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Cancel stops the scan. Safe to call more than once.
func (t *Task) Cancel() {
	t.cancel()
}

// Wait blocks until the task ends and returns its last snapshot
func (t *Task) Wait() Snapshot {
	<-t.done
	return t.Snapshot()
}

// Snapshot returns the latest published snapshot
func (t *Task) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// Err returns the cancellation cause, or nil when the scan completed
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Task) publish(s Snapshot) {
	t.mu.Lock()
	t.last = s
	t.mu.Unlock()

	// Only the run goroutine sends, so dropping the stale value always
	// makes room.
	for {
		select {
		case t.updates <- s:
			return
		default:
		}
		select {
		case <-t.updates:
		default:
		}
	}
}

func (t *Task) finish(err error) {
	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
	t.cancel()
}
