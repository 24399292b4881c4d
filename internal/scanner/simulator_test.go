package scanner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/fieldscan/internal/domain"
)

// fixedRand always returns the same values
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return r.n % n }

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		Interval: time.Millisecond,
		Now:      func() time.Time { return fixedNow },
		Rand:     fixedRand{f: 0, n: 3},
		WarmUp:   0,
	}
}

func TestSimulatorCompletes(t *testing.T) {
	sim := NewSimulator(testOptions())
	task := sim.Start(context.Background())

	var last float64
	for snap := range task.Updates() {
		assert.GreaterOrEqual(t, snap.Progress, last, "progress never decreases")
		assert.LessOrEqual(t, snap.Progress, 100.0)
		last = snap.Progress
	}

	final := task.Wait()
	require.NoError(t, task.Err())
	assert.Equal(t, PhaseCompleted, final.Phase)
	assert.Equal(t, 100.0, final.Progress)
	assert.True(t, final.Fields.AllCaptured())
	assert.Equal(t, "43BDL4550D/00", final.Fields.ModelID.Value)
	assert.Equal(t, "AU0A3333333333", final.Fields.SerialNumber.Value)
	assert.Equal(t, "333333", final.Fields.AssetTag.Value)

	require.NotNil(t, final.Photo)
	assert.Equal(t, domain.PhotoScan, final.Photo.Method)
	assert.Equal(t, fixedNow, final.Photo.CapturedAt)
	assert.Contains(t, final.Photo.URL, "placehold.co")
}

func TestSimulatorValuesHiddenBelowThreshold(t *testing.T) {
	reading := mockReading{assetTag: "123456", modelID: "43BDL4550D/00", serialNumber: "AU0A1234567890"}

	below := fieldsAt(90, reading)
	assert.Equal(t, FieldScanning, below.ModelID.Status)
	assert.Empty(t, below.ModelID.Value)
	assert.Equal(t, 90.0, below.ModelID.Confidence)

	at := fieldsAt(95, reading)
	assert.Equal(t, FieldCaptured, at.SerialNumber.Status)
	assert.Equal(t, "AU0A1234567890", at.SerialNumber.Value)
}

func TestSimulatorCancel(t *testing.T) {
	opts := testOptions()
	opts.WarmUp = time.Hour
	task := NewSimulator(opts).Start(context.Background())

	task.Cancel()
	task.Cancel()

	final := task.Wait()
	assert.ErrorIs(t, task.Err(), context.Canceled)
	assert.Equal(t, PhaseInitializing, final.Phase)
	assert.Nil(t, final.Photo)
}

func TestSimulatorStopsWithContext(t *testing.T) {
	opts := testOptions()
	opts.Interval = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	task := NewSimulator(opts).Start(ctx)

	cancel()

	select {
	case <-task.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("task did not stop after context cancellation")
	}
	assert.ErrorIs(t, task.Err(), context.Canceled)
	assert.NotEqual(t, PhaseCompleted, task.Snapshot().Phase)
}

func TestNewSimulatorDefaults(t *testing.T) {
	sim := NewSimulator(Options{})
	assert.Equal(t, 100*time.Millisecond, sim.opts.Interval)
	assert.NotNil(t, sim.opts.Rand)
	assert.NotNil(t, sim.opts.Now)
}
