package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/scanner"
)

func newScanService(t *testing.T) (*ScanService, sessionMocks) {
	sessions, m := newSessionService(t)
	service := NewScanService(sessions, m.connectivity, scanner.NewSimulator(scanner.Options{Interval: time.Millisecond, WarmUp: time.Millisecond}))
	service.now = func() time.Time { return testNow }
	return service, m
}

func TestSaveCapture_RefusesIncompleteCapture(t *testing.T) {
	service, _ := newScanService(t)

	capture := scanner.NewCapture()
	capture.ApplyManual("43BDL4550D/00", "AU0A1234567890", "123456")

	_, err := service.SaveCapture(context.Background(), "session-1", "ctv-1", capture, "")
	require.ErrorIs(t, err, domain.ErrIncompleteCapture)
	assert.Contains(t, err.Error(), domain.IncompleteCaptureMessage)
}

func TestSaveCapture_StoresManualEntry(t *testing.T) {
	service, m := newScanService(t)

	session := testSession(t)
	pos := session.Layout[0]

	m.sessionRepo.EXPECT().Get(mock.Anything, "session-1").RunAndReturn(returnCopy(session))
	m.connectivity.EXPECT().Online(mock.Anything).Return(true)

	var stored domain.Session
	m.sessionRepo.EXPECT().Update(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s domain.Session) { stored = s }).
		Return(nil)

	capture := scanner.NewCapture()
	capture.ApplyManual("43bdl4550d/00", "au0a 1234 567890", "12-34-56")
	capture.TakePhoto(domain.PhotoManual, testNow)

	update, err := service.SaveCapture(context.Background(), "session-1", pos.ID, capture, "  mounted high  ")
	require.NoError(t, err)
	assert.False(t, update.Queued)

	require.Len(t, stored.ScanResults, 1)
	r := stored.ScanResults[0]
	assert.Equal(t, "43BDL4550D/00", r.ModelID)
	assert.Equal(t, "AU0A1234567890", r.SerialNumber)
	assert.Equal(t, "123456", r.AssetTag)
	assert.Equal(t, domain.CaptureManual, r.CaptureMethod)
	assert.Equal(t, "mounted high", r.Notes)
	assert.Equal(t, pos.Label, r.PositionLabel)
	assert.Equal(t, "2024-03-14T09:30:00.000Z", r.Timestamp)
	assert.True(t, r.Synced)
}

func TestNewCapture_PrefillsFromEarlierResult(t *testing.T) {
	service, m := newScanService(t)

	session := testSession(t)
	session.ScanResults = []domain.ScanResult{completeResult(session.Layout[2].ID)}
	m.sessionRepo.EXPECT().Get(mock.Anything, "session-1").RunAndReturn(returnCopy(session))

	capture, pos, err := service.NewCapture(context.Background(), "session-1", session.Layout[2].ID)
	require.NoError(t, err)

	assert.Equal(t, session.Layout[2].ID, pos.ID)
	assert.Equal(t, "AU0A1234567890", capture.Fields.SerialNumber.Value)
	assert.True(t, capture.ReadyToSave())
}

func TestStartScan_CompletesWithPhoto(t *testing.T) {
	service, _ := newScanService(t)

	task := service.StartScan(context.Background())
	final := task.Wait()

	assert.Equal(t, scanner.PhaseCompleted, final.Phase)
	assert.True(t, final.Fields.AllCaptured())
	require.NotNil(t, final.Photo)
	assert.Equal(t, domain.PhotoScan, final.Photo.Method)
}
