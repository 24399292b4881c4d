package services

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ports"
	"github.com/renato0307/fieldscan/internal/scanner"
)

// ScanService turns captures into stored scan results
type ScanService struct {
	connectivity ports.ConnectivityChecker
	now          func() time.Time
	sessions     *SessionService
	simulator    *scanner.Simulator
}

// NewScanService creates a new ScanService
func NewScanService(sessions *SessionService, connectivity ports.ConnectivityChecker, simulator *scanner.Simulator) *ScanService {
	return &ScanService{
		connectivity: connectivity,
		now:          func() time.Time { return time.Now().UTC() },
		sessions:     sessions,
		simulator:    simulator,
	}
}

// StartScan starts a simulated scan. Cancel the task to abort it.
func (s *ScanService) StartScan(ctx context.Context) *scanner.Task {
	return s.simulator.Start(ctx)
}

// NewCapture returns a capture for a position, pre-filled from its earlier
// result when there is one
func (s *ScanService) NewCapture(ctx context.Context, sessionID, positionID string) (*scanner.Capture, domain.Position, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, domain.Position{}, err
	}
	pos, ok := session.Position(positionID)
	if !ok {
		return nil, domain.Position{}, fmt.Errorf("%w: %s", domain.ErrUnknownPosition, positionID)
	}
	if prev, ok := session.ResultFor(positionID); ok {
		return scanner.FromResult(prev), pos, nil
	}
	return scanner.NewCapture(), pos, nil
}

// SaveCapture validates a capture and stores it as the position's result.
// Incomplete captures are refused with domain.ErrIncompleteCapture.
func (s *ScanService) SaveCapture(
	ctx context.Context,
	sessionID, positionID string,
	capture *scanner.Capture,
	notes string,
) (*ScanUpdate, error) {
	if err := capture.CheckReady(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	pos, ok := session.Position(positionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPosition, positionID)
	}

	result, err := capture.ToScanResult(pos, notes, s.now(), s.connectivity.Online(ctx))
	if err != nil {
		return nil, err
	}
	return s.sessions.UpdateSessionWithScan(ctx, sessionID, result)
}
