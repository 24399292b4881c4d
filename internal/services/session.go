package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ports"
	"github.com/renato0307/fieldscan/logging"
)

// SessionService handles the lifecycle of scan sessions
type SessionService struct {
	connectivity ports.ConnectivityChecker
	fallback     string
	intn         func(int) int
	newID        func() string
	now          func() time.Time
	outbox       ports.Outbox
	retryDelay   time.Duration
	retryTries   int
	sessionRepo  ports.SessionRepository
	siteRepo     ports.SiteReader
}

// SessionOption customises a SessionService
type SessionOption func(*SessionService)

// WithClock sets the time source
func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionService) { s.now = now }
}

// WithFallback sets the configuration policy for sites without one.
// intn picks the random configuration; nil uses math/rand.
func WithFallback(policy string, intn func(int) int) SessionOption {
	return func(s *SessionService) {
		s.fallback = policy
		if intn != nil {
			s.intn = intn
		}
	}
}

// WithListRetry sets how often listing is attempted and the first backoff
func WithListRetry(tries int, baseDelay time.Duration) SessionOption {
	return func(s *SessionService) {
		s.retryTries = tries
		s.retryDelay = baseDelay
	}
}

// WithIDGenerator sets the session id generator
func WithIDGenerator(newID func() string) SessionOption {
	return func(s *SessionService) { s.newID = newID }
}

// NewSessionService creates a new SessionService
func NewSessionService(
	sessionRepo ports.SessionRepository,
	siteRepo ports.SiteReader,
	outbox ports.Outbox,
	connectivity ports.ConnectivityChecker,
	opts ...SessionOption,
) *SessionService {
	s := &SessionService{
		connectivity: connectivity,
		fallback:     domain.FallbackRandom,
		intn:         rand.IntN,
		newID:        func() string { return uuid.New().String() },
		now:          func() time.Time { return time.Now().UTC() },
		outbox:       outbox,
		retryDelay:   time.Second,
		retryTries:   3,
		sessionRepo:  sessionRepo,
		siteRepo:     siteRepo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configurations returns the configurations offered at a site, generating
// one from the fallback policy when the site has none
func (s *SessionService) Configurations(site domain.Site) ([]domain.Configuration, bool, error) {
	choices, fallback, err := domain.SiteConfigurations(site, s.fallback, s.intn)
	if err != nil {
		return nil, false, err
	}
	if fallback {
		logging.Logger.Warn("Site has no usable configuration, using fallback",
			"site", site.Code,
			"policy", s.fallback,
			"configuration", choices[0].Name)
	}
	return choices, fallback, nil
}

// CreateSession starts an active session at a site with the expanded layout
// of the chosen configuration
func (s *SessionService) CreateSession(ctx context.Context, params CreateSessionParams) (*domain.Session, error) {
	logging.Logger.Info("Creating session", "site", params.SiteID, "configuration", params.Configuration)

	site, err := s.siteRepo.GetSite(ctx, params.SiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load site: %w", err)
	}

	choices, _, err := s.Configurations(*site)
	if err != nil {
		return nil, err
	}
	cfg, err := domain.SelectConfiguration(choices, params.Configuration, site.Brand)
	if err != nil {
		return nil, err
	}
	layout, err := domain.ExpandLayout(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to expand layout: %w", err)
	}

	now := s.now()
	session := domain.Session{
		Brand:        site.Brand,
		ConfigID:     cfg.ID,
		ConfigName:   cfg.Name,
		ID:           s.newID(),
		LastUpdated:  now,
		Layout:       layout,
		ScanResults:  []domain.ScanResult{},
		SessionNotes: params.Notes,
		SiteCode:     site.Code,
		SiteID:       site.ID,
		SiteName:     site.Name,
		StartTime:    now,
		Status:       domain.StatusActive,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		logging.Logger.Error("Failed to create session", "site", site.Code, "error", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	logging.Logger.Info("Session created",
		"session", session.ID,
		"site", site.Code,
		"configuration", cfg.Name,
		"positions", len(layout))
	return &session, nil
}

// GetSession returns a normalized session. Scan results still queued in
// the outbox are included.
func (s *SessionService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.sessionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Normalize()

	entry, err := s.outbox.Latest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read queued updates: %w", err)
	}
	if entry != nil {
		snapshot, err := decodeSnapshot(entry.Payload)
		if err != nil {
			return nil, err
		}
		mergeSnapshot(session, snapshot)
	}
	return session, nil
}

// GetProgress computes the completion metrics of a session
func (s *SessionService) GetProgress(ctx context.Context, id string) (domain.Progress, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return domain.Progress{}, err
	}
	return session.Progress(), nil
}

// ListSessions lists sessions, retrying with exponential backoff while the
// store reports transient errors
func (s *SessionService) ListSessions(ctx context.Context, filter ports.SessionFilter) ([]domain.Session, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retryDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0

	tries := s.retryTries
	if tries < 1 {
		tries = 1
	}

	sessions, err := backoff.Retry(ctx, func() ([]domain.Session, error) {
		sessions, err := s.sessionRepo.List(ctx, filter)
		if err != nil && !errors.Is(err, domain.ErrTransient) {
			return nil, backoff.Permanent(err)
		}
		return sessions, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(tries)),
		backoff.WithNotify(func(err error, wait time.Duration) {
			logging.Logger.Warn("Listing sessions failed, retrying", "error", err, "wait", wait)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	for i := range sessions {
		sessions[i].Normalize()
	}
	return sessions, nil
}

// UpdateSessionWithScan stores a result for one position, replacing any
// earlier result for it. While offline the updated session is queued in the
// outbox instead of being written.
func (s *SessionService) UpdateSessionWithScan(ctx context.Context, sessionID string, result domain.ScanResult) (*ScanUpdate, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	pos, ok := session.Position(result.PositionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPosition, result.PositionID)
	}
	if result.PositionLabel == "" {
		result.PositionLabel = pos.Label
	}

	online := s.connectivity.Online(ctx)
	result.Synced = online

	replaced := session.UpsertResult(result)
	session.LastUpdated = s.now()

	update := &ScanUpdate{Replaced: replaced, Session: session}
	if online {
		if err := s.sessionRepo.Update(ctx, *session); err != nil {
			logging.Logger.Error("Failed to save scan", "session", sessionID, "position", pos.ID, "error", err)
			return nil, fmt.Errorf("failed to save scan: %w", err)
		}
		logging.Logger.Info("Scan saved", "session", sessionID, "position", pos.ID, "replaced", replaced)
		return update, nil
	}

	if err := s.enqueue(ctx, *session); err != nil {
		return nil, err
	}
	update.Queued = true
	logging.Logger.Info("Offline, scan queued", "session", sessionID, "position", pos.ID)
	return update, nil
}

func (s *SessionService) enqueue(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session snapshot: %w", err)
	}
	if _, err := s.outbox.Enqueue(ctx, session.ID, payload); err != nil {
		logging.Logger.Error("Failed to queue session update", "session", session.ID, "error", err)
		return fmt.Errorf("failed to queue session update: %w", err)
	}
	return nil
}

// UpdateNotes replaces the free-text notes of a session
func (s *SessionService) UpdateNotes(ctx context.Context, id, notes string) (*domain.Session, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	session.SessionNotes = notes
	session.LastUpdated = s.now()
	if err := s.sessionRepo.Update(ctx, *session); err != nil {
		return nil, fmt.Errorf("failed to update notes: %w", err)
	}
	return session, nil
}

// CompleteSession marks a session completed. Sessions with positions
// still missing a complete result are refused unless force is set.
func (s *SessionService) CompleteSession(ctx context.Context, id string, force bool) (*domain.Session, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	progress := session.Progress()
	if !force && !progress.IsComplete() {
		return nil, fmt.Errorf("%w: %d of %d positions scanned",
			domain.ErrSessionIncomplete, progress.TotalCompleted, progress.TotalPositions)
	}

	if err := session.Transition(domain.StatusCompleted, s.now()); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Update(ctx, *session); err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	logging.Logger.Info("Session completed",
		"session", id,
		"forced", force && !progress.IsComplete(),
		"duration", session.Duration())
	return session, nil
}

// MarkAsExported marks a session exported
func (s *SessionService) MarkAsExported(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := session.Transition(domain.StatusExported, s.now()); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Update(ctx, *session); err != nil {
		return nil, fmt.Errorf("failed to mark session exported: %w", err)
	}
	logging.Logger.Info("Session exported", "session", id)
	return session, nil
}
