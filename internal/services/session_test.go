package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ports"
	portsmocks "github.com/renato0307/fieldscan/internal/ports/mocks"
)

var testNow = time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)

func testSite() domain.Site {
	return domain.Site{
		Address: "1 High Street",
		Brand:   domain.BrandCoral,
		Code:    "L1234",
		ID:      "site-1",
		Name:    "Leeds Central",
	}
}

// testSession builds an active session laid out as "5 over 1"
func testSession(t *testing.T) domain.Session {
	t.Helper()
	cfg, err := domain.GenerateConfiguration(domain.Config5Over1, domain.BrandCoral)
	require.NoError(t, err)
	layout, err := domain.ExpandLayout(cfg)
	require.NoError(t, err)

	return domain.Session{
		Brand:       domain.BrandCoral,
		ConfigID:    cfg.ID,
		ConfigName:  cfg.Name,
		ID:          "session-1",
		LastUpdated: testNow,
		Layout:      layout,
		ScanResults: []domain.ScanResult{},
		SiteCode:    "L1234",
		SiteID:      "site-1",
		SiteName:    "Leeds Central",
		StartTime:   testNow,
		Status:      domain.StatusActive,
	}
}

func completeResult(positionID string) domain.ScanResult {
	return domain.ScanResult{
		AssetTag:      "123456",
		CaptureMethod: domain.CaptureManual,
		Confidence:    100,
		ModelID:       "43BDL4550D/00",
		PhotoURL:      "https://placehold.co/400x300?text=Photo",
		PositionID:    positionID,
		SerialNumber:  "AU0A1234567890",
		Timestamp:     "2024-03-14T09:30:00.000Z",
	}
}

// returnCopy makes Get hand out a fresh copy on every call
func returnCopy(session domain.Session) func(context.Context, string) (*domain.Session, error) {
	return func(context.Context, string) (*domain.Session, error) {
		data, _ := json.Marshal(session)
		var out domain.Session
		_ = json.Unmarshal(data, &out)
		return &out, nil
	}
}

type sessionMocks struct {
	connectivity *portsmocks.MockConnectivityChecker
	outbox       *portsmocks.MockOutbox
	sessionRepo  *portsmocks.MockSessionRepository
	siteRepo     *portsmocks.MockSiteRepository
}

func newSessionService(t *testing.T, opts ...SessionOption) (*SessionService, sessionMocks) {
	m := sessionMocks{
		connectivity: portsmocks.NewMockConnectivityChecker(t),
		outbox:       portsmocks.NewMockOutbox(t),
		sessionRepo:  portsmocks.NewMockSessionRepository(t),
		siteRepo:     portsmocks.NewMockSiteRepository(t),
	}
	m.outbox.EXPECT().Latest(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	opts = append([]SessionOption{
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string { return "session-1" }),
	}, opts...)
	return NewSessionService(m.sessionRepo, m.siteRepo, m.outbox, m.connectivity, opts...), m
}

func TestCreateSession_UsesFallbackConfiguration(t *testing.T) {
	service, m := newSessionService(t, WithFallback(domain.Config5Over1, nil))

	site := testSite()
	m.siteRepo.EXPECT().GetSite(mock.Anything, "site-1").Return(&site, nil)

	var stored domain.Session
	m.sessionRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, session domain.Session) { stored = session }).
		Return(nil)

	session, err := service.CreateSession(context.Background(), CreateSessionParams{SiteID: "site-1"})
	require.NoError(t, err)

	cfg, err := domain.GenerateConfiguration(domain.Config5Over1, domain.BrandCoral)
	require.NoError(t, err)

	assert.Equal(t, "session-1", session.ID)
	assert.Equal(t, domain.StatusActive, session.Status)
	assert.Equal(t, testNow, session.StartTime)
	assert.Equal(t, "5-over-1-coral", session.ConfigID)
	assert.Equal(t, "L1234", session.SiteCode)
	assert.Len(t, session.Layout, cfg.TotalPositions)
	assert.Empty(t, session.ScanResults)
	assert.NotNil(t, session.ScanResults)
	assert.Equal(t, session.ID, stored.ID)
}

func TestCreateSession_RandomFallbackUsesPicker(t *testing.T) {
	service, m := newSessionService(t, WithFallback(domain.FallbackRandom, func(n int) int { return n - 1 }))

	site := testSite()
	m.siteRepo.EXPECT().GetSite(mock.Anything, "site-1").Return(&site, nil)
	m.sessionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	session, err := service.CreateSession(context.Background(), CreateSessionParams{SiteID: "site-1"})
	require.NoError(t, err)

	names := domain.ConfigurationNames()
	assert.Equal(t, names[len(names)-1], session.ConfigName)
}

func TestCreateSession_SiteNotFound(t *testing.T) {
	service, m := newSessionService(t)

	m.siteRepo.EXPECT().GetSite(mock.Anything, "missing").Return(nil, domain.ErrSiteNotFound)

	_, err := service.CreateSession(context.Background(), CreateSessionParams{SiteID: "missing"})
	assert.ErrorIs(t, err, domain.ErrSiteNotFound)
}

func TestUpdateSessionWithScan_ReplacesExistingResult(t *testing.T) {
	service, m := newSessionService(t)

	session := testSession(t)
	first := completeResult(session.Layout[0].ID)
	first.SerialNumber = "AU0A0000000000"
	session.ScanResults = []domain.ScanResult{first}

	m.sessionRepo.EXPECT().Get(mock.Anything, "session-1").RunAndReturn(returnCopy(session))
	m.connectivity.EXPECT().Online(mock.Anything).Return(true)

	var stored domain.Session
	m.sessionRepo.EXPECT().Update(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s domain.Session) { stored = s }).
		Return(nil)

	update, err := service.UpdateSessionWithScan(context.Background(), "session-1", completeResult(session.Layout[0].ID))
	require.NoError(t, err)

	assert.True(t, update.Replaced)
	assert.False(t, update.Queued)
	require.Len(t, stored.ScanResults, 1)
	assert.Equal(t, "AU0A1234567890", stored.ScanResults[0].SerialNumber)
	assert.Equal(t, session.Layout[0].Label, stored.ScanResults[0].PositionLabel)
	assert.True(t, stored.ScanResults[0].Synced)
}

func TestUpdateSessionWithScan_AppendsNewPosition(t *testing.T) {
	service, m := newSessionService(t)

	session := testSession(t)
	session.ScanResults = []domain.ScanResult{completeResult(session.Layout[0].ID)}

	m.sessionRepo.EXPECT().Get(mock.Anything, "session-1").RunAndReturn(returnCopy(session))
	m.connectivity.EXPECT().Online(mock.Anything).Return(true)
	m.sessionRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return len(s.ScanResults) == 2
	})).Return(nil)

	update, err := service.UpdateSessionWithScan(context.Background(), "session-1", completeResult(session.Layout[1].ID))
	require.NoError(t, err)
	assert.False(t, update.Replaced)
	assert.Equal(t, 2, update.Session.Progress().TotalCompleted)
}

func TestUpdateSessionWithScan_UnknownPosition(t *testing.T) {
	service, m := newSessionService(t)

	m.sessionRepo.EXPECT().Get(mock.Anything, "session-1").RunAndReturn(returnCopy(testSession(t)))

	_, err := service.UpdateSessionWithScan(context.Background(), "session-1", completeResult("nowhere"))
	assert.ErrorIs(t, err, domain.ErrUnknownPosition)
}

func TestUpdateSessionWithScan_OfflineQueuesSnapshot(t *testing.T) {
	service, m := newSessionService(t)

	session := testSession(t)
	m.sessionRepo.EXPECT().Get(mock.Anything, "session-1").RunAndReturn(returnCopy(session))
	m.connectivity.EXPECT().Online(mock.Anything).Return(false)

	var payload []byte
	m.outbox.EXPECT().Enqueue(mock.Anything, "session-1", mock.Anything).
		Run(func(_ context.Context, _ string, p []byte) { payload = p }).
		Return(&ports.OutboxEntry{ID: "entry-1", Seq: 1, SessionID: "session-1"}, nil)

	update, err := service.UpdateSessionWithScan(context.Background(), "session-1", completeResult(session.Layout[0].ID))
	require.NoError(t, err)
	assert.True(t, update.Queued)

	var queued domain.Session
	require.NoError(t, json.Unmarshal(payload, &queued))
	require.Len(t, queued.ScanResults, 1)
	assert.False(t, queued.ScanResults[0].Synced)
	m.sessionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCompleteSession(t *testing.T) {
	tests := []struct {
		name    string
		force   bool
		scanAll bool
		status  domain.SessionStatus
		wantErr error
	}{
		{name: "all positions scanned", scanAll: true, status: domain.StatusActive},
		{name: "incomplete is refused", status: domain.StatusActive, wantErr: domain.ErrSessionIncomplete},
		{name: "incomplete with force", force: true, status: domain.StatusActive},
		{name: "exported cannot go back", force: true, status: domain.StatusExported, wantErr: domain.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newSessionService(t)

			session := testSession(t)
			session.Status = tt.status
			if tt.scanAll {
				for _, p := range session.Layout {
					session.ScanResults = append(session.ScanResults, completeResult(p.ID))
				}
			}
			m.sessionRepo.EXPECT().Get(mock.Anything, "session-1").RunAndReturn(returnCopy(session))
			if tt.wantErr == nil {
				m.sessionRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
					return s.Status == domain.StatusCompleted && s.EndTime != nil
				})).Return(nil)
			}

			completed, err := service.CompleteSession(context.Background(), "session-1", tt.force)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCompleted, completed.Status)
			assert.Equal(t, testNow, *completed.EndTime)
		})
	}
}

func TestMarkAsExported(t *testing.T) {
	service, m := newSessionService(t)

	session := testSession(t)
	session.Status = domain.StatusCompleted
	m.sessionRepo.EXPECT().Get(mock.Anything, "session-1").RunAndReturn(returnCopy(session))
	m.sessionRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	exported, err := service.MarkAsExported(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExported, exported.Status)
	require.NotNil(t, exported.ExportedAt)
	assert.Equal(t, testNow, *exported.ExportedAt)
}

func TestListSessions_RetriesTransientErrors(t *testing.T) {
	service, m := newSessionService(t, WithListRetry(3, time.Millisecond))

	m.sessionRepo.EXPECT().List(mock.Anything, ports.SessionFilter{}).
		Return(nil, domain.ErrTransient).Twice()
	m.sessionRepo.EXPECT().List(mock.Anything, ports.SessionFilter{}).
		Return([]domain.Session{{ID: "session-1", Status: "bogus"}}, nil).Once()

	sessions, err := service.ListSessions(context.Background(), ports.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, domain.StatusActive, sessions[0].Status)
	assert.NotNil(t, sessions[0].ScanResults)
}

func TestListSessions_GivesUpAfterMaxTries(t *testing.T) {
	service, m := newSessionService(t, WithListRetry(3, time.Millisecond))

	m.sessionRepo.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, domain.ErrTransient).Times(3)

	_, err := service.ListSessions(context.Background(), ports.SessionFilter{})
	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestListSessions_DoesNotRetryPermanentErrors(t *testing.T) {
	service, m := newSessionService(t, WithListRetry(3, time.Millisecond))

	boom := errors.New("disk on fire")
	m.sessionRepo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, boom).Once()

	_, err := service.ListSessions(context.Background(), ports.SessionFilter{})
	assert.ErrorIs(t, err, boom)
}

func TestUpdateNotes(t *testing.T) {
	service, m := newSessionService(t)

	m.sessionRepo.EXPECT().Get(mock.Anything, "session-1").RunAndReturn(returnCopy(testSession(t)))
	m.sessionRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(s domain.Session) bool {
		return s.SessionNotes == "Gantry light flickering"
	})).Return(nil)

	session, err := service.UpdateNotes(context.Background(), "session-1", "Gantry light flickering")
	require.NoError(t, err)
	assert.Equal(t, "Gantry light flickering", session.SessionNotes)
}
