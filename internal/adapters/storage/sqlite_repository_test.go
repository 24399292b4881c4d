package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ports"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testSession(t *testing.T, id string) domain.Session {
	t.Helper()
	cfg, err := domain.GenerateConfiguration(domain.Config5Over1, domain.BrandCoral)
	require.NoError(t, err)
	layout, err := domain.ExpandLayout(cfg)
	require.NoError(t, err)

	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return domain.Session{
		Brand:       domain.BrandCoral,
		ConfigID:    cfg.ID,
		ConfigName:  cfg.Name,
		ID:          id,
		LastUpdated: start,
		Layout:      layout,
		ScanResults: []domain.ScanResult{},
		SiteCode:    "C1234",
		SiteID:      "site-1",
		SiteName:    "High Street",
		StartTime:   start,
		Status:      domain.StatusActive,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	session := testSession(t, "s-1")
	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.ConfigName, got.ConfigName)
	assert.Len(t, got.Layout, 18)
	assert.Equal(t, domain.RowTop, got.Layout[0].Row)
	assert.Empty(t, got.ScanResults)
	assert.NotNil(t, got.ScanResults, "scan results should be normalized to an empty slice")
	assert.True(t, session.StartTime.Equal(got.StartTime))
}

func TestSessionGetNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionUpdateReplacesResults(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	session := testSession(t, "s-1")
	require.NoError(t, repo.Create(ctx, session))

	session.UpsertResult(domain.ScanResult{
		AssetTag:     "123456",
		ModelID:      "43BDL4550D/00",
		PositionID:   session.Layout[0].ID,
		SerialNumber: "AU0A1234567890",
		Timestamp:    "2024-05-01T09:05:00Z",
	})
	require.NoError(t, session.Transition(domain.StatusCompleted, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Update(ctx, session))

	got, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, got.ScanResults, 1)
	assert.Equal(t, "43BDL4550D/00", got.ScanResults[0].ModelID)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	require.NotNil(t, got.EndTime)
}

func TestSessionUpdateNotFound(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Update(context.Background(), testSession(t, "missing"))
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionListFilters(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := testSession(t, "s-1")
	second := testSession(t, "s-2")
	second.StartTime = first.StartTime.Add(time.Hour)
	second.SiteID = "site-2"
	third := testSession(t, "s-3")
	third.StartTime = first.StartTime.Add(2 * time.Hour)
	third.Status = domain.StatusExported

	for _, s := range []domain.Session{first, second, third} {
		require.NoError(t, repo.Create(ctx, s))
	}

	tests := []struct {
		name   string
		filter ports.SessionFilter
		want   []string
	}{
		{name: "all newest first", filter: ports.SessionFilter{}, want: []string{"s-3", "s-2", "s-1"}},
		{name: "by site", filter: ports.SessionFilter{SiteID: "site-1"}, want: []string{"s-3", "s-1"}},
		{name: "by status", filter: ports.SessionFilter{Status: domain.StatusActive}, want: []string{"s-2", "s-1"}},
		{name: "limit", filter: ports.SessionFilter{Limit: 1}, want: []string{"s-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, len(sessions))
			for i, s := range sessions {
				ids[i] = s.ID
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSiteSaveAndLookup(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cfg, err := domain.GenerateConfiguration(domain.Config4Over4, domain.BrandLadbrokes)
	require.NoError(t, err)

	site := domain.Site{
		Address:        "1 Market Square",
		Brand:          domain.BrandLadbrokes,
		Code:           "L1234",
		Configurations: []domain.Configuration{cfg},
		ID:             "site-1",
		Name:           "Market Square",
		SiteContacts:   []domain.Contact{{Name: "Sam", Email: "sam@example.com"}},
	}
	require.NoError(t, repo.SaveSite(ctx, site))

	byID, err := repo.GetSite(ctx, "site-1")
	require.NoError(t, err)
	assert.Equal(t, "Market Square", byID.Name)
	require.Len(t, byID.Configurations, 1)
	assert.True(t, byID.Configurations[0].Usable())

	byCode, err := repo.GetSiteByCode(ctx, " l1234 ")
	require.NoError(t, err)
	assert.Equal(t, "site-1", byCode.ID)

	site.Name = "Market Square (rebuilt)"
	require.NoError(t, repo.SaveSite(ctx, site))

	sites, err := repo.ListSites(ctx)
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, "Market Square (rebuilt)", sites[0].Name)

	visited := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)
	require.NoError(t, repo.TouchSite(ctx, "site-1", visited))
	byID, err = repo.GetSite(ctx, "site-1")
	require.NoError(t, err)
	require.NotNil(t, byID.LastVisited)
	assert.True(t, visited.Equal(*byID.LastVisited))
}

func TestSiteNotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.GetSite(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrSiteNotFound)

	err = repo.TouchSite(ctx, "nope", time.Now())
	assert.ErrorIs(t, err, domain.ErrSiteNotFound)
}

func TestOutboxOrdering(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, payload := range []string{"a1", "a2", "a3"} {
		_, err := repo.Enqueue(ctx, "a", []byte(payload))
		require.NoError(t, err)
	}
	entry, err := repo.Enqueue(ctx, "b", []byte("b1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.Seq)

	count, err := repo.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	pending, err := repo.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending["a"], 3)
	for i, e := range pending["a"] {
		assert.Equal(t, int64(i+1), e.Seq)
		assert.Equal(t, []string{"a1", "a2", "a3"}[i], string(e.Payload))
	}

	require.NoError(t, repo.Remove(ctx, pending["a"][0].ID))
	count, err = repo.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestOutboxLatest(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	entry, err := repo.Latest(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, entry)

	for _, payload := range []string{"a1", "a2"} {
		_, err := repo.Enqueue(ctx, "a", []byte(payload))
		require.NoError(t, err)
	}
	_, err = repo.Enqueue(ctx, "b", []byte("b1"))
	require.NoError(t, err)

	entry, err = repo.Latest(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, int64(2), entry.Seq)
	assert.Equal(t, "a2", string(entry.Payload))
}

func TestExportTemplates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	cfg := domain.DefaultExportConfig()
	require.NoError(t, repo.SaveExportTemplate(ctx, domain.ExportTemplate{Name: "weekly", Config: cfg}))

	cfg.SortBy = domain.SortByModel
	require.NoError(t, repo.SaveExportTemplate(ctx, domain.ExportTemplate{Name: "weekly", Config: cfg}))

	templates, err := repo.ListExportTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	got, err := repo.GetExportTemplate(ctx, "weekly")
	require.NoError(t, err)
	assert.Equal(t, domain.SortByModel, got.Config.SortBy)
	assert.True(t, got.Config.Columns[domain.ColumnModelID])

	_, err = repo.GetExportTemplate(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestActivateExcelTemplateKeepsOneActive(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	active, err := repo.ActiveExcelTemplate(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	require.NoError(t, repo.ActivateExcelTemplate(ctx, domain.ExcelTemplate{ID: "t1", Name: "first", FilePath: "/tmp/a.xlsx"}))
	require.NoError(t, repo.ActivateExcelTemplate(ctx, domain.ExcelTemplate{ID: "t2", Name: "second", FilePath: "/tmp/b.xlsx"}))

	active, err = repo.ActiveExcelTemplate(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "t2", active.ID)

	var activeCount int64
	require.NoError(t, repo.db.Model(&ExcelTemplateModel{}).Where("is_active = ?", true).Count(&activeCount).Error)
	assert.Equal(t, int64(1), activeCount)
}
