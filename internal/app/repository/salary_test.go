package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"Salary-Dashboard/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	records []ds.Salary
	skipped int
	err     error
	loads   int
}

func (s *stubSource) Load(ctx context.Context) ([]ds.Salary, int, error) {
	s.loads++
	if s.err != nil {
		return nil, 0, s.err
	}
	return s.records, s.skipped, nil
}

func (s *stubSource) String() string { return "stub://salaries" }

type memoryCache struct {
	items map[string]ds.Dashboard
	ttls  map[string]time.Duration
	gets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string]ds.Dashboard{}, ttls: map[string]time.Duration{}}
}

func (c *memoryCache) GetDashboard(ctx context.Context, key string) (*ds.Dashboard, error) {
	c.gets++
	d, ok := c.items[key]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (c *memoryCache) SaveDashboard(ctx context.Context, key string, d ds.Dashboard, ttl time.Duration) error {
	c.items[key] = d
	c.ttls[key] = ttl
	return nil
}

func salaries() []ds.Salary {
	return []ds.Salary{
		{Year: 2023, Seniority: "junior", Contract: "integral", CompanySize: "pequena", Title: "Data Analyst", USD: 40000, Remote: "presencial", ResidenceISO3: "BRA"},
		{Year: 2024, Seniority: "senior", Contract: "integral", CompanySize: "grande", Title: "Data Scientist", USD: 150000, Remote: "remoto", ResidenceISO3: "USA"},
		{Year: 2024, Seniority: "pleno", Contract: "freelancer", CompanySize: "media", Title: "Data Scientist", USD: 90000, Remote: "remoto", ResidenceISO3: "BRA"},
		{Year: 2025, Seniority: "senior", Contract: "integral", CompanySize: "media", Title: "Data Engineer", USD: 130000, Remote: "hibrido", ResidenceISO3: "DEU"},
	}
}

func TestSalaryRepositoryReload(t *testing.T) {
	src := &stubSource{records: salaries(), skipped: 2}
	repo := NewSalaryRepository(src, nil, 0)

	assert.Empty(t, repo.Snapshot().Records)

	snap, err := repo.Reload(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Records, 4)
	assert.Equal(t, 2, snap.Skipped)
	assert.Equal(t, "stub://salaries", snap.Source)
	assert.Len(t, snap.Version, 12)
	assert.Equal(t, []int{2023, 2024, 2025}, snap.Options.Years)
	assert.Same(t, snap, repo.Snapshot())

	info := snap.Info()
	assert.Equal(t, 4, info.Rows)
	assert.Equal(t, snap.Version, info.Version)
}

func TestSalaryRepositoryReloadKeepsSnapshotOnError(t *testing.T) {
	src := &stubSource{records: salaries()}
	repo := NewSalaryRepository(src, nil, 0)
	first, err := repo.Reload(context.Background())
	require.NoError(t, err)

	src.err = errors.New("boom")
	_, err = repo.Reload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stub://salaries")
	assert.Same(t, first, repo.Snapshot())
}

func TestSalaryRepositoryDashboardUsesCache(t *testing.T) {
	cache := newMemoryCache()
	repo := NewSalaryRepository(&stubSource{records: salaries()}, cache, time.Minute)
	_, err := repo.Reload(context.Background())
	require.NoError(t, err)

	filters := ds.Filters{Years: []int{2024}}
	d := repo.Dashboard(context.Background(), filters)
	assert.Equal(t, 2, d.Metrics.Total)
	assert.Equal(t, repo.Snapshot().Version, d.Version)
	require.Len(t, cache.items, 1)
	for _, ttl := range cache.ttls {
		assert.Equal(t, time.Minute, ttl)
	}

	// подменяем закэшированное значение, чтобы убедиться что оно читается
	for key, cached := range cache.items {
		cached.Display.TopTitle = "from cache"
		cache.items[key] = cached
	}
	again := repo.Dashboard(context.Background(), ds.Filters{Years: []int{2024}})
	assert.Equal(t, "from cache", again.Display.TopTitle)

	other := repo.Dashboard(context.Background(), ds.Filters{Years: []int{2023}})
	assert.Equal(t, 1, other.Metrics.Total)
	assert.Len(t, cache.items, 2)
}

func TestSalaryRepositoryDashboardWithoutCache(t *testing.T) {
	repo := NewSalaryRepository(&stubSource{records: salaries()}, nil, 0)
	_, err := repo.Reload(context.Background())
	require.NoError(t, err)

	d := repo.Dashboard(context.Background(), ds.Filters{Seniorities: []string{}})
	assert.True(t, d.Empty)
	assert.Equal(t, "N/A", d.Metrics.TopTitle)
}

func TestSalaryRepositoryRecords(t *testing.T) {
	repo := NewSalaryRepository(&stubSource{records: salaries()}, nil, 0)
	_, err := repo.Reload(context.Background())
	require.NoError(t, err)

	rows, page := repo.Records(ds.Filters{}, 1, 3)
	assert.Len(t, rows, 3)
	assert.Equal(t, ds.PaginationInfo{Page: 1, PageSize: 3, Total: 4, TotalPages: 2}, page)

	rows, page = repo.Records(ds.Filters{}, 2, 3)
	require.Len(t, rows, 1)
	assert.Equal(t, "Data Engineer", rows[0].Title)
	assert.Equal(t, 2, page.Page)

	rows, _ = repo.Records(ds.Filters{}, 5, 3)
	assert.Empty(t, rows)

	_, page = repo.Records(ds.Filters{}, 0, 0)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, DefaultPageSize, page.PageSize)

	_, page = repo.Records(ds.Filters{}, 1, 10000)
	assert.Equal(t, MaxPageSize, page.PageSize)

	rows, page = repo.Records(ds.Filters{Remote: []string{"remoto"}}, 1, 10)
	assert.Len(t, rows, 2)
	assert.Equal(t, int64(2), page.Total)
}

func TestNewLocalRepository(t *testing.T) {
	repo, err := NewLocalRepository(context.Background(), &stubSource{records: salaries()})
	require.NoError(t, err)
	assert.Nil(t, repo.GetRedisClient())
	assert.False(t, repo.Export.Enabled())
	assert.Len(t, repo.Salary.Snapshot().Records, 4)

	_, err = NewLocalRepository(context.Background(), &stubSource{err: errors.New("offline")})
	assert.Error(t, err)
}

func TestExportDisabled(t *testing.T) {
	repo := NewExportRepository(nil, "salary-exports", "http://localhost:9000")
	_, err := repo.Export(context.Background(), salaries())
	assert.ErrorIs(t, err, ErrExportsDisabled)
}
