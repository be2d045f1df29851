package repository

import (
	"Salary-Dashboard/internal/app/analytics"
	"Salary-Dashboard/internal/app/dataset"
	"Salary-Dashboard/internal/app/ds"
	"Salary-Dashboard/internal/app/redis"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// DashboardCache кэш посчитанных дашбордов (Redis)
type DashboardCache interface {
	GetDashboard(ctx context.Context, key string) (*ds.Dashboard, error)
	SaveDashboard(ctx context.Context, key string, d ds.Dashboard, ttl time.Duration) error
}

type SalaryRepository struct {
	source   dataset.Source
	cache    DashboardCache
	cacheTTL time.Duration

	mu      sync.RWMutex
	current *ds.Dataset
}

func NewSalaryRepository(source dataset.Source, cache DashboardCache, cacheTTL time.Duration) *SalaryRepository {
	return &SalaryRepository{
		source:   source,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// ==================== СНИМОК ДАННЫХ ====================

// Reload заново читает источник и атомарно подменяет снимок.
// При ошибке текущий снимок остается.
func (r *SalaryRepository) Reload(ctx context.Context) (*ds.Dataset, error) {
	records, skipped, err := r.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset from %s: %w", r.source, err)
	}

	snapshot := &ds.Dataset{
		Records:  records,
		Options:  analytics.Options(records),
		Source:   r.source.String(),
		Version:  dataset.Version(records),
		LoadedAt: time.Now(),
		Skipped:  skipped,
	}

	r.mu.Lock()
	r.current = snapshot
	r.mu.Unlock()

	logrus.Infof("Dataset loaded from %s: %d rows, version %s", snapshot.Source, len(records), snapshot.Version)
	if skipped > 0 {
		logrus.Warnf("Skipped %d malformed rows", skipped)
	}

	return snapshot, nil
}

// Snapshot возвращает текущий снимок
func (r *SalaryRepository) Snapshot() *ds.Dataset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return &ds.Dataset{}
	}
	return r.current
}

// Filter применяет фильтры к текущему снимку
func (r *SalaryRepository) Filter(filters ds.Filters) []ds.Salary {
	return analytics.Apply(r.Snapshot().Records, filters)
}

// ==================== ДАШБОРД ====================

// Dashboard считает дашборд для выборки, используя кэш если он есть.
// Ошибки кэша не мешают ответу.
func (r *SalaryRepository) Dashboard(ctx context.Context, filters ds.Filters) ds.Dashboard {
	snapshot := r.Snapshot()
	key := redis.DashboardKey(snapshot.Version, filters)

	if r.cache != nil {
		cached, err := r.cache.GetDashboard(ctx, key)
		if err != nil {
			logrus.Warnf("Failed to read dashboard cache: %v", err)
		} else if cached != nil {
			logrus.Debugf("Dashboard cache hit: %s", key)
			return *cached
		}
	}

	d := analytics.Build(analytics.Apply(snapshot.Records, filters))
	d.Version = snapshot.Version

	if r.cache != nil {
		if err := r.cache.SaveDashboard(ctx, key, d, r.cacheTTL); err != nil {
			logrus.Warnf("Failed to save dashboard cache: %v", err)
		}
	}

	return d
}

// ==================== ТАБЛИЦА ====================

// Records возвращает страницу отфильтрованной таблицы
func (r *SalaryRepository) Records(filters ds.Filters, page, pageSize int) ([]ds.Salary, ds.PaginationInfo) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page < 1 {
		page = 1
	}

	view := r.Filter(filters)
	pagination := ds.NewPaginationInfo(page, pageSize, int64(len(view)))

	offset := (page - 1) * pageSize
	if offset >= len(view) {
		return []ds.Salary{}, pagination
	}
	end := offset + pageSize
	if end > len(view) {
		end = len(view)
	}

	return view[offset:end], pagination
}
