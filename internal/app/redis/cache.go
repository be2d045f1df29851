package redis

import (
	"Salary-Dashboard/internal/app/ds"
	"context"
	"encoding/json"
	"errors"
	"time"
)

const dashboardPrefix = "dashboard:"

// DashboardKey ключ кэша: версия снимка + канонический набор фильтров
func DashboardKey(version string, filters ds.Filters) string {
	return dashboardPrefix + version + ":" + filters.Key()
}

// GetDashboard возвращает nil без ошибки, если в кэше ничего нет
func (c *Client) GetDashboard(ctx context.Context, key string) (*ds.Dashboard, error) {
	raw, err := c.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var d ds.Dashboard
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// SaveDashboard кладет дашборд в кэш с TTL
func (c *Client) SaveDashboard(ctx context.Context, key string, d ds.Dashboard, ttl time.Duration) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, raw, ttl)
}
