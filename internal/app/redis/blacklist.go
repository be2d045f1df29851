package redis

import (
	"context"
	"fmt"
	"time"
)

const blacklistPrefix = "jwt:blacklist:"

// AddToBlacklist добавляет JWT токен в черный список
func (c *Client) AddToBlacklist(ctx context.Context, token string, expiresIn time.Duration) error {
	return c.Set(ctx, blacklistPrefix+token, "blacklisted", expiresIn)
}

// IsInBlacklist проверяет, находится ли токен в черном списке
func (c *Client) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	exists, err := c.Exists(ctx, blacklistPrefix+token)
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return exists, nil
}
