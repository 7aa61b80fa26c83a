package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/database"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/services/preference"
)

// ThemeRepository implements preference.ThemeRepo on Redis
type ThemeRepository struct {
	redisClient *database.RedisClient
}

// NewThemeRepository creates a new theme repository
func NewThemeRepository(redisClient *database.RedisClient) preference.ThemeRepo {
	return &ThemeRepository{
		redisClient: redisClient,
	}
}

// GetTheme retrieves a client's theme
func (r *ThemeRepository) GetTheme(ctx context.Context, clientID string) (models.Theme, error) {
	key := fmt.Sprintf(constants.KeyThemePreference, clientID)

	value, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get theme preference: %w", err)
	}

	return models.Theme(value), nil
}

// SetTheme stores a client's theme and refreshes its expiry
func (r *ThemeRepository) SetTheme(ctx context.Context, clientID string, theme models.Theme) error {
	key := fmt.Sprintf(constants.KeyThemePreference, clientID)

	if err := r.redisClient.Set(ctx, key, string(theme), constants.ThemePreferenceTTL); err != nil {
		return fmt.Errorf("failed to store theme preference: %w", err)
	}

	return nil
}
