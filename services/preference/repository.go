package preference

import (
	"context"

	"github.com/piresc/olbiataxi/internal/pkg/models"
)

// ThemeRepo defines the interface for theme preference storage
type ThemeRepo interface {
	// GetTheme returns the stored theme, or "" when none is stored
	GetTheme(ctx context.Context, clientID string) (models.Theme, error)
	SetTheme(ctx context.Context, clientID string, theme models.Theme) error
}
