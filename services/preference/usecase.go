package preference

import (
	"context"

	"github.com/piresc/olbiataxi/internal/pkg/models"
)

// PreferenceUC defines the interface for theme preference business logic
type PreferenceUC interface {
	GetTheme(ctx context.Context, clientID string) (*models.ThemePreference, error)
	SetTheme(ctx context.Context, clientID string, theme models.Theme) (*models.ThemePreference, error)
	ToggleTheme(ctx context.Context, clientID string) (*models.ThemePreference, error)
}
