package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/logger"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/services/preference"
)

// PreferenceUC implements the preference.PreferenceUC interface
type PreferenceUC struct {
	themeRepo preference.ThemeRepo
}

// NewPreferenceUC creates a new preference use case
func NewPreferenceUC(themeRepo preference.ThemeRepo) preference.PreferenceUC {
	return &PreferenceUC{
		themeRepo: themeRepo,
	}
}

// GetTheme returns a client's theme, light when none is stored
func (uc *PreferenceUC) GetTheme(ctx context.Context, clientID string) (*models.ThemePreference, error) {
	if clientID == "" {
		return nil, preference.ErrMissingClientID
	}

	theme, err := uc.themeRepo.GetTheme(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if !theme.Valid() {
		if theme != "" {
			logger.Warn("Ignoring invalid stored theme",
				logger.String("client_id", clientID),
				logger.String("theme", string(theme)))
		}
		theme = models.ThemeLight
	}

	return newThemePreference(clientID, theme), nil
}

// SetTheme stores a client's theme
func (uc *PreferenceUC) SetTheme(ctx context.Context, clientID string, theme models.Theme) (*models.ThemePreference, error) {
	if clientID == "" {
		return nil, preference.ErrMissingClientID
	}
	if !theme.Valid() {
		return nil, fmt.Errorf("%w: %q", preference.ErrInvalidTheme, theme)
	}

	if err := uc.themeRepo.SetTheme(ctx, clientID, theme); err != nil {
		return nil, err
	}

	return newThemePreference(clientID, theme), nil
}

// ToggleTheme switches a client between light and dark
func (uc *PreferenceUC) ToggleTheme(ctx context.Context, clientID string) (*models.ThemePreference, error) {
	current, err := uc.GetTheme(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return uc.SetTheme(ctx, clientID, current.Theme.Toggled())
}

// newThemePreference labels the toggle button with the action it performs
func newThemePreference(clientID string, theme models.Theme) *models.ThemePreference {
	label := constants.ToggleLabelToDark
	if theme == models.ThemeDark {
		label = constants.ToggleLabelToLight
	}

	return &models.ThemePreference{
		ClientID:    clientID,
		Theme:       theme,
		ToggleLabel: label,
	}
}
