package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/logger"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/internal/utils"
	"github.com/piresc/olbiataxi/services/preference"
)

// ThemeRequest is the body of a theme update
type ThemeRequest struct {
	Theme models.Theme `json:"theme"`
}

// PreferenceHandler handles HTTP requests for client preferences
type PreferenceHandler struct {
	preferenceUC preference.PreferenceUC
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(preferenceUC preference.PreferenceUC) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUC: preferenceUC,
	}
}

// GetTheme returns the client's theme
func (h *PreferenceHandler) GetTheme(c echo.Context) error {
	pref, err := h.preferenceUC.GetTheme(c.Request().Context(), clientID(c))
	if err != nil {
		return h.handleError(c, err, "Failed to get theme")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Theme retrieved successfully", pref)
}

// SetTheme stores the client's theme
func (h *PreferenceHandler) SetTheme(c echo.Context) error {
	var req ThemeRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for theme update",
			logger.ErrorField(err),
			logger.String("endpoint", "SetTheme"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	pref, err := h.preferenceUC.SetTheme(c.Request().Context(), clientID(c), req.Theme)
	if err != nil {
		return h.handleError(c, err, "Failed to update theme")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Theme updated successfully", pref)
}

// ToggleTheme switches the client's theme
func (h *PreferenceHandler) ToggleTheme(c echo.Context) error {
	pref, err := h.preferenceUC.ToggleTheme(c.Request().Context(), clientID(c))
	if err != nil {
		return h.handleError(c, err, "Failed to toggle theme")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Theme toggled successfully", pref)
}

func (h *PreferenceHandler) handleError(c echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, preference.ErrMissingClientID), errors.Is(err, preference.ErrInvalidTheme):
		return utils.BadRequestResponse(c, err.Error())
	default:
		logger.Error(message,
			logger.ErrorField(err),
			logger.String("client_id", clientID(c)),
		)
		return utils.InternalServerErrorResponse(c, message)
	}
}

// clientID reads the id set by the client id middleware, falling back to the header
func clientID(c echo.Context) string {
	if id, ok := c.Get("client_id").(string); ok && id != "" {
		return id
	}
	return utils.SanitizeString(c.Request().Header.Get(constants.ClientIDHeader))
}
