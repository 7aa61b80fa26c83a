package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/olbiataxi/services/preference/handler/http"
)

// Handler coordinates all protocol handlers for the preference service
type Handler struct {
	preferenceHandler *http.PreferenceHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(preferenceHandler *http.PreferenceHandler) *Handler {
	return &Handler{
		preferenceHandler: preferenceHandler,
	}
}

// RegisterRoutes registers the preference endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	theme := e.Group("/api/v1/preferences/theme")
	theme.GET("", h.preferenceHandler.GetTheme)
	theme.PUT("", h.preferenceHandler.SetTheme)
	theme.POST("/toggle", h.preferenceHandler.ToggleTheme)
}
