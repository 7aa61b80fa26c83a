package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/olbiataxi/services/widget/handler/websocket"
)

// Handler coordinates all protocol handlers for the widget service
type Handler struct {
	widgetHandler *websocket.WidgetHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(widgetHandler *websocket.WidgetHandler) *Handler {
	return &Handler{
		widgetHandler: widgetHandler,
	}
}

// RegisterRoutes registers the widget WebSocket endpoint
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/widget", h.widgetHandler.HandleWebSocket)
}
