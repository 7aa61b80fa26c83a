package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/olbiataxi/services/quote/handler/http"
)

// Handler coordinates all protocol handlers for the quote service
type Handler struct {
	quoteHandler *http.QuoteHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(quoteHandler *http.QuoteHandler) *Handler {
	return &Handler{
		quoteHandler: quoteHandler,
	}
}

// RegisterRoutes registers the quote endpoints. requestLimiter, when set,
// guards the endpoint that forwards bookings to the driver.
func (h *Handler) RegisterRoutes(e *echo.Echo, requestLimiter echo.MiddlewareFunc) {
	v1 := e.Group("/api/v1")

	v1.GET("/catalog", h.quoteHandler.GetCatalog)
	v1.GET("/booking-window", h.quoteHandler.GetBookingWindow)
	v1.GET("/routes/view", h.quoteHandler.GetRouteView)

	quotes := v1.Group("/quotes")
	quotes.POST("", h.quoteHandler.PreviewQuote)
	if requestLimiter != nil {
		quotes.POST("/request", h.quoteHandler.RequestQuote, requestLimiter)
	} else {
		quotes.POST("/request", h.quoteHandler.RequestQuote)
	}
}
