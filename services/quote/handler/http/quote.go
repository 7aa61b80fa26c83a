package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/olbiataxi/internal/pkg/logger"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/internal/utils"
	"github.com/piresc/olbiataxi/services/mapview"
	"github.com/piresc/olbiataxi/services/quote"
)

// QuoteHandler handles HTTP requests for quotes and the route map
type QuoteHandler struct {
	quoteUC quote.QuoteUC
	catalog mapview.RouteCatalog
	now     func() time.Time
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(
	quoteUC quote.QuoteUC,
	catalog mapview.RouteCatalog,
) *QuoteHandler {
	return &QuoteHandler{
		quoteUC: quoteUC,
		catalog: catalog,
		now:     models.Now,
	}
}

// GetCatalog returns locations, routes and surcharges
func (h *QuoteHandler) GetCatalog(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Catalog retrieved successfully", h.quoteUC.Catalog())
}

// GetBookingWindow returns the bookable dates and time slots
func (h *QuoteHandler) GetBookingWindow(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Booking window retrieved successfully", h.quoteUC.BookingWindow(h.now()))
}

// PreviewQuote computes a quote silently, as the widget does on every form change
func (h *QuoteHandler) PreviewQuote(c echo.Context) error {
	return h.computeQuote(c, models.SilentMode, "Quote computed successfully")
}

// RequestQuote computes a quote explicitly and forwards it to the driver
func (h *QuoteHandler) RequestQuote(c echo.Context) error {
	return h.computeQuote(c, models.ExplicitMode, "Quote requested successfully")
}

func (h *QuoteHandler) computeQuote(c echo.Context, mode models.QuoteMode, message string) error {
	var form models.QuoteForm
	if err := c.Bind(&form); err != nil {
		logger.Warn("Invalid request payload for quote",
			logger.ErrorField(err),
			logger.String("endpoint", c.Path()),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	presenter, board := mapview.NewView(h.catalog)
	defer presenter.Dispose()

	outcome, err := h.quoteUC.ComputeQuote(c.Request().Context(), form, mode, presenter)
	if err != nil {
		if errors.Is(err, quote.ErrUnknownExtra) || errors.Is(err, quote.ErrUnknownExtraTime) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to compute quote",
			logger.ErrorField(err),
			logger.String("from", form.From),
			logger.String("to", form.To),
		)
		return utils.InternalServerErrorResponse(c, "Failed to compute quote")
	}

	return utils.SuccessResponse(c, http.StatusOK, message, models.QuoteResponse{
		Outcome: outcome,
		MapView: board.Snapshot(),
	})
}

// GetRouteView returns the map for an origin and destination
func (h *QuoteHandler) GetRouteView(c echo.Context) error {
	from := utils.SanitizeString(c.QueryParam("from"))
	to := utils.SanitizeString(c.QueryParam("to"))

	presenter, board := mapview.NewView(h.catalog)
	defer presenter.Dispose()

	if !presenter.RenderRoute(from, to) {
		logger.Debug("No route drawn",
			logger.String("from", from),
			logger.String("to", to),
		)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route view retrieved successfully", board.Snapshot())
}
