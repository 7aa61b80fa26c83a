package quote

import (
	"context"
	"time"

	"github.com/piresc/olbiataxi/internal/pkg/models"
)

// RouteRenderer draws the route of a computed quote
type RouteRenderer interface {
	RenderRoute(from, to string) bool
}

// QuoteUC defines the interface for quote business logic
type QuoteUC interface {
	// ComputeQuote prices the form and then renders its route on renderer.
	// A nil renderer skips rendering.
	ComputeQuote(ctx context.Context, form models.QuoteForm, mode models.QuoteMode, renderer RouteRenderer) (*models.QuoteOutcome, error)

	// Catalog returns the data needed to populate the booking form
	Catalog() models.Catalog

	// BookingWindow returns the bookable dates and time slots as of now
	BookingWindow(now time.Time) models.BookingWindow
}
