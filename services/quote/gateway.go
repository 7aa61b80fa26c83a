package quote

import (
	"context"

	"github.com/piresc/olbiataxi/internal/pkg/models"
)

// BookingGW defines the interface for forwarding booking requests
type BookingGW interface {
	// PublishBookingRequest announces a quote forwarded to the driver
	PublishBookingRequest(ctx context.Context, req *models.BookingRequest) error
}
