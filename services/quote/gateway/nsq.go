package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/olbiataxi/internal/pkg/circuitbreaker"
	"github.com/piresc/olbiataxi/internal/pkg/logger"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/services/quote"
)

// Publisher is satisfied by *nsq.Producer
type Publisher interface {
	Publish(topic string, message interface{}) error
}

type bookingGW struct {
	publisher Publisher
	topic     string
	breaker   *circuitbreaker.CircuitBreaker
}

// NewBookingGW creates a new booking gateway.
// With a nil publisher booking requests are only logged.
func NewBookingGW(publisher Publisher, topic string) quote.BookingGW {
	return &bookingGW{
		publisher: publisher,
		topic:     topic,
		breaker:   circuitbreaker.New(circuitbreaker.DefaultConfig("nsq-booking-publish")),
	}
}

// PublishBookingRequest publishes a booking request event to NSQ
func (g *bookingGW) PublishBookingRequest(ctx context.Context, req *models.BookingRequest) error {
	if g.publisher == nil {
		logger.Info("NSQ disabled, booking request not published",
			logger.String("booking_id", req.ID.String()),
			logger.String("link", req.Link))
		return nil
	}

	err := g.breaker.Execute(ctx, func(context.Context) error {
		return g.publisher.Publish(g.topic, req)
	})
	if err != nil {
		return fmt.Errorf("failed to publish booking request: %w", err)
	}

	return nil
}
