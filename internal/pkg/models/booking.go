package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingRequest is published when a quote is forwarded to the driver
type BookingRequest struct {
	ID        uuid.UUID `json:"id"`
	Quote     Quote     `json:"quote"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}
