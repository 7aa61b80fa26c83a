package constants

// NSQ topics
const (
	// TopicBookingRequested carries booking requests forwarded to the driver
	TopicBookingRequested = "booking.requested"
)
