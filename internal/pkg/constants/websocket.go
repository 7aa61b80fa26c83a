package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Client to server
	EventFieldChange  = "field_change"
	EventQuoteRequest = "quote_request"

	// Server to client
	EventQuote       = "quote"
	EventTotal       = "total"
	EventMapView     = "map_view"
	EventAdvisory    = "advisory"
	EventBookingLink = "booking_link"
)

// WebSocket error codes
const (
	ErrCodeInvalidMessage = "invalid_message"
	ErrCodeUnknownEvent   = "unknown_event"
	ErrCodeInvalidField   = "invalid_field"
	ErrCodeQuoteFailed    = "quote_failed"
)

// ErrorSeverity decides how much of an error is shown to the client
type ErrorSeverity int

const (
	// ErrorSeverityClient errors are caused by client input and shown in full
	ErrorSeverityClient ErrorSeverity = iota
	// ErrorSeverityServer errors are internal and shown generically
	ErrorSeverityServer
)
