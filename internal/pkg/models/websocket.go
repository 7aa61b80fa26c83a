package models

import (
	"encoding/json"

	"github.com/gorilla/websocket"
)

// WebSocketClient represents a connected widget
type WebSocketClient struct {
	SessionID string
	ClientID  string
	Conn      *websocket.Conn
}

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldChange is a single edit of a booking form field
type FieldChange struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Checked bool   `json:"checked,omitempty"`
}

// WidgetEvent is an event pushed from a widget session to its client
type WidgetEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// TotalFrame is one frame of the animated total display
type TotalFrame struct {
	Value int  `json:"value"`
	Final bool `json:"final"`
}

// AdvisoryMessage explains why an explicit quote has no price
type AdvisoryMessage struct {
	Message string `json:"message"`
}

// BookingLinkMessage carries the deep link of a forwarded booking
type BookingLinkMessage struct {
	URL string `json:"url"`
}
