package widget

import (
	"context"

	"github.com/piresc/olbiataxi/internal/pkg/models"
)

// Emitter delivers a session event to its client. It must not block.
type Emitter func(event models.WidgetEvent)

// Session is the server side of one booking widget
type Session interface {
	// Start computes the initial quote silently
	Start()
	// Apply edits one form field and schedules a silent recompute
	Apply(change models.FieldChange) error
	// Submit cancels any pending recompute and requests an explicit quote
	Submit()
	// Close stops timers and clears the map. No events are emitted afterwards.
	Close()
}

// WidgetUC creates widget sessions
type WidgetUC interface {
	NewSession(ctx context.Context, emit Emitter) Session
}
