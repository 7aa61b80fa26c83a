package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/logger"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/internal/pkg/requestcontext"
	pkgws "github.com/piresc/olbiataxi/internal/pkg/websocket"
	"github.com/piresc/olbiataxi/services/widget"
)

const defaultOutboundCapacity = 256

// WidgetHandler serves widget sessions over WebSocket
type WidgetHandler struct {
	manager          *pkgws.Manager
	widgetUC         widget.WidgetUC
	outboundCapacity int
}

// NewWidgetHandler creates a new widget handler
func NewWidgetHandler(manager *pkgws.Manager, widgetUC widget.WidgetUC, outboundCapacity int) *WidgetHandler {
	if outboundCapacity <= 0 {
		outboundCapacity = defaultOutboundCapacity
	}
	return &WidgetHandler{
		manager:          manager,
		widgetUC:         widgetUC,
		outboundCapacity: outboundCapacity,
	}
}

// HandleWebSocket upgrades the request and runs a widget session on it
func (h *WidgetHandler) HandleWebSocket(c echo.Context) error {
	ctx := c.Request().Context()
	return h.manager.HandleConnection(c, func(client *models.WebSocketClient, ws *websocket.Conn) error {
		return h.serve(ctx, client, ws)
	})
}

func (h *WidgetHandler) serve(ctx context.Context, client *models.WebSocketClient, ws *websocket.Conn) error {
	outbound := make(chan models.WidgetEvent, h.outboundCapacity)
	writerDone := make(chan struct{})

	// Single writer per connection
	go func() {
		defer close(writerDone)
		for ev := range outbound {
			if err := h.write(ws, ev); err != nil {
				logger.Debug("Failed to write widget event",
					logger.String("session_id", client.SessionID),
					logger.String("event", ev.Event),
					logger.Err(err))
				for range outbound {
				}
				return
			}
		}
	}()

	emit := func(ev models.WidgetEvent) {
		select {
		case outbound <- ev:
		default:
			logger.Warn("Dropping widget event, client is not reading",
				logger.String("session_id", client.SessionID),
				logger.String("event", ev.Event))
		}
	}

	ctx = requestcontext.WithClientID(ctx, client.ClientID)
	session := h.widgetUC.NewSession(ctx, emit)
	defer func() {
		session.Close()
		close(outbound)
		<-writerDone
	}()

	logger.Info("Widget session started",
		logger.String("session_id", client.SessionID),
		logger.String("client_id", client.ClientID),
		logger.Int("active_sessions", h.manager.ClientCount()))

	session.Start()

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Widget session closed unexpectedly",
					logger.String("session_id", client.SessionID),
					logger.Err(err))
			} else {
				logger.Info("Widget session ended",
					logger.String("session_id", client.SessionID))
			}
			return nil
		}

		h.handleMessage(client, session, emit, data)
	}
}

func (h *WidgetHandler) handleMessage(client *models.WebSocketClient, session widget.Session, emit widget.Emitter, data []byte) {
	var msg models.WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		emitError(emit, pkgws.CategorizedError(err, constants.ErrCodeInvalidMessage, constants.ErrorSeverityClient, client.SessionID))
		return
	}

	switch msg.Event {
	case constants.EventFieldChange:
		var change models.FieldChange
		if err := json.Unmarshal(msg.Data, &change); err != nil {
			emitError(emit, pkgws.CategorizedError(err, constants.ErrCodeInvalidMessage, constants.ErrorSeverityClient, client.SessionID))
			return
		}
		if err := session.Apply(change); err != nil {
			severity := constants.ErrorSeverityServer
			if errors.Is(err, widget.ErrUnknownField) || errors.Is(err, widget.ErrInvalidValue) {
				severity = constants.ErrorSeverityClient
			}
			emitError(emit, pkgws.CategorizedError(err, constants.ErrCodeInvalidField, severity, client.SessionID))
		}
	case constants.EventQuoteRequest:
		session.Submit()
	case constants.EventPing:
		emit(models.WidgetEvent{Event: constants.EventPong})
	default:
		emitError(emit, models.WSErrorMessage{
			Code:    constants.ErrCodeUnknownEvent,
			Message: "unknown event: " + msg.Event,
		})
	}
}

func (h *WidgetHandler) write(ws *websocket.Conn, ev models.WidgetEvent) error {
	if msg, ok := ev.Data.(models.WSErrorMessage); ok && ev.Event == constants.EventError {
		return h.manager.SendErrorMessage(ws, msg.Code, msg.Message)
	}
	return h.manager.SendMessage(ws, ev.Event, ev.Data)
}

func emitError(emit widget.Emitter, msg models.WSErrorMessage) {
	emit(models.WidgetEvent{Event: constants.EventError, Data: msg})
}
