package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/logger"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/piresc/olbiataxi/internal/utils"
)

const closeWriteTimeout = time.Second

// Manager manages WebSocket connections and client state
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and runs handleClient until it returns.
// The client is registered for the lifetime of the connection.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client := m.identifyClient(c)

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed",
			logger.String("client_id", client.ClientID),
			logger.Err(err))
		return err
	}
	defer ws.Close()

	client.Conn = ws
	m.AddClient(client)
	defer m.RemoveClient(client.SessionID)

	return handleClient(client, ws)
}

// identifyClient builds the client from the optional browser id
func (m *Manager) identifyClient(c echo.Context) *models.WebSocketClient {
	clientID, _ := c.Get("client_id").(string)
	if clientID == "" {
		clientID = c.QueryParam("client_id")
	}

	return &models.WebSocketClient{
		SessionID: uuid.New().String(),
		ClientID:  utils.SanitizeString(clientID),
	}
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.SessionID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(sessionID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, sessionID)
}

// ClientCount returns the number of connected clients
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// CloseAll asks every connected client to close. Used on shutdown.
func (m *Manager) CloseAll() {
	m.RLock()
	defer m.RUnlock()

	deadline := time.Now().Add(closeWriteTimeout)
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for sessionID, client := range m.clients {
		if client.Conn == nil {
			continue
		}
		if err := client.Conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
			logger.Debug("Failed to send close frame",
				logger.String("session_id", sessionID),
				logger.Err(err))
		}
	}
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil // Handle nil connection gracefully for tests
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return conn.WriteJSON(response)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// CategorizedError builds the error payload shown to the client and logs the cause
func CategorizedError(err error, code string, severity constants.ErrorSeverity, sessionID string) models.WSErrorMessage {
	// Always log detailed error server-side
	logger.Warn("WebSocket operation failed",
		logger.String("session_id", sessionID),
		logger.String("error_code", code),
		logger.Err(err))

	switch severity {
	case constants.ErrorSeverityClient:
		// Show detailed error to client for validation/input issues
		return models.WSErrorMessage{Code: code, Message: err.Error()}
	default:
		// Generic message for server errors
		return models.WSErrorMessage{Code: code, Message: "Operation failed"}
	}
}
