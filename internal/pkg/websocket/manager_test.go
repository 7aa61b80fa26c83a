package websocket

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Clients(t *testing.T) {
	m := NewManager()

	m.AddClient(&models.WebSocketClient{SessionID: "s1", ClientID: "c1"})
	m.AddClient(&models.WebSocketClient{SessionID: "s2", ClientID: "c1"})
	assert.Equal(t, 2, m.ClientCount())

	m.RemoveClient("s1")
	assert.Equal(t, 1, m.ClientCount())
	m.RemoveClient("s1")
	assert.Equal(t, 1, m.ClientCount())
}

func TestManager_SendMessageNilConn(t *testing.T) {
	m := NewManager()
	assert.NoError(t, m.SendMessage(nil, constants.EventPong, nil))
}

func TestCategorizedError(t *testing.T) {
	err := errors.New("unknown field: \"luggage\"")

	msg := CategorizedError(err, constants.ErrCodeInvalidField, constants.ErrorSeverityClient, "s1")
	assert.Equal(t, constants.ErrCodeInvalidField, msg.Code)
	assert.Equal(t, err.Error(), msg.Message)

	msg = CategorizedError(err, constants.ErrCodeQuoteFailed, constants.ErrorSeverityServer, "s1")
	assert.Equal(t, "Operation failed", msg.Message)
}

func TestManager_HandleConnection(t *testing.T) {
	m := NewManager()
	connected := make(chan *models.WebSocketClient, 1)

	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return m.HandleConnection(c, func(client *models.WebSocketClient, ws *websocket.Conn) error {
			connected <- client
			if err := m.SendErrorMessage(ws, constants.ErrCodeUnknownEvent, "hello"); err != nil {
				return err
			}
			_, _, err := ws.ReadMessage()
			return err
		})
	})
	server := httptest.NewServer(e)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?client_id=browser-1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	var client *models.WebSocketClient
	select {
	case client = <-connected:
	case <-time.After(time.Second):
		t.Fatal("handler not called")
	}
	assert.Equal(t, "browser-1", client.ClientID)
	assert.NotEmpty(t, client.SessionID)
	assert.Equal(t, 1, m.ClientCount())

	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventError, msg.Event)
	var payload models.WSErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	assert.Equal(t, "hello", payload.Message)

	m.CloseAll()
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway))

	assert.Eventually(t, func() bool { return m.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}
