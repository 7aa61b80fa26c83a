package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	pkgws "github.com/piresc/olbiataxi/internal/pkg/websocket"
	"github.com/piresc/olbiataxi/services/quote/repository"
	quoteusecase "github.com/piresc/olbiataxi/services/quote/usecase"
	"github.com/piresc/olbiataxi/services/widget/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWidgetServer(t *testing.T) (*httptest.Server, *pkgws.Manager) {
	t.Helper()

	cfg := &models.Config{
		Booking: models.BookingConfig{
			DriverNumber: "00393476308563",
			DeepLinkBase: "https://wa.me/",
			Currency:     "€",
		},
	}
	repo := repository.NewCatalogRepository()
	timings := usecase.Timings{
		Debounce:   20 * time.Millisecond,
		Frame:      time.Millisecond,
		PricedAnim: 10 * time.Millisecond,
		ZeroAnim:   5 * time.Millisecond,
	}
	widgetUC := usecase.NewWidgetUC(quoteusecase.NewQuoteUC(cfg, repo, nil), repo, timings)

	manager := pkgws.NewManager()
	handler := NewWidgetHandler(manager, widgetUC, 0)

	e := echo.New()
	e.GET("/ws/widget", handler.HandleWebSocket)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server, manager
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/widget?client_id=client-123"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, event string, data interface{}) {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: event, Data: raw}))
}

// readUntil reads messages until one with the given event satisfies match
func readUntil(t *testing.T, conn *websocket.Conn, event string, match func(json.RawMessage) bool) json.RawMessage {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var msg models.WSMessage
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Event == event && (match == nil || match(msg.Data)) {
			return msg.Data
		}
	}
}

func finalTotal(want int) func(json.RawMessage) bool {
	return func(data json.RawMessage) bool {
		var frame models.TotalFrame
		return json.Unmarshal(data, &frame) == nil && frame.Final && frame.Value == want
	}
}

func TestWidget_InitialQuote(t *testing.T) {
	server, manager := setupWidgetServer(t)
	conn := dial(t, server)

	data := readUntil(t, conn, constants.EventQuote, nil)
	var outcome models.QuoteOutcome
	require.NoError(t, json.Unmarshal(data, &outcome))
	assert.Zero(t, outcome.Total)

	data = readUntil(t, conn, constants.EventMapView, nil)
	var view models.MapView
	require.NoError(t, json.Unmarshal(data, &view))
	require.NotNil(t, view.Home)
	assert.Equal(t, constants.HomeLocation, view.Home.Title)

	readUntil(t, conn, constants.EventTotal, finalTotal(0))
	assert.Equal(t, 1, manager.ClientCount())
}

func TestWidget_FieldChangesAndQuoteRequest(t *testing.T) {
	server, _ := setupWidgetServer(t)
	conn := dial(t, server)
	readUntil(t, conn, constants.EventTotal, finalTotal(0))

	send(t, conn, constants.EventFieldChange, models.FieldChange{Field: constants.FieldFrom, Value: "Airport"})
	send(t, conn, constants.EventFieldChange, models.FieldChange{Field: constants.FieldTo, Value: "City Center"})

	data := readUntil(t, conn, constants.EventMapView, func(raw json.RawMessage) bool {
		var view models.MapView
		return json.Unmarshal(raw, &view) == nil && len(view.Lines) == 1
	})
	var view models.MapView
	require.NoError(t, json.Unmarshal(data, &view))
	assert.Len(t, view.Markers, 2)
	assert.Equal(t, "24 km", view.Details.Distance)
	readUntil(t, conn, constants.EventTotal, finalTotal(40))

	send(t, conn, constants.EventQuoteRequest, nil)

	data = readUntil(t, conn, constants.EventBookingLink, nil)
	var link models.BookingLinkMessage
	require.NoError(t, json.Unmarshal(data, &link))
	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/393476308563?text="))
}

func TestWidget_Advisory(t *testing.T) {
	server, _ := setupWidgetServer(t)
	conn := dial(t, server)

	send(t, conn, constants.EventFieldChange, models.FieldChange{Field: constants.FieldFrom, Value: "Hotel Zone"})
	send(t, conn, constants.EventFieldChange, models.FieldChange{Field: constants.FieldTo, Value: "Hotel Zone"})
	send(t, conn, constants.EventQuoteRequest, nil)

	data := readUntil(t, conn, constants.EventAdvisory, nil)
	var advisory models.AdvisoryMessage
	require.NoError(t, json.Unmarshal(data, &advisory))
	assert.Equal(t, constants.AdvisorySameLocation, advisory.Message)
}

func TestWidget_Errors(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantCode string
	}{
		{name: "malformed message", raw: `{"event":`, wantCode: constants.ErrCodeInvalidMessage},
		{name: "unknown event", raw: `{"event":"cancel_ride"}`, wantCode: constants.ErrCodeUnknownEvent},
		{name: "unknown field", raw: `{"event":"field_change","data":{"field":"luggage","value":"2"}}`, wantCode: constants.ErrCodeInvalidField},
		{name: "bad field payload", raw: `{"event":"field_change","data":"from"}`, wantCode: constants.ErrCodeInvalidMessage},
		{name: "unknown extra", raw: `{"event":"field_change","data":{"field":"extra","value":"champagne","checked":true}}`, wantCode: constants.ErrCodeInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := setupWidgetServer(t)
			conn := dial(t, server)

			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(tt.raw)))

			data := readUntil(t, conn, constants.EventError, nil)
			var msg models.WSErrorMessage
			require.NoError(t, json.Unmarshal(data, &msg))
			assert.Equal(t, tt.wantCode, msg.Code)
			assert.NotEmpty(t, msg.Message)
		})
	}
}

func TestWidget_Ping(t *testing.T) {
	server, _ := setupWidgetServer(t)
	conn := dial(t, server)

	send(t, conn, constants.EventPing, nil)

	readUntil(t, conn, constants.EventPong, nil)
}

func TestWidget_DisconnectRemovesClient(t *testing.T) {
	server, manager := setupWidgetServer(t)
	conn := dial(t, server)
	readUntil(t, conn, constants.EventQuote, nil)
	require.Equal(t, 1, manager.ClientCount())

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))
	conn.Close()

	assert.Eventually(t, func() bool {
		return manager.ClientCount() == 0
	}, time.Second, 10*time.Millisecond)
}
