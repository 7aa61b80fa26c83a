package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, SuccessResponse(c, http.StatusOK, "Quote computed", map[string]float64{"total": 40}))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Quote computed", resp.Message)
	assert.Equal(t, map[string]interface{}{"total": float64(40)}, resp.Data)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name           string
		send           func(c echo.Context) error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Bad request",
			send:           func(c echo.Context) error { return BadRequestResponse(c, "invalid request body") },
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:           "Explicit status",
			send:           func(c echo.Context) error { return ErrorResponseHandler(c, http.StatusTooManyRequests, "slow down") },
			expectedStatus: http.StatusTooManyRequests,
			expectedError:  "slow down",
		},
		{
			name:           "Internal error default message",
			send:           func(c echo.Context) error { return InternalServerErrorResponse(c, "") },
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, tt.send(c))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.expectedError, resp.Error)
			assert.Equal(t, tt.expectedStatus, resp.Code)
		})
	}
}
