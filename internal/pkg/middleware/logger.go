package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/logger"
	"github.com/piresc/olbiataxi/internal/pkg/requestcontext"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// Let echo write the response so the status code is final
				c.Error(err)
			}

			appLogger.LogHTTPRequest(
				c.Request().Method,
				path,
				c.RealIP(),
				c.Response().Header().Get(RequestIDHeader),
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set(RequestIDHeader, requestID)
			c.Set("request_id", requestID)
			ctx := requestcontext.WithRequestID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// ClientIDMiddleware exposes the browser's client id, taken from the
// X-Client-ID header or the client_id query parameter
func ClientIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientID := c.Request().Header.Get(constants.ClientIDHeader)
			if clientID == "" {
				clientID = c.QueryParam("client_id")
			}
			if clientID != "" {
				c.Set("client_id", clientID)
				ctx := requestcontext.WithClientID(c.Request().Context(), clientID)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}
