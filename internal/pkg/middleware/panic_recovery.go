package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/olbiataxi/internal/pkg/logger"
	"github.com/piresc/olbiataxi/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with the
// stack trace and answers 500
func PanicRecoveryMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				appLogger.Error("Panic recovered",
					logger.Any("panic_value", r),
					logger.String("panic_type", fmt.Sprintf("%T", r)),
					logger.String("stack_trace", string(debug.Stack())),
					logger.String("method", c.Request().Method),
					logger.String("path", c.Request().URL.Path),
					logger.String("request_id", c.Response().Header().Get(RequestIDHeader)),
				)

				if c.Response().Committed {
					return
				}
				err = utils.InternalServerErrorResponse(c, "")
			}()

			return next(c)
		}
	}
}
