package middleware

import (
	"github.com/amberpay/go-weavr-sync/internal/common/ctxdata"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const correlationIDHeader = "X-Correlation-Id"

// Context seeds the request context with the correlation id and host, so
// every log line and outbound call downstream carries them.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			correlationID := req.Header.Get(correlationIDHeader)
			if correlationID == "" {
				correlationID = uuid.New().String()
			}

			ctx := ctxdata.Sets(req.Context(),
				ctxdata.SetCorrelationId(correlationID),
				ctxdata.SetHost(req.Host),
			)

			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(correlationIDHeader, correlationID)

			return next(c)
		}
	}
}
