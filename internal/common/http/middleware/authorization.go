package middleware

import (
	"fmt"
	nethttp "net/http"

	"github.com/amberpay/go-weavr-sync/internal/common/http"

	"github.com/labstack/echo/v4"
)

func (m *AppMiddleware) InternalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secretKey := c.Request().Header.Get("X-Secret-Key")
		statusCode := nethttp.StatusUnauthorized
		if secretKey == "" {
			return http.RestErrorResponse(c, statusCode, fmt.Errorf("%s", "required secret key"))
		}

		if secretKey != m.conf.SecretKey {
			return http.RestErrorResponse(c, statusCode, fmt.Errorf("%s", "invalid secret key"))
		}

		return next(c)
	}
}
