package http

import (
	"strconv"

	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/weavr"

	"github.com/labstack/echo/v4"
)

// ParamID parses a numeric path parameter. The returned error is already
// an ErrorDetail, ready for RestErrorMappedResponse.
func ParamID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, models.GetErrMap(models.ErrKeyValidation, name+" must be a positive integer")
	}
	return id, nil
}

// CredentialsFromHeader reads per-request remote credentials. Services
// fall back to the configured service credentials when these are absent.
func CredentialsFromHeader(c echo.Context) weavr.Credentials {
	return weavr.Credentials{
		APIKey:    c.Request().Header.Get("X-Api-Key"),
		AuthToken: c.Request().Header.Get("X-Auth-Token"),
	}
}
