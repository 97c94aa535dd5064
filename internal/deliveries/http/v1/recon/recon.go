package recon

import (
	nethttp "net/http"

	"github.com/amberpay/go-weavr-sync/internal/common/http"
	"github.com/amberpay/go-weavr-sync/internal/services"

	"github.com/labstack/echo/v4"
)

type reconHandler struct {
	reconSvc services.ReconService
}

// New will initialize the recon/ resources endpoint
func New(app *echo.Group, reconSvc services.ReconService) {
	handler := reconHandler{
		reconSvc: reconSvc,
	}
	recon := app.Group("/recon")
	recon.POST("/sweep", handler.runSweep)
}

// runSweep triggers one reconciliation batch on demand, outside the
// scheduled worker run.
func (h *reconHandler) runSweep(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := h.reconSvc.RunSweep(ctx)
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, report)
}
