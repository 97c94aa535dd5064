package account

import (
	nethttp "net/http"

	"github.com/amberpay/go-weavr-sync/internal/common/http"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/services"

	"github.com/labstack/echo/v4"
)

type accountHandler struct {
	accountSvc services.AccountService
}

// New will initialize the accounts/ resources endpoint
func New(app *echo.Group, accountSvc services.AccountService) {
	handler := accountHandler{
		accountSvc: accountSvc,
	}
	accounts := app.Group("/accounts")
	accounts.POST("", handler.create)
	accounts.GET("", handler.getList)
	accounts.GET("/:id", handler.getOne)
	accounts.GET("/:id/balance-logs", handler.getBalanceLogs)
	accounts.GET("/:id/iban", handler.getIBAN)
	accounts.POST("/:id/sync", handler.syncCreation)
	accounts.POST("/:id/sync-balance", handler.syncBalance)
	accounts.POST("/:id/iban", handler.upgradeIBAN)
	accounts.POST("/:id/clear-review", handler.clearReview)
}

func (h *accountHandler) create(c echo.Context) error {
	ctx := c.Request().Context()

	var in models.CreateAccount
	if err := c.Bind(&in); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	out, err := h.accountSvc.Create(ctx, in)
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, out.ToResponse())
}

func (h *accountHandler) getList(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.DoGetListAccountRequest
	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	accounts, err := h.accountSvc.GetList(ctx, req.ToFilterOptions())
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	contents := make([]models.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		contents = append(contents, acc.ToResponse())
	}

	return http.RestSuccessResponseListWithTotalRows(c, contents, len(contents))
}

func (h *accountHandler) getOne(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	acc, err := h.accountSvc.GetOneByID(ctx, id)
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, acc.ToResponse())
}

func (h *accountHandler) getBalanceLogs(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	var req models.DoGetListBalanceLogRequest
	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	logs, err := h.accountSvc.GetBalanceLogs(ctx, id, req.LimitOrDefault(), req.Offset)
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	contents := make([]models.BalanceLogResponse, 0, len(logs))
	for _, bl := range logs {
		contents = append(contents, bl.ToResponse())
	}

	return http.RestSuccessResponseListWithTotalRows(c, contents, len(contents))
}

func (h *accountHandler) getIBAN(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	acc, err := h.accountSvc.GetIBAN(ctx, http.CredentialsFromHeader(c), id)
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, acc.ToResponse())
}

func (h *accountHandler) syncCreation(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	res := h.accountSvc.SyncCreation(ctx, http.CredentialsFromHeader(c), id)
	if !res.Success {
		return http.RestErrorMappedResponse(c, res.Err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToResponse())
}

func (h *accountHandler) syncBalance(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	res := h.accountSvc.SyncBalanceUpdate(ctx, http.CredentialsFromHeader(c), id)
	if !res.Success {
		return http.RestErrorMappedResponse(c, res.Err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToResponse())
}

func (h *accountHandler) upgradeIBAN(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	res := h.accountSvc.UpgradeIBAN(ctx, http.CredentialsFromHeader(c), id)
	if !res.Success {
		return http.RestErrorMappedResponse(c, res.Err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToResponse())
}

func (h *accountHandler) clearReview(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	if err := h.accountSvc.ClearReview(ctx, id); err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}
