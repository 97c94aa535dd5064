package transaction

import (
	nethttp "net/http"

	"github.com/amberpay/go-weavr-sync/internal/common/http"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/services"

	"github.com/labstack/echo/v4"
)

type transactionHandler struct {
	transactionSvc services.TransactionService
}

// New will initialize the transactions/ resources endpoint
func New(app *echo.Group, transactionSvc services.TransactionService) {
	handler := transactionHandler{
		transactionSvc: transactionSvc,
	}
	transactions := app.Group("/transactions")
	transactions.POST("", handler.create)
	transactions.GET("", handler.getList)
	transactions.GET("/:id", handler.getOne)
	transactions.POST("/:id/sync", handler.sync)
}

func (h *transactionHandler) create(c echo.Context) error {
	ctx := c.Request().Context()

	var in models.CreateTransaction
	if err := c.Bind(&in); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	out, err := h.transactionSvc.Create(ctx, in)
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, out.ToResponse())
}

func (h *transactionHandler) getList(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.DoGetListTransactionRequest
	if err := c.Bind(&req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	transactions, err := h.transactionSvc.GetList(ctx, req.ToFilterOptions())
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	contents := make([]models.TransactionResponse, 0, len(transactions))
	for _, trx := range transactions {
		contents = append(contents, trx.ToResponse())
	}

	return http.RestSuccessResponseListWithTotalRows(c, contents, len(contents))
}

func (h *transactionHandler) getOne(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	trx, err := h.transactionSvc.GetOneByID(ctx, id)
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, trx.ToResponse())
}

func (h *transactionHandler) sync(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	res := h.transactionSvc.Sync(ctx, http.CredentialsFromHeader(c), id)
	if !res.Success {
		return http.RestErrorMappedResponse(c, res.Err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToResponse())
}
