package identity

import (
	nethttp "net/http"

	"github.com/amberpay/go-weavr-sync/internal/common/http"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/services"

	"github.com/labstack/echo/v4"
)

type identityHandler struct {
	identitySvc services.IdentityService
}

// New will initialize the identities/ resources endpoint
func New(app *echo.Group, identitySvc services.IdentityService) {
	handler := identityHandler{
		identitySvc: identitySvc,
	}
	identities := app.Group("/identities")
	identities.POST("", handler.create)
	identities.GET("/:id", handler.getOne)
	identities.POST("/:id/sync", handler.syncCreation)
	identities.POST("/:id/clear-review", handler.clearReview)
}

func (h *identityHandler) create(c echo.Context) error {
	ctx := c.Request().Context()

	var in models.CreateIdentity
	if err := c.Bind(&in); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	out, err := h.identitySvc.Create(ctx, in)
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, out.ToResponse())
}

func (h *identityHandler) getOne(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	ident, err := h.identitySvc.GetOneByID(ctx, id)
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, ident.ToResponse())
}

func (h *identityHandler) syncCreation(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	res := h.identitySvc.SyncCreation(ctx, http.CredentialsFromHeader(c), id)
	if !res.Success {
		return http.RestErrorMappedResponse(c, res.Err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToResponse())
}

func (h *identityHandler) clearReview(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	if err := h.identitySvc.ClearReview(ctx, id); err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}
