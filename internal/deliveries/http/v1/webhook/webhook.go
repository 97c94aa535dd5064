package webhook

import (
	nethttp "net/http"

	"github.com/amberpay/go-weavr-sync/internal/common/http"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/services"

	"github.com/labstack/echo/v4"
)

type webhookHandler struct {
	webhookSvc services.WebhookService
}

// New will initialize the webhooks/ resources endpoint. The ingress route
// is registered by NewIngress instead, since the provider cannot send the
// internal secret key.
func New(app *echo.Group, webhookSvc services.WebhookService) {
	handler := webhookHandler{
		webhookSvc: webhookSvc,
	}
	webhooks := app.Group("/webhooks")
	webhooks.GET("/events/:id", handler.getOne)
	webhooks.POST("/events/:id/replay", handler.replay)
}

// NewIngress registers the provider-facing delivery endpoint.
func NewIngress(app *echo.Group, webhookSvc services.WebhookService) {
	handler := webhookHandler{
		webhookSvc: webhookSvc,
	}
	app.POST("/webhooks/weavr", handler.ingress)
}

type DoProcessWebhookResponse struct {
	Outcome models.WebhookProcessOutcome `json:"outcome"`
}

// ingress acknowledges with 2xx only once the event is persisted, so the
// provider keeps redelivering until receipt is durable.
func (h *webhookHandler) ingress(c echo.Context) error {
	ctx := c.Request().Context()

	var in models.InboundWebhookEvent
	if err := c.Bind(&in); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	outcome, err := h.webhookSvc.Process(ctx, in)
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, DoProcessWebhookResponse{Outcome: outcome})
}

func (h *webhookHandler) getOne(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	event, err := h.webhookSvc.GetOneByID(ctx, id)
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, event.ToResponse())
}

func (h *webhookHandler) replay(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := http.ParamID(c, "id")
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	outcome, err := h.webhookSvc.Replay(ctx, id)
	if err != nil {
		return http.RestErrorMappedResponse(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, DoProcessWebhookResponse{Outcome: outcome})
}
