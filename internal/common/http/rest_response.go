package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseListWithTotalRows(c echo.Context, data interface{}, totalRows int) error {
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = echoErr.Message.(string)
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

// RestErrorMappedResponse derives the HTTP status from the error code
// class, so handlers do not repeat the mapping per endpoint. Validation
// multierrors keep their dedicated 422 shape.
func RestErrorMappedResponse(c echo.Context, err error) error {
	if multiErr, ok := err.(*multierror.Error); ok {
		return RestErrorValidationResponse(c, multiErr)
	}

	return RestErrorResponse(c, statusFromError(err), err)
}

func statusFromError(err error) int {
	var detail models.ErrorDetail
	if !errors.As(err, &detail) {
		return http.StatusInternalServerError
	}

	switch {
	case strings.HasPrefix(detail.Code, "404"):
		return http.StatusNotFound
	case strings.HasPrefix(detail.Code, "400"):
		return http.StatusBadRequest
	case strings.HasPrefix(detail.Code, "409"):
		return http.StatusConflict
	case strings.HasPrefix(detail.Code, "502"):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func RestErrorValidationResponse(c echo.Context, errors interface{}) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	if data, ok := errors.(*multierror.Error); ok {
		res.Errors = data.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}
