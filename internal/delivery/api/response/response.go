// Package response writes the JSON envelopes returned by the API.
//
// Every body is either {"data": ..., "meta": ...} or {"error": ..., "meta": ...}.
package response

import (
	"net/http"

	deliverycontext "fitsaga/internal/delivery/context"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/errors"

	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo describes a failure. Details is structured for conflicts (e.g. the IDs blocking a
// delete) and a string otherwise.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// exposesDetails is false for statuses whose details could leak auth or server internals.
func exposesDetails(status int) bool {
	return status < http.StatusInternalServerError &&
		status != http.StatusUnauthorized &&
		status != http.StatusForbidden
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	info := &ErrorInfo{Code: errorCode, Message: message}
	if exposesDetails(statusCode) {
		info.Details = details
	}

	return c.JSON(statusCode, ErrorResponse{Error: info, Meta: meta(c)})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError answers a body or query that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return BadRequest(c, errorCode, message)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes domain errors directly. Anything else is returned, with a stack,
// for the echo error handler to log and answer with a generic 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), Details(appErr))
}

// Details returns the structured payload of appErr, falling back to its details string.
func Details(appErr domainerrors.AppError) any {
	var payloadErr domainerrors.PayloadError
	if errors.As(appErr, &payloadErr) {
		return payloadErr.Payload()
	}
	if details := appErr.Details(); details != "" {
		return details
	}

	return nil
}
