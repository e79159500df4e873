package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"kitchenpos/internal/adapters/in/http/api"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// statusFor maps an error kind onto an HTTP status.
func statusFor(err error) int {
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error, status int) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprint(httpErr.Message)
	}
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}

	return ctx.JSON(status, api.Error{
		Code:    status,
		Message: messageFor(err, status),
	})
}

func (s *Server) fail(ctx echo.Context, err error) error {
	return writeError(ctx, s.logger, err)
}

// errorHandler renders errors raised outside the handlers, such as unknown routes
// or malformed path parameters, in the same body as handler errors.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}
		if writeErr := writeError(ctx, logger, err); writeErr != nil {
			logger.Error("Failed to write error response", "error", writeErr)
		}
	}
}

func toKernelID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	kid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return kid, nil
}

func toKernelPrice(param string, amount api.Price) (kernel.Price, error) {
	price, err := kernel.PriceFromString(amount)
	if err != nil {
		return kernel.Price{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return price, nil
}

func badRequestBody(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
}
