package http

import (
	"errors"
	"net/http"

	"drivethrough/internal/core/application/usecases/commands"
	"drivethrough/internal/core/ports"
	"drivethrough/internal/generated/servers"
	"drivethrough/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	messageInternal    = "Internal server error"
	messageUnavailable = "The order assistant is unavailable, please try again"
)

// statusFor maps a use case error to its HTTP status. Rejections come first: a
// rejected batch also wraps the unknown item or missing line that caused it.
func statusFor(err error) int {
	switch {
	case commands.IsRejection(err),
		errors.Is(err, commands.ErrNothingToUndo),
		errors.Is(err, commands.ErrOrderIsEmpty):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ports.ErrProposerUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error. Server side failures are logged and answered
// with a generic message.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()

	switch status {
	case http.StatusInternalServerError:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = messageInternal
	case http.StatusBadGateway:
		s.logger.WarnContext(ctx.Request().Context(), "Intent proposer failed",
			"path", ctx.Path(), "error", err)
		message = messageUnavailable
	}

	return ctx.JSON(status, servers.Error{Code: int32(status), Message: message}) //nolint:gosec // HTTP status codes fit
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
