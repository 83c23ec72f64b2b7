package http

import (
	"errors"
	"net/http"

	"hauling/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body every route returns on failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain errors onto HTTP statuses: validation to 400,
// ownership to 403, unknown ids to 404, and both conflicts and illegal
// transitions to 409. Anything unrecognized is a 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var (
		notFound   *errs.ObjectNotFoundError
		forbidden  *errs.ForbiddenError
		conflict   *errs.ConflictError
		illegal    *errs.IllegalStateTransitionError
		invalid    *errs.ValueIsInvalidError
		required   *errs.ValueIsRequiredError
		outOfRange *errs.ValueIsOutOfRangeError
		badVersion *errs.VersionIsInvalidError
	)

	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &forbidden):
		status = http.StatusForbidden
	case errors.As(err, &conflict), errors.As(err, &illegal):
		status = http.StatusConflict
	case errors.As(err, &invalid), errors.As(err, &required),
		errors.As(err, &outOfRange), errors.As(err, &badVersion):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// respondBadRequest reports a malformed or rejected request body.
func respondBadRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}
