package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"labflow/internal/core/application/usecases/commands"
	"labflow/internal/core/domain/model/sample"
	"labflow/internal/pkg/errs"
)

// errorBody is the JSON error envelope of the API.
type errorBody struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Missing []string `json:"missingFields,omitempty"`
	Extra   []string `json:"extraFields,omitempty"`
}

// writeError maps a domain error to its HTTP status. Validation failures
// are client errors, access violations 403, lifecycle and version conflicts
// 409, schema mismatches 422.
func writeError(ctx echo.Context, err error) error {
	var schemaErr *sample.SchemaMismatchError
	if errors.As(err, &schemaErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, errorBody{
			Code:    http.StatusUnprocessableEntity,
			Message: schemaErr.Error(),
			Missing: schemaErr.Missing,
			Extra:   schemaErr.Extra,
		})
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, commands.ErrOrderNotPending):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrInvalidReference),
		errors.Is(err, sample.ErrResultsNotRegistered),
		errors.Is(err, sample.ErrResultsAlreadyRegistered),
		errors.Is(err, sample.ErrSampleInactive),
		errors.Is(err, commands.ErrNoCollectibleItems),
		errors.Is(err, commands.ErrNoOrderChangesRequested),
		errors.Is(err, commands.ErrPasswordIsTooShort):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorBody{Code: status, Message: err.Error()})
}

// badRequest reports a malformed request body or path parameter.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
