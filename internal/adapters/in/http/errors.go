package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"shipments/internal/pkg/errs"
)

// statusFor maps an error classification code onto its HTTP status.
func statusFor(code string) int {
	switch code {
	case errs.CodeValidationError,
		errs.CodeInvalidID,
		errs.CodeInvalidStatusTransition,
		errs.CodeInvalidQueryParams:
		return http.StatusBadRequest
	case errs.CodeResourceNotFound:
		return http.StatusNotFound
	case errs.CodeDuplicateEntry:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders any error as the API's error envelope. Unclassified
// errors become 500s; in production their message is replaced so internal
// detail never leaks to clients.
func (s *Server) writeError(ctx echo.Context, err error) error {
	code := errs.Code(err)
	status := statusFor(code)

	message := err.Error()
	var details []errs.FieldError

	var validationErr *errs.ValidationError
	var transitionErr *errs.InvalidStatusTransitionError
	switch {
	case errors.As(err, &validationErr):
		message = validationErr.Message
		details = validationErr.Details
	case errors.As(err, &transitionErr):
		details = []errs.FieldError{{Field: "status", Message: transitionErr.Error()}}
	}

	if status == http.StatusInternalServerError {
		ctx.Logger().Errorf("unhandled error: %v", err)
		if s.production {
			message = "An unexpected error occurred"
		}
	} else if ctx.Logger().Level() <= log.DEBUG {
		ctx.Logger().Debugf("request failed: code=%s err=%v", code, err)
	}

	return ctx.JSON(status, ErrorResponse{
		Success: false,
		Message: message,
		Error: ErrorBody{
			Code:    code,
			Details: details,
		},
	})
}
