package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the transport-level view of an error: what status to send and
// what body to write.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP translates any error into an HTTPError. AppErrors carry their own
// status and code; anything else becomes an opaque 500 so internal details
// never leak into a response body.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}
