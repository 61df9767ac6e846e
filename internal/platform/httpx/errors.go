package httpx

import (
	"net/http"

	"github.com/castwire/castwire/internal/shared"
)

// Common envelope errors produced at the routing layer.
var (
	ErrBadRequest       = shared.NewAPIError(http.StatusBadRequest, "bad request")
	ErrNotFound         = shared.NewAPIError(http.StatusNotFound, "resource not found")
	ErrMethodNotAllowed = shared.NewAPIError(http.StatusMethodNotAllowed, "The method is not allowed for the requested URL")
	ErrUnprocessable    = shared.NewAPIError(http.StatusUnprocessableEntity, "unprocessable")
	ErrInternal         = shared.NewAPIError(http.StatusInternalServerError, "internal server error")
)

// RespondError maps any error to the standard envelope. Errors that are not
// APIErrors collapse to a 500; nothing is ever surfaced raw.
func RespondError(w http.ResponseWriter, err error) {
	if apiErr, ok := shared.AsAPIError(err); ok {
		Fail(w, apiErr.Status, apiErr.Message)
		return
	}
	Fail(w, ErrInternal.Status, ErrInternal.Message)
}
