package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/castwire/castwire/internal/platform/httpx"
)

// DecodeBody parses the request body into target. A missing or syntactically
// broken body is a 400; a well-formed body with a wrongly typed field maps to
// that field's own 422 via fieldErr.
func DecodeBody(r *http.Request, target any, fieldErr func(field string) error) error {
	if r.Body == nil {
		return httpx.ErrBadRequest
	}
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			field := strings.SplitN(typeErr.Field, ".", 2)[0]
			field = strings.SplitN(field, "[", 2)[0]
			if e := fieldErr(field); e != nil {
				return e
			}
			return httpx.ErrUnprocessable
		}
		return httpx.ErrBadRequest
	}
	return nil
}
