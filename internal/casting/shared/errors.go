package shared

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	internalShared "github.com/castwire/castwire/internal/shared"
)

// InvalidInfo builds the 422 returned when a submitted field violates a
// shape or range rule. resource is "actor" or "movie".
func InvalidInfo(resource, description string) *internalShared.APIError {
	return internalShared.NewAPIDetail(http.StatusUnprocessableEntity,
		fmt.Sprintf("invalid %s informations", resource), description)
}

// MissingField builds the 422 returned when a required field is absent
// after validation.
func MissingField(resource, field string) *internalShared.APIError {
	return internalShared.NewAPIDetail(http.StatusUnprocessableEntity,
		fmt.Sprintf("missing %s informations", resource),
		fmt.Sprintf("`%s` is required", field))
}

// IntegrityError builds the 422 returned when the persistence layer rejects
// a write for a uniqueness or foreign-key violation.
func IntegrityError(description string) *internalShared.APIError {
	return internalShared.NewAPIDetail(http.StatusUnprocessableEntity,
		"integrity error", description)
}

// NotFound builds the 404 detail returned for id lookup misses and empty
// collection listings.
func NotFound(description string) *internalShared.APIError {
	return internalShared.NewAPIDetail(http.StatusNotFound,
		"resource not found", description)
}

// WrapIntegrity classifies a persistence failure by SQLSTATE into the shared
// sentinel errors. Constraint kinds are matched structurally, never by
// message text.
func WrapIntegrity(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", internalShared.ErrDuplicate, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w: %s", internalShared.ErrDanglingReference, pgErr.ConstraintName)
		}
	}
	return err
}
