package auth

import (
	"net/http"

	"github.com/castwire/castwire/internal/shared"
)

// Authentication and authorization failures, each a distinct envelope error.
var (
	ErrAuthHeaderMissing = shared.NewAPIDetail(http.StatusUnauthorized,
		"authorization_header_missing", "Authorization header is expected")
	ErrAuthHeaderMalformed = shared.NewAPIDetail(http.StatusUnauthorized,
		"invalid_header", "Authorization header must be a bearer token")
	ErrInvalidToken = shared.NewAPIDetail(http.StatusUnauthorized,
		"invalid_token", "Unable to parse or verify the authentication token")
	ErrTokenExpired = shared.NewAPIDetail(http.StatusUnauthorized,
		"token_expired", "Token expired")
	ErrInvalidClaims = shared.NewAPIDetail(http.StatusUnauthorized,
		"invalid_claims", "Incorrect claims, check the audience and issuer")
	ErrTokenRevoked = shared.NewAPIDetail(http.StatusUnauthorized,
		"token_revoked", "Token has been revoked")
	ErrPermissionDenied = shared.NewAPIDetail(http.StatusForbidden,
		"unauthorized", "Permission not found")
)
