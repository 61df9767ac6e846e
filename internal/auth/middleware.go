package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/castwire/castwire/internal/platform/httpx"
)

// Middleware gates routes on a verified bearer credential carrying a
// required permission.
type Middleware struct {
	Verifier *Verifier
	Revoker  *Revoker
	Logger   *slog.Logger
}

// BearerToken extracts the credential from the Authorization header.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrAuthHeaderMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrAuthHeaderMalformed
	}
	return parts[1], nil
}

// Require verifies the request's bearer credential and checks that its
// permissions claim contains permission. The verified claim set is placed in
// the request context; handlers never re-validate the credential.
func (m Middleware) Require(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := BearerToken(r)
			if err != nil {
				httpx.RespondError(w, err)
				return
			}

			claims, err := m.Verifier.Parse(raw)
			if err != nil {
				httpx.RespondError(w, err)
				return
			}

			if m.Revoker != nil && claims.ID != "" {
				revoked, err := m.Revoker.IsRevoked(r.Context(), claims.ID)
				if err != nil {
					if m.Logger != nil {
						m.Logger.Warn("revocation check failed", slog.Any("error", err))
					}
				} else if revoked {
					httpx.RespondError(w, ErrTokenRevoked)
					return
				}
			}

			if !claims.HasPermission(permission) {
				httpx.RespondError(w, ErrPermissionDenied)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}
