package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"parley/internal/auth"
	"parley/internal/httputil"
)

// Identity resolves an optional bearer token to a user id. Every route
// stays open: a missing, malformed or unverifiable token is never
// rejected, the request just proceeds as the anonymous user. The
// verifier may be nil when no JWKS endpoint is configured.
func Identity(verifier auth.TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := httputil.AnonymousUserID

			if verifier != nil {
				if token, ok := bearerToken(r); ok {
					subject, err := verifier.Subject(token)
					if err != nil {
						logger.Debug("bearer token rejected, continuing anonymously",
							"path", r.URL.Path,
							"error", err,
						)
					} else {
						userID = subject
					}
				}
			}

			next.ServeHTTP(w, httputil.WithUserID(r, userID))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
