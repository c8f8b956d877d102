package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"parley/internal/httputil"
)

// RateLimit creates rate limiting middleware keyed by resolved user id,
// or by remote address for anonymous traffic.
func RateLimit(requestLimit int, windowLength time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requestLimit,
		windowLength,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			if userID := httputil.GetUserID(r); userID != httputil.AnonymousUserID {
				return "user:" + userID, nil
			}
			return "ip:" + r.RemoteAddr, nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "60")
			httputil.RespondError(w, http.StatusTooManyRequests, "rate limit exceeded")
		}),
	)
}
