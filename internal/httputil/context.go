package httputil

import (
	"context"
	"net/http"
)

// AnonymousUserID identifies requests that carry no verifiable identity.
// Routes never reject on identity; everything an unauthenticated front
// end writes lands under this user.
const AnonymousUserID = "anonymous"

// Context key type to avoid collisions
type contextKey string

const userIDKey contextKey = "userID"

// WithUserID adds userID to the request context
func WithUserID(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, userID)
	return r.WithContext(ctx)
}

// GetUserID retrieves the user id resolved by the identity middleware,
// falling back to the anonymous user when none was set.
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	if userID == "" {
		return AnonymousUserID
	}
	return userID
}
