package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"parley/internal/config"
)

// ParseJSON decodes JSON from the request body into the given
// destination. The body is capped at 1MB; unknown fields are tolerated
// since message parts and attachments carry provider-shaped payloads.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxRequestBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
