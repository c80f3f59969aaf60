package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	"hrdash/internal/transport/http/api"
)

// DecodeJSON decodes the request body into dst. On failure it writes 413 when the body
// exceeded the configured limit and 400 otherwise, and reports false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any, requestID string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", requestID)
			return false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return false
	}
	return true
}
