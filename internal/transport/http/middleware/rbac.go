package middleware

import (
	"net/http"

	"hrdash/internal/transport/http/api"
)

func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetIdentity(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireManager admits callers whose identity carries the manager flag.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		if !identity.IsManager {
			api.Fail(w, http.StatusForbidden, "forbidden", "you must be a manager to set and update goals", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
