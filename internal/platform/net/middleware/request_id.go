package middleware

import (
	"net/http"

	"github.com/google/uuid"

	vnet "vitalsum/internal/platform/net"
)

// RequestID assigns a uuid to every request, honoring an inbound X-Request-ID,
// and mirrors it in the response header
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(vnet.WithRequest(r.Context(), id)))
	})
}
