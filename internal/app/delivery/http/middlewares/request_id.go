package middlewares

import (
	"context"
	"net/http"

	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/utils"
)

// RequestID takes the client's X-Request-ID if it sent one, otherwise mints
// our own, and echoes it back on the response.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}

		w.Header().Set(constvars.HeaderXRequestID, requestID)

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
