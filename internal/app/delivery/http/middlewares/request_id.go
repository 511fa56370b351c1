package middlewares

import (
	"context"
	"net/http"

	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/utils"
)

// RequestID attaches a request id to the context and echoes it back in the
// response header so log lines can be correlated with client reports.
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
