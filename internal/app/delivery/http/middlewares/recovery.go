package middlewares

import (
	"net/http"

	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"
	"clinicore-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns handler panics into a generic 500 so one request can never
// take down the process.
func (m *Middlewares) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Error("panic recovered",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stacktrace"),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
