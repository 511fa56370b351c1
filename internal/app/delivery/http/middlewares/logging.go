package middlewares

import (
	"net/http"
	"time"

	"clinicore-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestLogger emits one structured line per request.
func (m *Middlewares) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, statusCode: constvars.StatusOK}

		next.ServeHTTP(rec, r)

		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		m.Log.Info("request completed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		)
	})
}
