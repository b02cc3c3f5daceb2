package middlewares

import (
	"net/http"
	"time"

	"nostalgic/nostalgic/utils/logging"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const TraceHeader = "X-Request-ID"

// Trace tags each request with a trace id, reusing the caller's X-Request-ID
// when present, and echoes it back on the response.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		w.Header().Set(TraceHeader, traceID)
		next.ServeHTTP(w, r.WithContext(logging.WithTraceID(r.Context(), traceID)))
	})
}

// RequestLog writes one line per request to the request log.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logging.RequestLogger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", r.RemoteAddr),
			zap.String("trace_id", logging.TraceID(r.Context())),
		)
	})
}
