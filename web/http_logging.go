// ABOUTME: HTTP logging middleware for the web server, emitting one structured zap line per request.
// ABOUTME: Each request gets a ULID request ID stored in its context and echoed in X-Request-ID.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID returns the request ID assigned by the logging middleware, or
// "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := ulid.Make().String()
			w.Header().Set(requestIDHeader, id)

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.Info("web request",
				zap.String("request_id", id),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", rec.bytes),
				zap.Duration("duration", time.Since(start).Round(time.Microsecond)),
				zap.String("remote", r.RemoteAddr),
			)
		})
	}
}
