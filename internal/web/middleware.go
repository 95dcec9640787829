package web

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// statusRecorder captures the status code and bytes written.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// knownRoutes bounds the route label; anything else is reported as "other".
var knownRoutes = map[string]bool{
	"/":             true,
	"/results":      true,
	"/download.csv": true,
	"/healthz":      true,
	"/metrics":      true,
}

func routeLabel(path string) string {
	if knownRoutes[path] {
		return path
	}
	return "other"
}

// requestLogging logs one line per request and records its latency. 5xx is
// logged at error, 4xx at warn, everything else at info. Health checks are
// only logged at debug.
func requestLogging(logger *zap.Logger, metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			route := routeLabel(r.URL.Path)
			metrics.observeRequest(r.Method, route, strconv.Itoa(rec.status), duration.Seconds())

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", duration),
				zap.Int64("bytes", rec.bytes),
				zap.String("remote_addr", r.RemoteAddr),
			}
			switch {
			case rec.status >= 500:
				logger.Error("request completed with server error", fields...)
			case rec.status >= 400:
				logger.Warn("request completed with client error", fields...)
			case route == "/healthz" || route == "/metrics":
				logger.Debug("request completed", fields...)
			default:
				logger.Info("request completed", fields...)
			}
		})
	}
}
