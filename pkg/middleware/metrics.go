package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/inpulse/inpulse-api/pkg/metrics"
)

// MetricsMiddleware registra contagem e latência por rota
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := newStatusRecorder(w)

			next.ServeHTTP(recorder, r)

			metrics.RecordHTTPRequest(r.Method, normalizeEndpoint(r.URL.Path), strconv.Itoa(recorder.statusCode), time.Since(start))
		})
	}
}

// normalizeEndpoint troca ids por placeholders para limitar a cardinalidade dos labels
func normalizeEndpoint(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/tasks/"):
		return "/api/tasks/:id"
	case strings.HasPrefix(path, "/api/notifications/") && strings.HasSuffix(path, "/read"):
		return "/api/notifications/:id/read"
	case strings.HasPrefix(path, "/api/team/"):
		return "/api/team/:id"
	case strings.HasPrefix(path, "/api/cron/") && strings.HasSuffix(path, "/run"):
		return "/api/cron/:type/run"
	default:
		return path
	}
}
