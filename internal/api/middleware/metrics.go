package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/schnittwerk/SW-SchedulingService/pkg/metrics"
)

// statusRecorder перехватывает статус код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает метрики HTTP запросов.
// В качестве endpoint использует шаблон маршрута mux, чтобы не плодить
// кардинальность по конкретным ID в URL.
func MetricsMiddleware(m *metrics.Metrics, serviceName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			endpoint := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					endpoint = tmpl
				}
			}

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(rec.status)

			m.HTTPRequestsTotal.WithLabelValues(r.Method, endpoint, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, endpoint).Observe(duration)
		})
	}
}
