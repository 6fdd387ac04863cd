package mux

import (
	"hobbitname-server/pkg/namegen"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	namesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hobbitname_names_generated_total",
		Help: "Number of names generated, by resolved gender.",
	}, []string{"gender"})
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "hobbitname_http_duration_seconds",
		Help: "Duration of non-WS HTTP requests.",
	}, []string{"path"})
)

func countGenerated(g namegen.Gender) {
	namesGenerated.WithLabelValues(g.String()).Inc()
}

func (m *Mux) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if route := gmux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}

		if path == wsPath {
			next.ServeHTTP(w, r)
			return
		}

		timer := prometheus.NewTimer(httpDuration.WithLabelValues(path))
		defer timer.ObserveDuration()
		next.ServeHTTP(w, r)
	})
}
