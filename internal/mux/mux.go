package mux

import (
	"context"
	"hobbitname-server/internal/util"
	"hobbitname-server/pkg/namegen"
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	ctxRequestIDKey ctxKey = iota
)

const requestIDHeader = "X-Request-ID"

const defaultMaxBatch = 100

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config    config
	version   string
	generator *namegen.Generator
}

type config struct {
	// maxBatch is the most names a single request may ask for
	maxBatch int

	// poolCacheTTL is how long pool responses are cached, zero disables the cache
	poolCacheTTL time.Duration
}

// Options configures a Mux
type Options struct {
	MaxBatch     int
	PoolCacheTTL time.Duration
}

// NewMux returns a new HTTP mux.
// If generator has no OnGenerate hook, NewMux installs one that records metrics.
func NewMux(version string, generator *namegen.Generator, opts Options) *Mux {
	if generator == nil {
		generator = namegen.New(nil)
	}

	if generator.OnGenerate == nil {
		generator.OnGenerate = countGenerated
	}

	if opts.MaxBatch < 1 {
		opts.MaxBatch = defaultMaxBatch
	}

	this := &Mux{
		Router:    gmux.NewRouter(),
		version:   version,
		generator: generator,
		config: config{
			maxBatch:     opts.MaxBatch,
			poolCacheTTL: opts.PoolCacheTTL,
		},
	}

	this.Router.Use(this.requestIDMiddleware, this.metricsMiddleware)

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/metrics").Handler(promhttp.Handler())
	r.Methods(http.MethodGet).Path("/name").Handler(this.getName())
	r.Methods(http.MethodGet).Path(wsPath).Handler(this.getNameWS())
	r.Methods(http.MethodGet).Path("/pool/{category}").Handler(this.poolCache(this.getPool()))
	r.Methods(http.MethodGet).Path("/param/{name}").Handler(this.getParam())

	// Use only applies to matched routes
	r.NotFoundHandler = this.requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, nil)
	}))
	r.MethodNotAllowedHandler = this.requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, nil)
	}))

	return this
}

func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = util.NewRequestID()
		}

		w.Header().Set(requestIDHeader, id)
		logrus.WithField("requestID", id).WithField("path", r.URL.Path).Debug("handling request")

		newCtx := context.WithValue(r.Context(), ctxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(ctxRequestIDKey).(string)
	return id
}
