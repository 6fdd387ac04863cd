package main

import (
	"flag"
	"hobbitname-server/internal/config"
	"hobbitname-server/internal/mux"
	"hobbitname-server/internal/rng"
	"hobbitname-server/pkg/namegen"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()

	// fail fast
	if err := config.Load(); err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	setupLogger()

	cfg := config.Instance()
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "X-Request-ID"},
		AllowedMethods: []string{http.MethodGet},
	})

	m := mux.NewMux(Version, newGenerator(cfg), mux.Options{
		MaxBatch:     cfg.MaxBatch,
		PoolCacheTTL: time.Second * time.Duration(cfg.PoolCacheTTL),
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(m)),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func newGenerator(cfg config.Config) *namegen.Generator {
	if cfg.Generator.Source == "math" {
		logrus.WithField("seed", cfg.Generator.Seed).Warn("using seeded math/rand source")
		return namegen.New(rng.NewMath(cfg.Generator.Seed))
	}

	return namegen.New(rng.Crypto{})
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
