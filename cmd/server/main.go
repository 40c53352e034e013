package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"biblio/internal/lending/handler"
	lendingmetrics "biblio/internal/lending/metrics"
	"biblio/internal/lending/service"
	bookstore "biblio/internal/lending/store/book"
	borrowerstore "biblio/internal/lending/store/borrower"
	catalogstore "biblio/internal/lending/store/catalog"
	"biblio/internal/platform/config"
	"biblio/internal/platform/database"
	"biblio/internal/platform/logger"
	request "biblio/pkg/platform/middleware/request"
	"biblio/pkg/platform/middleware/requesttime"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing biblio", "addr", cfg.Addr)

	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	dbCfg.MaxOpenConns = cfg.MaxOpenConns
	dbCfg.MaxIdleConns = cfg.MaxIdleConns
	pool, err := database.New(dbCfg)
	if err != nil {
		log.Error("database init failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close() //nolint:errcheck // best-effort cleanup on shutdown

	metrics := lendingmetrics.New()

	var svc *service.Service
	if pool != nil {
		db := pool.DB()
		svc = service.New(
			catalogstore.NewPostgres(db),
			bookstore.NewPostgres(db),
			borrowerstore.NewPostgres(db),
			service.WithTx(newLendingPostgresTx(db)),
			service.WithMetrics(metrics),
			service.WithLogger(log),
		)
		log.Info("using postgres stores")
	} else {
		// No DATABASE_URL: run on in-memory stores. Useful for demos and
		// local development; state does not survive a restart.
		svc = service.New(
			catalogstore.NewInMemory(),
			bookstore.NewInMemory(),
			borrowerstore.NewInMemory(),
			service.WithMetrics(metrics),
			service.WithLogger(log),
		)
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	h := handler.New(svc, log)

	r := chi.NewRouter()
	r.Use(request.Recovery(log))
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(request.Logger(log))
	r.Use(request.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if pool != nil {
			if err := pool.Health(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("database unreachable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(request.ContentTypeJSON)
		h.Register(r)
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
