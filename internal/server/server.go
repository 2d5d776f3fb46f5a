package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/gorilla/mux"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"

	"github.com/Nzyazin/fincalc/internal/core/handler"
	"github.com/Nzyazin/fincalc/internal/core/logger"
	"github.com/Nzyazin/fincalc/internal/core/metrics"
	middlWre "github.com/Nzyazin/fincalc/internal/core/middleware"
	"github.com/Nzyazin/fincalc/internal/core/repository"
	"github.com/Nzyazin/fincalc/internal/core/repository/memory"
	"github.com/Nzyazin/fincalc/internal/core/repository/redis"
	"github.com/Nzyazin/fincalc/internal/core/usecase"
	"github.com/Nzyazin/fincalc/pkg/config"
)

type Server struct {
	cfg               config.HTTPConfig
	router            *mux.Router
	handler           http.Handler
	log               logger.Logger
	httpServer        *http.Server
	calculatorHandler *handler.CalculatorHandler
	registry          *prom.Registry
	cache             repository.ResultCache
	rateLimiter       *middlWre.RateLimiter
}

func NewServer(ctx context.Context, cfg *config.Config, log logger.Logger) (*Server, error) {
	cache, err := newResultCache(ctx, cfg)
	if err != nil {
		return nil, err
	}

	registry := prom.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	calcMetrics, err := metrics.NewCalculations(registry)
	if err != nil {
		closeCache(cache, log)
		return nil, fmt.Errorf("register calculation metrics: %w", err)
	}

	calculatorUsecase := usecase.NewCalculatorUsecase(cache, cfg.Cache.TTL, calcMetrics, log)
	calculatorHandler := handler.NewCalculatorHandler(calculatorUsecase, log, cfg.HTTP.MaxBodyBytes)

	server := &Server{
		cfg:               cfg.HTTP,
		log:               log,
		router:            mux.NewRouter(),
		calculatorHandler: calculatorHandler,
		registry:          registry,
		cache:             cache,
	}

	server.router.Use(middlWre.RequestID())
	server.router.Use(loggingMiddleware(server.log))

	mw := middleware.New(middleware.Config{
		Recorder: prometheus.NewRecorder(prometheus.Config{Registry: registry}),
	})

	// Labelled by route template, so unknown scenarios cannot grow the series.
	server.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerID := ""
			if route := mux.CurrentRoute(r); route != nil {
				handlerID, _ = route.GetPathTemplate()
			}
			std.Handler(handlerID, mw, next).ServeHTTP(w, r)
		})
	})

	if cfg.RateLimit.Enabled() {
		server.rateLimiter = middlWre.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log, "/health", "/metrics")
	}

	server.RegisterRoutes()
	server.handler = middlWre.CORS(cfg.CORS.AllowedOrigins)(server.router)
	server.httpServer = &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           server.handler,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
	}

	return server, nil
}

// newResultCache returns nil when caching is disabled.
func newResultCache(ctx context.Context, cfg *config.Config) (repository.ResultCache, error) {
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		return memory.NewCache(), nil
	case config.CacheRedis:
		return redis.NewCache(ctx, cfg.Redis)
	default:
		return nil, nil
	}
}

func (s *Server) RegisterRoutes() {
	s.router.Use(
		middlWre.WithErrorHandler(s.log),
		middlWre.Recovery(s.log),
	)
	if s.rateLimiter != nil {
		s.router.Use(s.rateLimiter.Middleware())
	}

	s.calculatorHandler.RegisterRoutes(s.router)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})).Methods("GET")
	if s.cfg.PprofEnabled {
		s.router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	}
}

// Handler is the full middleware chain, CORS included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run blocks serving plain HTTP until Shutdown. The *http.Server is built in
// NewServer, so Shutdown may run concurrently with Run.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) RunTLS() error {
	return s.httpServer.ListenAndServeTLS(s.cfg.TLSCertFile, s.cfg.TLSKeyFile)
}

func (s *Server) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	var shutdownErr error

	go func() {
		err := s.httpServer.Shutdown(ctx)
		if err != nil {
			s.log.Error("failed to shutdown HTTP server", logger.ErrorField("error", err))
			shutdownErr = fmt.Errorf("HTTP server shutdown error: %w", err)
		}

		if s.rateLimiter != nil {
			s.rateLimiter.Stop()
		}

		if s.cache != nil {
			err := s.cache.Close()
			if err != nil {
				s.log.Error("failed to close result cache", logger.ErrorField("error", err))
				shutdownErr = errors.Join(shutdownErr, fmt.Errorf("cache shutdown error: %w", err))
			}
		}

		close(done)
	}()

	select {
	case <-done:
		return shutdownErr
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

func closeCache(cache repository.ResultCache, log logger.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Close(); err != nil {
		log.Error("failed to close result cache", logger.ErrorField("error", err))
	}
}

// loggingMiddleware logs each request once it has been served.
func loggingMiddleware(log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Info("HTTP request",
				logger.StringField("method", r.Method),
				logger.StringField("path", r.URL.Path),
				logger.StringField("remote_addr", r.RemoteAddr),
				logger.StringField("user_agent", r.UserAgent()),
				logger.StringField("request_id", middlWre.RequestIDFromContext(r.Context())),
				logger.DurationField("duration", time.Since(start)),
			)
		})
	}
}
