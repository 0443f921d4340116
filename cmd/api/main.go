package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/discount-engine/internal/catalog"
	"github.com/noah-isme/discount-engine/internal/config"
	"github.com/noah-isme/discount-engine/internal/discount"
	"github.com/noah-isme/discount-engine/internal/health"
	"github.com/noah-isme/discount-engine/internal/obs"
	"github.com/noah-isme/discount-engine/internal/quote"
	"github.com/noah-isme/discount-engine/internal/ratelimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	rules, err := loadCatalog(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("load discount catalog")
	}
	logger.Info().Int("rules", len(rules)).Msg("discount catalog loaded")

	calculator := discount.NewCalculator(rules, nil)

	httpMetrics := obs.NewHTTPMetrics(cfg.MetricsNamespace, obs.ParseBucketsCSV(cfg.MetricsBucketsCSV), nil)
	domainMetrics := obs.NewDomainMetrics(cfg.MetricsNamespace, nil)

	quoteHandler := &quote.Handler{
		Calculator: calculator,
		Logger:     logger,
		Metrics:    domainMetrics,
	}

	limiter := ratelimit.Handler{
		Limiter: ratelimit.NewFixedWindow(),
		Config: ratelimit.Config{
			Key:    func(r *http.Request) string { return r.RemoteAddr },
			Window: cfg.RateLimitWindow,
			Max:    cfg.RateLimitMax,
		},
		OnError: func(err error) {
			logger.Warn().Err(err).Msg("rate limiter")
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(obs.RoutePatternMiddleware)
	r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Handle("/metrics", promhttp.Handler())

	healthHandler := health.Handler{Rules: calculator.Rules}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.With(limiter.Middleware).Post("/quotes", quoteHandler.Create)
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown server")
		}
	}()

	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server exited unexpectedly")
	}
	logger.Info().Msg("server stopped")
}

func loadCatalog(cfg *config.Config) ([]discount.Rule, error) {
	if cfg.CatalogPath != "" {
		return catalog.Load(cfg.CatalogPath)
	}
	return catalog.FromJSON(cfg.CatalogJSON)
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}
