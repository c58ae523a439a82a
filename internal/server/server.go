// Package server wires configuration, telemetry, the provider stack, the
// reconciler, and the HTTP surface into a runnable service.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	appmatches "match-alerts-service/internal/app/matches"
	appprefs "match-alerts-service/internal/app/prefs"
	"match-alerts-service/internal/config"
	"match-alerts-service/internal/feed"
	httpapi "match-alerts-service/internal/http"
	"match-alerts-service/internal/http/handlers"
	"match-alerts-service/internal/http/middleware"
	"match-alerts-service/internal/logging"
	"match-alerts-service/internal/metrics"
	"match-alerts-service/internal/poller"
	"match-alerts-service/internal/prefs"
	"match-alerts-service/internal/push"
	"match-alerts-service/internal/rules"
)

// Server owns the long-running components and coordinates startup/shutdown.
type Server struct {
	cfg    config.Config
	logger *slog.Logger

	poller      *poller.Poller
	pushCh      *push.Channel
	httpSrv     httpServer
	metricsSrv  httpServer
	metricsStop func(context.Context) error
}

// New assembles a Server from configuration. Construction fails only on
// telemetry setup errors; everything else is deferred to Run.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, promHandler, metricsStop, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return nil, err
	}

	provider := newProviderFactory(logger).build(cfg)

	store, err := buildPrefsStore(cfg, logger)
	if err != nil {
		return nil, err
	}
	prefSvc := appprefs.NewService(store)

	rec := feed.NewReconciler()
	eval := rules.NewEvaluator(logger)
	matchSvc := appmatches.NewService(rec, eval, prefSvc)

	p := poller.New(provider, rec, matchSvc, prefSvc, logger, recorder, cfg.PollInterval)

	var pushCh *push.Channel
	if cfg.Push.Enabled && cfg.Push.URL != "" {
		pushCh = push.NewChannel(push.Config{
			URL:         cfg.Push.URL,
			BackoffBase: cfg.Push.BackoffBase,
			BackoffMax:  cfg.Push.BackoffMax,
			MaxAttempts: cfg.Push.MaxAttempts,
		}, rec, logger, recorder)
	}

	s := &Server{
		cfg:         cfg,
		logger:      logger,
		poller:      p,
		pushCh:      pushCh,
		metricsStop: metricsStop,
	}
	s.httpSrv = s.buildHTTPServer(matchSvc, prefSvc, recorder)
	if promHandler != nil {
		s.metricsSrv = buildMetricsServer(cfg.Metrics.Port, promHandler)
	}
	return s, nil
}

func buildPrefsStore(cfg config.Config, logger *slog.Logger) (prefs.Store, error) {
	switch cfg.Prefs.Backend {
	case "", "memory":
		return prefs.NewMemoryStore(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.Prefs.RedisAddr,
			DB:   cfg.Prefs.RedisDB,
		})
		return prefs.NewRedisStore(client), nil
	case "fs":
		return prefs.NewFSStore(cfg.Prefs.DataDir), nil
	default:
		logging.Warn(logger, "unknown preferences backend, using memory",
			slog.String("backend", cfg.Prefs.Backend))
		return prefs.NewMemoryStore(), nil
	}
}

func (s *Server) buildHTTPServer(matchSvc *appmatches.Service, prefSvc *appprefs.Service, recorder *metrics.Recorder) httpServer {
	var pushStatus func() push.Status
	if s.pushCh != nil {
		pushStatus = s.pushCh.Status
	}
	h := handlers.NewHandler(matchSvc, prefSvc, s.logger, s.poller.Status, pushStatus)

	handler := middleware.LoggingMiddleware(s.logger, recorder, httpapi.NewRouter(h))
	handler = corsMiddleware(s.cfg.CORSOrigins).Handler(handler)

	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
}

func corsMiddleware(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID", "X-User-ID"},
	})
}

func buildMetricsServer(port string, handler http.Handler) httpServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
}

// Run starts the poller, the push channel, and the HTTP servers, then blocks
// until the context is cancelled or a server fails.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) error {
	s.poller.Start(ctx)

	if s.pushCh != nil {
		go s.pushCh.Run(ctx)
	}

	errCh := make(chan error, 2)
	if s.metricsSrv != nil {
		launchServer(s.metricsSrv, "metrics", s.logger, errCh)
	}
	launchServer(s.httpSrv, "http", s.logger, errCh)

	s.logger.Info("server started",
		slog.String(logging.FieldPort, s.cfg.Port),
		slog.String("provider", s.cfg.Provider),
		slog.Bool("push", s.pushCh != nil),
	)

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-errCh:
		runErr = err
		stop()
	}

	s.gracefulShutdown()
	return runErr
}

func launchServer(srv httpServer, name string, logger *slog.Logger, errCh chan<- error) {
	go func() {
		logging.Info(logger, "listening", slog.String("server", name), slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(logger, "server failed", err, slog.String("server", name))
			errCh <- err
		}
	}()
}

func (s *Server) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.poller.Stop(ctx); err != nil {
		s.logger.Warn("poller stop failed", "error", err)
	}
	if c, ok := s.poller.Provider().(interface{ Close() }); ok {
		c.Close()
	}

	if s.httpSrv != nil {
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			s.logger.Warn("http shutdown failed", "error", err)
		}
	}
	if s.metricsSrv != nil {
		if err := s.metricsSrv.Shutdown(ctx); err != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}
	if s.metricsStop != nil {
		if err := s.metricsStop(ctx); err != nil {
			s.logger.Warn("telemetry shutdown failed", "error", err)
		}
	}
	s.logger.Info("server stopped")
}
