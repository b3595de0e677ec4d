package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"community-seva/internal/agent"
	"community-seva/internal/directory"
	"community-seva/internal/donation"
	"community-seva/internal/donation/metrics"
	"community-seva/internal/eligibility"
	"community-seva/internal/labreport"
	"community-seva/internal/platform/config"
	"community-seva/internal/platform/httpserver"
	"community-seva/internal/platform/logger"
	"community-seva/internal/platform/telegram"
	"community-seva/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := httpserver.New(cfg.Addr, newRouter(cfg, log, reg))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newRouter wires services from configuration. Optional integrations
// degrade to 503 responses when their settings are missing.
func newRouter(cfg config.Config, log *slog.Logger, reg *prometheus.Registry) http.Handler {
	var notifier report.Notifier
	if cfg.NotificationsEnabled() {
		notifier = telegram.NewClient(cfg.TelegramBotToken, cfg.TelegramAPIURL)
	} else {
		log.Warn("coordinator notifications disabled, set TELEGRAM_BOT_TOKEN and COORDINATOR_CHAT_ID to enable")
	}
	reportSvc := report.NewService(notifier, cfg.CoordinatorChatID, cfg.ReportFontPath, log)

	var analyzer labreport.Analyzer
	if cfg.AnalysisEnabled() {
		analyzer = agent.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiURL)
	} else {
		log.Warn("lab report analysis disabled, set GEMINI_API_KEY to enable")
	}

	var dirNotifier directory.Notifier
	if reportSvc.Enabled() {
		dirNotifier = reportSvc
	}

	clock := time.Now
	evaluator := eligibility.NewEvaluator(eligibility.WithClock(clock))
	donationSvc := donation.NewService(evaluator, reportSvc, metrics.New(reg), log, clock)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpserver.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(httpserver.CORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Route("/api", func(r chi.Router) {
		donation.RegisterRoutes(r, donation.NewHandler(donationSvc, log))
		directory.RegisterRoutes(r, directory.NewHandler(directory.New(dirNotifier, log), log))
		labreport.RegisterRoutes(r, labreport.NewHandler(analyzer, log))
	})

	return r
}
