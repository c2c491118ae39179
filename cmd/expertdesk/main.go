package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ymatsuda/expertdesk/internal/config"
	"github.com/ymatsuda/expertdesk/internal/llm"
	llmmock "github.com/ymatsuda/expertdesk/internal/llm/mock"
	"github.com/ymatsuda/expertdesk/internal/llm/openai"
	"github.com/ymatsuda/expertdesk/internal/metrics"
	"github.com/ymatsuda/expertdesk/internal/secrets"
	"github.com/ymatsuda/expertdesk/internal/service"
	"github.com/ymatsuda/expertdesk/internal/web"
)

func main() {
	// .env is optional, same as the secrets file
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resolver := secrets.NewResolver(secrets.NewFileStore(cfg.Secrets.File), logger)

	var client llm.Client
	switch cfg.LLM.Provider {
	case "mock":
		logger.Warn("using mock LLM client")
		client = llmmock.New()
	default:
		client = openai.New(openai.Config{
			Model:   cfg.LLM.OpenAI.Model,
			BaseURL: cfg.LLM.OpenAI.BaseURL,
			Timeout: cfg.LLM.OpenAI.Timeout,
		}, resolver, logger)
	}

	// Absence is not fatal: the key is re-resolved per request and the
	// service reports the configuration error to the user until then.
	if _, ok := resolver.Resolve(); !ok {
		logger.Warn("no OpenAI API key found at startup",
			zap.String("env", secrets.EnvAPIKey),
			zap.String("secrets_file", cfg.Secrets.File),
		)
	}

	m := metrics.New()

	svc := service.NewConsultService(service.ConsultServiceDeps{
		Credentials: resolver,
		LLM:         client,
		Logger:      logger,
		Metrics:     m,
		Provider:    cfg.LLM.Provider,
	})

	appServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: web.NewServer(svc, logger),
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metrics.Handler())
	metricsMux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	metricsServer := &http.Server{
		Addr:    cfg.Server.MetricsAddr,
		Handler: metricsMux,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("expertdesk listening", zap.String("addr", cfg.Server.Addr))
		if err := appServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("metrics listening", zap.String("addr", cfg.Server.MetricsAddr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_ = metricsServer.Shutdown(shutdownCtx)
		return appServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", zap.Error(err))
		return
	}

	logger.Info("shutdown complete")
}
