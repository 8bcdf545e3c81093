package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/hashicorp/go-multierror"
	"github.com/hatchdotlol/passcheck/pkg/api"
	"github.com/hatchdotlol/passcheck/pkg/metrics"
	"github.com/hatchdotlol/passcheck/pkg/util"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := util.NewLogger(os.Stdout, cfg.LogLevel)

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:     cfg.SentryDSN,
		Release: cfg.Version,
	}); err != nil {
		log.Fatal(err)
	}
	defer sentry.Flush(time.Second * 5)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	checks, err := openAudit(ctx, cfg, m, logger)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal(err)
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewServer(cfg, checks.recorder, m).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	notifier := util.NewNotifier(cfg.LoggingWebhook)
	notifier.LogMessage("Starting password API " + cfg.Version)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", server.Addr, "audit", checks.backend)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			sentry.CaptureException(err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var result error
	if err := server.Shutdown(shutdownCtx); err != nil {
		result = multierror.Append(result, err)
	}
	if err := checks.Close(shutdownCtx); err != nil {
		result = multierror.Append(result, err)
	}

	if result != nil {
		logger.Error("shutdown", "err", result)
		sentry.CaptureException(result)
	}

	notifier.LogMessage("Stopped password API " + cfg.Version)
}
