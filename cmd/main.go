package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "donation-campaign/internal/adapter/http"
	"donation-campaign/internal/adapter/usecase"
	"donation-campaign/internal/config"
	"donation-campaign/internal/core/domain"
)

// main is the entry point of the donation campaign service. It loads
// configuration, seeds the in-memory campaign state, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server. Donations are not kept across restarts.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	state, err := domain.NewCampaignState(cfg.Campaign.SeedAmount, cfg.Campaign.GoalAmount)
	if err != nil {
		logger.Error("campaign state error", slog.Any("error", err))
		os.Exit(1)
	}

	svc, err := usecase.NewCampaignUseCase(state, usecase.Options{
		MaxDonation: cfg.Campaign.MaxDonation,
		Currency:    cfg.Campaign.Currency,
		Locale:      cfg.Campaign.Locale,
	})
	if err != nil {
		logger.Error("campaign use case error", slog.Any("error", err))
		os.Exit(1)
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.Float64("seed_amount", state.SeedAmount()),
			slog.Float64("goal_amount", state.GoalAmount()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return
	}
	logger.Info("server gracefully stopped", slog.Int("donation_count", state.DonationCount()))
}
