package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"languager/internal/api"
	"languager/internal/security"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	tokens, err := security.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.AccessTokenTTL)
	if err != nil {
		return fmt.Errorf("init token manager: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, tokens)
	if err != nil {
		return err
	}
	defer a.Close()

	router := api.New(api.Services{
		Auth:       a.auth,
		Audio:      a.audio,
		Vocabulary: a.vocabulary,
		Grammar:    a.grammar,
	}, log)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.sweeper.Run(gctx, cfg.Storage.SweepInterval)
		return nil
	})

	g.Go(func() error {
		log.Info("HTTP server started", zap.String("address", cfg.HTTP.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutdown signal received, stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}
