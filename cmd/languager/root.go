package main

import (
	"fmt"

	"languager/internal/config"
	"languager/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "languager",
	Short: "Languager - Russian transcription and vocabulary backend",
	Long: `Languager transcribes Russian audio and video, keeps a personal
vocabulary with translation suggestions and checks grammar.

It is served as an HTTP API (serve) and as a Telegram bot (bot).`,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err = logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("Configuration loaded", zap.String("env", cfg.Env))
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if log != nil {
		_ = log.Sync()
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd, botCmd, migrateCmd)
}
