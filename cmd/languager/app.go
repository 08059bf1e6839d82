package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"languager/internal/database"
	"languager/internal/enginepool"
	"languager/internal/grammar"
	"languager/internal/media"
	"languager/internal/repository/postgres"
	"languager/internal/security"
	"languager/internal/service"
	"languager/internal/tempstore"
	"languager/internal/transcriber"
	"languager/internal/translator"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// One idle engine per collaborator keeps memory flat when users switch languages
const idleEnginesPerPool = 1

// app holds everything a command needs after bootstrap
type app struct {
	db          *sql.DB
	auth        *service.AuthService
	audio       *service.AudioService
	vocabulary  *service.VocabularyService
	grammar     *service.GrammarService
	sweeper     *service.TempSweeper
	translators *enginepool.Pool[service.TranslationEngine]
	checkers    *enginepool.Pool[service.GrammarEngine]
}

// newApp connects the database, applies migrations and wires the services.
// tokens may be nil for commands that never issue bearer tokens.
func newApp(ctx context.Context, tokens *security.TokenManager) (*app, error) {
	db, err := database.Connect(ctx, cfg.DSN(), database.DefaultRetryPolicy, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	log.Info("Database connection established")

	if err := database.Migrate(db, cfg.Database.MigrationsPath, database.Up, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	userRepo := postgres.NewUserRepo(db)
	audioRepo := postgres.NewAudioRepo(db)
	vocabRepo := postgres.NewVocabularyRepo(db)

	fsys := afero.NewOsFs()
	store := tempstore.New(fsys, cfg.Storage.TempAudioDir)

	whisper := transcriber.New(transcriber.Config{
		URL:     cfg.Whisper.URL,
		Model:   cfg.Whisper.Model,
		Timeout: cfg.Whisper.Timeout,
	}, fsys)
	ffmpeg := media.NewFFmpeg(cfg.FFmpegPath, log)

	ollama := translator.New(translator.Config{
		URL:     cfg.Ollama.URL,
		Model:   cfg.Ollama.Model,
		Timeout: cfg.Ollama.Timeout,
	})
	translators := enginepool.New("translator", func(ctx context.Context, target string) (service.TranslationEngine, error) {
		engine, err := ollama.NewEngine(ctx, target)
		if err != nil {
			return nil, err
		}
		return engine, nil
	}, idleEnginesPerPool, log)

	languageTool := grammar.New(grammar.Config{
		URL:     cfg.LanguageTool.URL,
		Timeout: cfg.LanguageTool.Timeout,
	})
	checkers := enginepool.New("grammar", func(ctx context.Context, locale string) (service.GrammarEngine, error) {
		engine, err := languageTool.NewEngine(ctx, locale)
		if err != nil {
			return nil, err
		}
		return engine, nil
	}, idleEnginesPerPool, log)

	return &app{
		db:          db,
		auth:        service.NewAuthService(userRepo, tokens, log),
		audio:       service.NewAudioService(audioRepo, store, whisper, ffmpeg, log),
		vocabulary:  service.NewVocabularyService(vocabRepo, translators, log),
		grammar:     service.NewGrammarService(checkers, log),
		sweeper:     service.NewTempSweeper(store, cfg.Storage.MaxAge, log),
		translators: translators,
		checkers:    checkers,
	}, nil
}

// Close releases collaborator engines and the database pool
func (a *app) Close() error {
	err := errors.Join(
		a.translators.Close(),
		a.checkers.Close(),
		a.db.Close(),
	)
	if err != nil {
		log.Warn("Shutdown finished with errors", zap.Error(err))
	}
	return err
}
