// Package api assembles the HTTP surface:
//
//	GET    /api/health                          health check (public)
//	POST   /api/auth/register                   register (public)
//	POST   /api/auth/token                      password login (public)
//	GET    /api/auth/me                         current user (auth)
//	POST   /api/audio/transcribe-audio          upload and transcribe (auth)
//	POST   /api/audio/upload-and-transcribe     upload and transcribe (auth)
//	GET    /api/audio/my-transcriptions         list transcriptions (auth)
//	DELETE /api/audio/transcriptions/{id}       delete transcription (auth)
//	POST   /api/vocabulary/                     save word (auth)
//	GET    /api/vocabulary/                     list words (auth)
//	DELETE /api/vocabulary/{id}                 delete word (auth)
//	POST   /api/vocabulary/suggest-translation  suggest translation (auth)
//	POST   /api/grammar/check                   grammar check (auth)
package api

import (
	audioAPI "languager/internal/api/http/audio"
	grammarAPI "languager/internal/api/http/grammar"
	healthAPI "languager/internal/api/http/health"
	"languager/internal/api/http/middleware"
	"languager/internal/api/http/middleware/auth"
	"languager/internal/api/http/middleware/logger"
	userAPI "languager/internal/api/http/user"
	vocabularyAPI "languager/internal/api/http/vocabulary"
	"languager/internal/service"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Services are the application services exposed over HTTP
type Services struct {
	Auth       *service.AuthService
	Audio      *service.AudioService
	Vocabulary *service.VocabularyService
	Grammar    *service.GrammarService
}

type Handlers struct {
	Health     *healthAPI.Handler
	User       *userAPI.Handler
	Audio      *audioAPI.Handler
	Vocabulary *vocabularyAPI.Handler
	Grammar    *grammarAPI.Handler
}

// New creates a *chi.Mux with every operation registered through huma
func New(services Services, log *zap.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)

	config := huma.DefaultConfig("Languager API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	API := humachi.New(mux, config)

	h := handlers(API, services, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Audio.SetupRoutes(API)
	h.Vocabulary.SetupRoutes(API)
	h.Grammar.SetupRoutes(API)

	return mux
}

func handlers(API huma.API, services Services, log *zap.Logger) *Handlers {
	authMW := auth.New(API, services.Auth, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	userHandler := userAPI.NewHandler(services.Auth, log, public, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	audioHandler := audioAPI.NewHandler(services.Audio, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	vocabularyHandler := vocabularyAPI.NewHandler(services.Vocabulary, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	grammarHandler := grammarAPI.NewHandler(services.Grammar, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:     healthHandler,
		User:       userHandler,
		Audio:      audioHandler,
		Vocabulary: vocabularyHandler,
		Grammar:    grammarHandler,
	}
}
