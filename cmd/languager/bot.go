package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"languager/internal/handler"
	"languager/internal/middleware"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
	telemw "gopkg.in/telebot.v3/middleware"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot",
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, _ []string) error {
	if err := cfg.ValidateBot(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Bot.Token,
		Poller: &tele.LongPoller{Timeout: cfg.Bot.PollTimeout},
		OnError: func(err error, c tele.Context) {
			log.Error("Bot handler failed", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	log.Info("Telegram bot initialized", zap.String("username", bot.Me.Username))

	bot.Use(telemw.Recover())
	bot.Use(telemw.AutoRespond())
	bot.Use(middleware.AuthMiddleware(a.auth, log))

	h := handler.NewHandler(bot, a.audio, a.vocabulary, log)
	h.RegisterHandlers()

	log.Info("Handlers registered")

	go a.sweeper.Run(ctx, cfg.Storage.SweepInterval)

	go func() {
		log.Info("Bot started successfully")
		bot.Start()
	}()

	<-ctx.Done()

	log.Info("Shutdown signal received, stopping bot...")
	bot.Stop()
	log.Info("Bot stopped gracefully")

	return nil
}
