package middleware

import (
	"context"

	"languager/internal/domain"
	"languager/internal/handler"
	"languager/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const failureText = "Something went wrong. Please try again later."

// AuthMiddleware resolves the sender into an account, creating it on first contact,
// and stores it in the context under handler.UserKey
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			user, err := authService.EnsureTelegramUser(context.Background(), profileOf(sender))
			if err != nil {
				logger.Error("Failed to ensure telegram user in middleware",
					zap.Int64("telegram_id", sender.ID),
					zap.Error(err),
				)
				return c.Send(failureText)
			}

			c.Set(handler.UserKey, user)
			return next(c)
		}
	}
}

func profileOf(sender *tele.User) domain.TelegramProfile {
	return domain.TelegramProfile{
		TelegramID: sender.ID,
		Username:   sender.Username,
		FirstName:  sender.FirstName,
		LastName:   sender.LastName,
	}
}
