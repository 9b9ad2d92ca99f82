package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Registry tells whether a user went through /start
type Registry interface {
	IsRegistered(userID int64) (bool, error)
}

// RegisteredUser lets only registered users reach scene handlers
func RegisteredUser(registry Registry, texts Texts, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := senderID(c)

			registered, err := registry.IsRegistered(userID)
			if err != nil {
				logger.Error("Failed to check registration in middleware", zap.Error(err))
				return err
			}

			if !registered {
				logger.Debug("Unregistered user", zap.Int64("user_id", userID))
				return c.Send(commonText(texts, c, "not_registered", fallbackNotRegistered))
			}

			return next(c)
		}
	}
}
