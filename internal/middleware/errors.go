package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ErrorFilter logs handler errors, apologizes to the user and swallows the error
func ErrorFilter(texts Texts, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			logger.Error("Handler failed",
				zap.Error(err),
				zap.Int64("user_id", senderID(c)),
				zap.String("text", c.Text()),
			)

			if sendErr := c.Send(commonText(texts, c, "error", fallbackError)); sendErr != nil {
				logger.Warn("Failed to send error message", zap.Error(sendErr))
			}
			return nil
		}
	}
}
