package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ResponseTime logs how long a handler took
func ResponseTime(logger *zap.Logger) tele.MiddlewareFunc {
	return responseTime(logger, time.Now)
}

func responseTime(logger *zap.Logger, now func() time.Time) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := now()
			err := next(c)

			logger.Info("Handled update",
				zap.Int64("user_id", senderID(c)),
				zap.Duration("elapsed", now().Sub(start)),
				zap.Bool("failed", err != nil),
			)
			return err
		}
	}
}
