package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
		zap.String("language_code", sender.LanguageCode),
	)

	// Ensure user exists in database
	if err := h.userService.Register(sender.ID, sender.LanguageCode); err != nil {
		return err
	}

	return h.resume(newConversation(c, h.router))
}
