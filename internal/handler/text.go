package handler

import (
	"strings"

	tele "gopkg.in/telebot.v3"
)

// handleText passes text messages to the user's current scene
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	conv := newConversation(c, h.router)

	handled, err := h.router.HandleText(conv, text)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}

	// No scene in memory, e.g. after a restart
	return h.resume(conv)
}
