package handler

import (
	"penpal/internal/domain"
	"penpal/internal/scene"

	tele "gopkg.in/telebot.v3"
)

// conversation adapts a telebot context to scene.Conversation
type conversation struct {
	c      tele.Context
	router *scene.Router
}

func newConversation(c tele.Context, router *scene.Router) *conversation {
	return &conversation{c: c, router: router}
}

func (cv *conversation) UserID() int64 {
	return cv.c.Sender().ID
}

func (cv *conversation) Reply(text string, markup *tele.ReplyMarkup) error {
	if markup == nil {
		return cv.c.Send(text)
	}
	return cv.c.Send(text, markup)
}

func (cv *conversation) Enter(s domain.Scene) error {
	return cv.router.Enter(cv, s)
}
