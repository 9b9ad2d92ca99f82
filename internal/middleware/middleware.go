// Package middleware wraps bot handlers with the cross-cutting checks every
// scene handler goes through. Chain order, outermost first:
//
//	ErrorFilter -> Recover -> ResponseTime -> RegisteredUser -> handler
package middleware

import (
	tele "gopkg.in/telebot.v3"
)

// Texts resolves localized texts
type Texts interface {
	Text(lang, scene, key string) (string, error)
}

const commonScene = "common"

// Fallback texts used when the bundle itself is broken
const (
	fallbackError         = "Something went wrong. Please try again later."
	fallbackNotRegistered = "Please send /start first."
)

// commonText returns a text of the common scene in the sender's language
func commonText(texts Texts, c tele.Context, key, fallback string) string {
	lang := ""
	if sender := c.Sender(); sender != nil {
		lang = sender.LanguageCode
	}
	text, err := texts.Text(lang, commonScene, key)
	if err != nil || text == "" {
		return fallback
	}
	return text
}

func senderID(c tele.Context) int64 {
	if sender := c.Sender(); sender != nil {
		return sender.ID
	}
	return 0
}
