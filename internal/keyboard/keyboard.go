package keyboard

import tele "gopkg.in/telebot.v3"

// ReplyButtons builds a reply keyboard from rows of text
func ReplyButtons(rows ...[]string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	keyboard := make([]tele.Row, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tele.Btn, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, markup.Text(label))
		}
		keyboard = append(keyboard, markup.Row(buttons...))
	}
	markup.Reply(keyboard...)
	return markup
}

// Wait is shown while the user waits for a receiver: one button per row
func Wait(project, receiver, idle string) *tele.ReplyMarkup {
	return ReplyButtons(
		[]string{project},
		[]string{receiver},
		[]string{idle},
	)
}

// Instructions is the single action button sent after the last instruction
func Instructions(label string) *tele.ReplyMarkup {
	markup := ReplyButtons([]string{label})
	markup.OneTimeKeyboard = true
	return markup
}

// Labels returns the button texts of a reply keyboard, row by row
func Labels(markup *tele.ReplyMarkup) []string {
	if markup == nil {
		return nil
	}
	var labels []string
	for _, row := range markup.ReplyKeyboard {
		for _, btn := range row {
			labels = append(labels, btn.Text)
		}
	}
	return labels
}
