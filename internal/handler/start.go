package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const helpText = `🤖 *Available Commands:*
/start - Start the bot
/help - Show this help
/my_audios - View your saved audio transcriptions
/delete_audio <ID> - Delete a specific audio transcription by its ID (e.g., ` + "`/delete_audio 123`" + `)
/add_word - Save a Russian word with its translation
/my_words - View your saved words
/cancel - Cancel the current action

🎙 *Features:*
- Send me a voice message, and I'll transcribe it
- Send me an audio file (MP3, WAV, etc.)
- Send me a video file or video note, and I'll transcribe it`

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	h.logger.Info("User started bot",
		zap.Int64("user_id", user.ID),
		zap.Int64("telegram_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(c.Sender().ID)
	return c.Send(
		fmt.Sprintf("Hi %s! I'm your Russian transcription assistant.", user.DisplayName()),
		mainMenuMarkup(),
	)
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(helpText, tele.ModeMarkdown)
}
