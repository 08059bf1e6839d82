package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"languager/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const idleHint = "Send me a voice message, an audio file or a video and I'll transcribe it.\n" +
	"Use /add_word to save a word or /help to see all commands."

// handleAddWord starts the word input flow
func (h *Handler) handleAddWord(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingWord})
	return c.Send("Send me the Russian word you want to save.", cancelMarkup())
}

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	telegramID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(telegramID)

	switch state.State {
	case domain.StateWaitingWord:
		if text == "" {
			return c.Send("The word cannot be empty. Send me the Russian word.", cancelMarkup())
		}
		if utf8.RuneCountInString(text) > domain.MaxWordLength {
			return c.Send(fmt.Sprintf("The word is too long (max %d characters). Send me a shorter one.", domain.MaxWordLength), cancelMarkup())
		}

		h.SetState(telegramID, &domain.StateData{
			State:       domain.StateWaitingTranslation,
			CurrentWord: text,
		})

		return c.Send(fmt.Sprintf("Now send me the translation for «%s».", text), cancelMarkup())

	case domain.StateWaitingTranslation:
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		word := state.CurrentWord
		item, err := h.vocabService.Create(context.Background(), &user.ID, word, text, nil)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				return c.Send(fmt.Sprintf("The translation must be 1 to %d characters long. Send me the translation.", domain.MaxWordLength), cancelMarkup())
			}
			h.logger.Error("Failed to save word pair",
				zap.Error(err),
				zap.Int64("user_id", user.ID),
			)
			return c.Send("Could not save the word. Please try again.")
		}

		h.logger.Info("Word pair saved",
			zap.Int64("user_id", user.ID),
			zap.Int64("item_id", item.ID),
			zap.String("word", item.RussianWord),
			zap.String("translation", item.Translation),
		)

		h.ResetState(telegramID)
		return c.Send(fmt.Sprintf("✅ Saved: %s — %s\n\nUse /add_word to add another one.", item.RussianWord, item.Translation))

	default:
		return c.Send(idleHint)
	}
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	telegramID := c.Sender().ID
	h.ResetState(telegramID)

	const text = "Cancelled."
	if c.Callback() == nil {
		return c.Send(text, mainMenuMarkup())
	}

	if err := c.Edit(text); err != nil {
		if handleErr := h.handleEditError(err, c, telegramID); handleErr == nil {
			return nil
		}
		return c.Send(text)
	}
	return c.Respond()
}

// handleMyWords lists the most recent vocabulary items
func (h *Handler) handleMyWords(c tele.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	items, err := h.vocabService.List(context.Background(), user.ID, 0, wordsListLimit)
	if err != nil {
		h.logger.Error("Failed to load vocabulary", zap.Int64("user_id", user.ID), zap.Error(err))
		return c.Send("A database error occurred while loading your words.")
	}

	return c.Send(formatWords(items))
}

// formatWords renders vocabulary items as a numbered list
func formatWords(items []domain.VocabularyItem) string {
	if len(items) == 0 {
		return "Your vocabulary is empty. Use /add_word to add a word."
	}

	var b strings.Builder
	b.WriteString("📚 Your words:\n\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, item.RussianWord, item.Translation)
	}
	return b.String()
}
