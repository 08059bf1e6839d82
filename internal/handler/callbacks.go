package handler

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parsePage extracts N from page_N callback data
func parsePage(data string) (int, bool) {
	pageStr, ok := strings.CutPrefix(strings.TrimSpace(data), "page_")
	if !ok {
		return 0, false
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	if callback.Unique == "cancel" || data == "cancel" {
		return h.handleCancel(c)
	}

	if strings.HasPrefix(data, "page_") {
		return h.handlePagination(c, data)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handlePagination handles page navigation of /my_audios
func (h *Handler) handlePagination(c tele.Context, data string) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	page, ok := parsePage(data)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}

	text, markup, err := h.audiosPage(user.ID, page)
	if err != nil {
		h.logger.Error("Failed to load transcriptions page", zap.Int("page", page), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load transcriptions"})
	}

	if err := c.Edit(text, markup, tele.ModeMarkdown); err != nil {
		if handleErr := h.handleEditError(err, c, user.ID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup, tele.ModeMarkdown)
	}
	return c.Respond()
}
