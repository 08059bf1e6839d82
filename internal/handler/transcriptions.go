package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"languager/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const timestampLayout = "02/01/2006 15:04"

// handleMyAudios shows the first page of the user's transcriptions
func (h *Handler) handleMyAudios(c tele.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	text, markup, err := h.audiosPage(user.ID, 1)
	if err != nil {
		h.logger.Error("Failed to load transcriptions", zap.Int64("user_id", user.ID), zap.Error(err))
		return c.Send("A database error occurred while loading your transcriptions.")
	}

	return c.Send(text, markup, tele.ModeMarkdown)
}

// audiosPage renders one page of transcriptions with its navigation keyboard
func (h *Handler) audiosPage(userID int64, page int) (string, *tele.ReplyMarkup, error) {
	submissions, totalPages, err := h.audioService.ListPage(context.Background(), userID, domain.Page{
		Number: page,
		Size:   audiosPageSize,
	})
	if err != nil {
		return "", nil, err
	}

	if len(submissions) == 0 {
		return "You don't have any saved transcriptions yet.", &tele.ReplyMarkup{}, nil
	}

	return formatTranscriptionsPage(submissions, page, totalPages), paginationMarkup(page, totalPages), nil
}

// formatTranscriptionsPage renders submissions as a Markdown list
func formatTranscriptionsPage(submissions []domain.AudioSubmission, page, totalPages int) string {
	var b strings.Builder
	b.WriteString("📜 *Your Recent Transcriptions:*")
	if totalPages > 1 {
		fmt.Fprintf(&b, " (%d/%d)", page, totalPages)
	}
	b.WriteString("\n\n")

	for _, s := range submissions {
		timestamp := "Unknown date"
		if !s.CreatedAt.IsZero() {
			timestamp = s.CreatedAt.Format(timestampLayout)
		}
		fmt.Fprintf(&b, "*ID:* `%d`\n_Timestamp:_ `%s`\n`%s`\n\n", s.ID, timestamp, escapeCode(s.OriginalTranscript))
	}

	return b.String()
}

// paginationMarkup builds the ⬅️/➡️ row for page out of totalPages
func paginationMarkup(page, totalPages int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	if totalPages <= 1 {
		return markup
	}

	navRow := tele.Row{}
	if page > 1 {
		navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("page_%d", page-1)))
	}
	if page < totalPages {
		navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("page_%d", page+1)))
	}
	if len(navRow) > 0 {
		markup.Inline(navRow)
	}
	return markup
}

// parseSubmissionID validates the /delete_audio argument
func parseSubmissionID(args []string) (int64, string) {
	if len(args) == 0 {
		return 0, "Please provide the ID of the transcription you want to delete. Usage: `/delete_audio <ID>`"
	}
	id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
	if err != nil || id <= 0 {
		return 0, "Invalid ID provided. Please enter a numerical ID."
	}
	return id, ""
}

// handleDeleteAudio handles /delete_audio <id>
func (h *Handler) handleDeleteAudio(c tele.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, problem := parseSubmissionID(c.Args())
	if problem != "" {
		return c.Send(problem, tele.ModeMarkdown)
	}

	deleted, err := h.audioService.Delete(context.Background(), user.ID, id)
	if err != nil {
		h.logger.Error("Failed to delete transcription",
			zap.Int64("user_id", user.ID),
			zap.Int64("submission_id", id),
			zap.Error(err),
		)
		return c.Send("A database error occurred while trying to delete the transcription.")
	}

	if !deleted {
		return c.Send(fmt.Sprintf("Transcription with ID `%d` not found or you don't have permission to delete it.", id), tele.ModeMarkdown)
	}
	return c.Send(fmt.Sprintf("Transcription with ID `%d` has been deleted.", id), tele.ModeMarkdown)
}
