package handler

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"languager/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	voiceMIME      = "audio/ogg"
	defaultAudio   = "audio/mpeg"
	errorTextLimit = 100
)

// Telegram reports several aliases for the accepted audio types
var mimeAliases = map[string]string{
	"audio/x-wav":    "audio/wav",
	"audio/wave":     "audio/wav",
	"audio/vnd.wave": "audio/wav",
	"audio/mp3":      "audio/mpeg",
	"audio/mpeg3":    "audio/mpeg",
	"audio/x-mp3":    "audio/mpeg",
	"audio/x-m4a":    "audio/mp4",
	"audio/m4a":      "audio/mp4",
	"audio/aac":      "audio/mp4",
	"audio/opus":     "audio/ogg",
	"audio/x-flac":   "audio/flac",
}

var mimeExtensions = map[string]string{
	"audio/wav":  ".wav",
	"audio/mpeg": ".mp3",
	"audio/mp4":  ".m4a",
	"audio/ogg":  ".ogg",
	"audio/flac": ".flac",
	"audio/webm": ".webm",
}

// normalizeAudioMIME maps Telegram's audio MIME aliases onto the accepted types
func normalizeAudioMIME(raw string) string {
	mediaType := strings.ToLower(strings.TrimSpace(raw))
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		mediaType = parsed
	}
	if mediaType == "" {
		return defaultAudio
	}
	if canonical, ok := mimeAliases[mediaType]; ok {
		return canonical
	}
	return mediaType
}

// audioFilename picks a filename whose extension matches the upload
func audioFilename(name, mediaType string) string {
	if filepath.Ext(name) != "" {
		return name
	}
	if ext, ok := mimeExtensions[mediaType]; ok {
		return "audio" + ext
	}
	return "audio.mp3"
}

// videoFilename derives the temp extension from a video MIME type
func videoFilename(name, mediaType string) string {
	if filepath.Ext(name) != "" {
		return name
	}
	if _, sub, ok := strings.Cut(mediaType, "/"); ok && sub != "" {
		return "video." + sub
	}
	return "video.mp4"
}

// formatTranscriptionResult renders a submission as the Markdown reply
func formatTranscriptionResult(submission *domain.AudioSubmission) string {
	return fmt.Sprintf("Transcription Result\nLanguage: %s\n\n`%s`",
		strings.ToUpper(submission.LanguageOrUnknown()),
		escapeCode(submission.OriginalTranscript),
	)
}

// escapeCode keeps a transcript from closing its Markdown code span
func escapeCode(s string) string {
	return strings.ReplaceAll(s, "`", "'")
}

// handleAudio handles audio files
func (h *Handler) handleAudio(c tele.Context) error {
	audio := c.Message().Audio
	mediaType := normalizeAudioMIME(audio.MIME)

	return h.transcribe(c, &audio.File, "message", func(ctx context.Context, userID int64, upload domain.AudioUpload) (*domain.AudioSubmission, error) {
		upload.ContentType = mediaType
		upload.Filename = audioFilename(audio.FileName, mediaType)
		return h.audioService.Submit(ctx, userID, upload)
	})
}

// handleVoice handles voice messages; Telegram always sends them as OGG/Opus
func (h *Handler) handleVoice(c tele.Context) error {
	voice := c.Message().Voice

	return h.transcribe(c, &voice.File, "message", func(ctx context.Context, userID int64, upload domain.AudioUpload) (*domain.AudioSubmission, error) {
		upload.ContentType = voiceMIME
		upload.Filename = "voice.ogg"
		return h.audioService.Submit(ctx, userID, upload)
	})
}

// handleVideo handles video files
func (h *Handler) handleVideo(c tele.Context) error {
	video := c.Message().Video

	return h.transcribe(c, &video.File, "video", func(ctx context.Context, userID int64, upload domain.AudioUpload) (*domain.AudioSubmission, error) {
		upload.ContentType = video.MIME
		upload.Filename = videoFilename(video.FileName, video.MIME)
		return h.audioService.SubmitVideo(ctx, userID, upload)
	})
}

// handleVideoNote handles round video messages
func (h *Handler) handleVideoNote(c tele.Context) error {
	note := c.Message().VideoNote

	return h.transcribe(c, &note.File, "video", func(ctx context.Context, userID int64, upload domain.AudioUpload) (*domain.AudioSubmission, error) {
		upload.ContentType = "video/mp4"
		upload.Filename = "video_note.mp4"
		return h.audioService.SubmitVideo(ctx, userID, upload)
	})
}

type submitFunc func(ctx context.Context, userID int64, upload domain.AudioUpload) (*domain.AudioSubmission, error)

// transcribe downloads file, runs submit and reports the outcome to the chat
func (h *Handler) transcribe(c tele.Context, file *tele.File, kind string, submit submitFunc) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := c.Notify(tele.Typing); err != nil {
		h.logger.Debug("Failed to send chat action", zap.Error(err))
	}

	progress, err := h.bot.Send(c.Recipient(), progressText(kind))
	if err != nil {
		h.logger.Warn("Failed to send progress message", zap.Error(err))
		progress = nil
	}
	defer h.deleteProgress(progress)

	reader, err := h.bot.File(file)
	if err != nil {
		return h.replyError(c, user.ID, kind, fmt.Errorf("download file: %w", err))
	}
	defer reader.Close()

	submission, err := submit(context.Background(), user.ID, domain.AudioUpload{Content: reader})
	if err != nil {
		return h.replyError(c, user.ID, kind, err)
	}

	h.logger.Info("Bot transcription completed",
		zap.Int64("user_id", user.ID),
		zap.Int64("submission_id", submission.ID),
	)

	return c.Send(formatTranscriptionResult(submission), tele.ModeMarkdown)
}

func progressText(kind string) string {
	if kind == "video" {
		return "Processing your video..."
	}
	return "Processing your audio..."
}

func (h *Handler) deleteProgress(msg *tele.Message) {
	if msg == nil {
		return
	}
	if err := h.bot.Delete(msg); err != nil {
		h.logger.Warn("Could not delete progress message", zap.Int("message_id", msg.ID), zap.Error(err))
	}
}

func (h *Handler) replyError(c tele.Context, userID int64, kind string, err error) error {
	h.logger.Error("Failed to process media",
		zap.Int64("user_id", userID),
		zap.String("kind", kind),
		zap.Error(err),
	)
	return c.Send(fmt.Sprintf("An error occurred while processing your %s: %s", kind, domain.Truncate(err.Error(), errorTextLimit)))
}
