package domain

import (
	"io"
	"time"
)

// AudioSubmission is one persisted transcription result
type AudioSubmission struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	AudioPath          string    `json:"audio_path"`
	OriginalTranscript string    `json:"original_transcript"`
	Language           *string   `json:"language,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// LanguageOrUnknown returns the detected language or "unknown"
func (a *AudioSubmission) LanguageOrUnknown() string {
	if a.Language == nil || *a.Language == "" {
		return "unknown"
	}
	return *a.Language
}

// NewAudioSubmission holds the fields stored after a successful transcription
type NewAudioSubmission struct {
	UserID             int64
	AudioPath          string
	OriginalTranscript string
	Language           string
}

// AllowedAudioTypes lists the content types accepted for transcription
var AllowedAudioTypes = []string{
	"audio/wav",
	"audio/mpeg",
	"audio/mp4",
	"audio/ogg",
	"audio/flac",
	"audio/webm",
}

// IsAllowedAudioType reports whether the (already normalized) content type is accepted
func IsAllowedAudioType(contentType string) bool {
	for _, t := range AllowedAudioTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

// AudioUpload is an incoming audio or video file
type AudioUpload struct {
	Content     io.Reader
	ContentType string
	Filename    string
}
