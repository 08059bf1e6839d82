package testutil

import (
	"languager/internal/domain"
	"time"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test password user
func NewTestUser(id int64, username string) *domain.User {
	return &domain.User{
		ID:        id,
		Username:  &username,
		CreatedAt: time.Now(),
	}
}

// NewTestTelegramUser creates a test bot-only user
func NewTestTelegramUser(id, telegramID int64) *domain.User {
	return &domain.User{
		ID:         id,
		TelegramID: &telegramID,
		CreatedAt:  time.Now(),
	}
}

// NewTestSubmission creates a test audio submission
func NewTestSubmission(id, userID int64, path, transcript, language string) *domain.AudioSubmission {
	return &domain.AudioSubmission{
		ID:                 id,
		UserID:             userID,
		AudioPath:          path,
		OriginalTranscript: transcript,
		Language:           &language,
		CreatedAt:          time.Now(),
	}
}

// NewTestVocabularyItem creates a test vocabulary item
func NewTestVocabularyItem(id, userID int64, word, translation string) *domain.VocabularyItem {
	return &domain.VocabularyItem{
		ID:          id,
		RussianWord: word,
		Translation: translation,
		UserID:      &userID,
		CreatedAt:   time.Now(),
	}
}
