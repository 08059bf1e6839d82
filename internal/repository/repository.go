package repository

import (
	"context"

	"languager/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user domain.NewUser) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	EnsureTelegramUser(ctx context.Context, profile domain.TelegramProfile) (*domain.User, error)
}

// AudioRepository defines audio submission data operations.
// Every read and delete is scoped by the owning user.
type AudioRepository interface {
	Create(ctx context.Context, submission domain.NewAudioSubmission) (*domain.AudioSubmission, error)
	GetForUser(ctx context.Context, userID, id int64) (*domain.AudioSubmission, error)
	ListForUser(ctx context.Context, userID int64, offset, limit int) ([]domain.AudioSubmission, error)
	CountForUser(ctx context.Context, userID int64) (int, error)
	DeleteForUser(ctx context.Context, userID, id int64) (bool, error)
}

// VocabularyRepository defines vocabulary data operations
type VocabularyRepository interface {
	Create(ctx context.Context, item domain.NewVocabularyItem) (*domain.VocabularyItem, error)
	ListForUser(ctx context.Context, userID int64, offset, limit int) ([]domain.VocabularyItem, error)
	DeleteForUser(ctx context.Context, userID, id int64) (bool, error)
}
