package testutil

import (
	"context"

	"languager/internal/domain"
	"languager/internal/grammar"
	"languager/internal/transcriber"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user domain.NewUser) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EnsureTelegramUser(ctx context.Context, profile domain.TelegramProfile) (*domain.User, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockAudioRepository is a mock for AudioRepository
type MockAudioRepository struct {
	mock.Mock
}

func (m *MockAudioRepository) Create(ctx context.Context, submission domain.NewAudioSubmission) (*domain.AudioSubmission, error) {
	args := m.Called(ctx, submission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AudioSubmission), args.Error(1)
}

func (m *MockAudioRepository) GetForUser(ctx context.Context, userID, id int64) (*domain.AudioSubmission, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AudioSubmission), args.Error(1)
}

func (m *MockAudioRepository) ListForUser(ctx context.Context, userID int64, offset, limit int) ([]domain.AudioSubmission, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AudioSubmission), args.Error(1)
}

func (m *MockAudioRepository) CountForUser(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAudioRepository) DeleteForUser(ctx context.Context, userID, id int64) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}

// MockVocabularyRepository is a mock for VocabularyRepository
type MockVocabularyRepository struct {
	mock.Mock
}

func (m *MockVocabularyRepository) Create(ctx context.Context, item domain.NewVocabularyItem) (*domain.VocabularyItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyRepository) ListForUser(ctx context.Context, userID int64, offset, limit int) ([]domain.VocabularyItem, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VocabularyItem), args.Error(1)
}

func (m *MockVocabularyRepository) DeleteForUser(ctx context.Context, userID, id int64) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}

// MockTranscriber is a mock for the speech-to-text client
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, path string) (transcriber.Result, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(transcriber.Result), args.Error(1)
}

// MockDemuxer is a mock for the video audio extractor
type MockDemuxer struct {
	mock.Mock
}

func (m *MockDemuxer) ExtractAudio(ctx context.Context, src, dst string) error {
	args := m.Called(ctx, src, dst)
	return args.Error(0)
}

// MockTranslationEngine is a mock translator engine
type MockTranslationEngine struct {
	mock.Mock
}

func (m *MockTranslationEngine) Translate(ctx context.Context, word string) (string, error) {
	args := m.Called(ctx, word)
	return args.String(0), args.Error(1)
}

func (m *MockTranslationEngine) Close() error {
	return nil
}

// MockGrammarEngine is a mock grammar checker engine
type MockGrammarEngine struct {
	mock.Mock
}

func (m *MockGrammarEngine) Check(ctx context.Context, text string) ([]grammar.Match, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]grammar.Match), args.Error(1)
}

func (m *MockGrammarEngine) Close() error {
	return nil
}
