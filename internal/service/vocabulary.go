package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"languager/internal/domain"
	"languager/internal/enginepool"
	"languager/internal/repository"

	"go.uber.org/zap"
)

// TranslationEngine translates single words into one target language
type TranslationEngine interface {
	Translate(ctx context.Context, word string) (string, error)
	Close() error
}

// VocabularyService handles vocabulary items and translation suggestions
type VocabularyService struct {
	vocabRepo   repository.VocabularyRepository
	translators *enginepool.Pool[TranslationEngine]
	logger      *zap.Logger
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(
	vocabRepo repository.VocabularyRepository,
	translators *enginepool.Pool[TranslationEngine],
	logger *zap.Logger,
) *VocabularyService {
	return &VocabularyService{
		vocabRepo:   vocabRepo,
		translators: translators,
		logger:      logger,
	}
}

// Create saves a word-translation pair
func (s *VocabularyService) Create(ctx context.Context, ownerID *int64, word, translation string, example *string) (*domain.VocabularyItem, error) {
	word = strings.TrimSpace(word)
	translation = strings.TrimSpace(translation)
	if word == "" || translation == "" {
		return nil, fmt.Errorf("%w: word and translation cannot be empty", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(word) > domain.MaxWordLength || utf8.RuneCountInString(translation) > domain.MaxWordLength {
		return nil, fmt.Errorf("%w: word and translation must be at most %d characters", domain.ErrInvalidInput, domain.MaxWordLength)
	}

	return s.vocabRepo.Create(ctx, domain.NewVocabularyItem{
		UserID:          ownerID,
		RussianWord:     word,
		Translation:     translation,
		ExampleSentence: example,
	})
}

// List returns the owner's items, newest first. limit 0 means all.
func (s *VocabularyService) List(ctx context.Context, ownerID int64, offset, limit int) ([]domain.VocabularyItem, error) {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	return s.vocabRepo.ListForUser(ctx, ownerID, offset, limit)
}

// Delete removes an owned item; false means not found for this owner
func (s *VocabularyService) Delete(ctx context.Context, ownerID, id int64) (bool, error) {
	return s.vocabRepo.DeleteForUser(ctx, ownerID, id)
}

// Suggest proposes a translation for word. It never fails; an unavailable
// translator yields placeholder text instead.
func (s *VocabularyService) Suggest(ctx context.Context, word, targetLanguage string) domain.Suggestion {
	translation, err := s.translate(ctx, word, targetLanguage)
	if err != nil {
		s.logger.Warn("Translation suggestion unavailable",
			zap.String("word", word),
			zap.String("target_language", targetLanguage),
			zap.Error(err),
		)
		return domain.Suggestion{
			RussianWord:              word,
			SuggestedTranslation:     fmt.Sprintf("No translation available for '%s'.", targetLanguage),
			SuggestedExampleSentence: "Translation service currently unavailable.",
		}
	}

	return domain.Suggestion{
		RussianWord:              word,
		SuggestedTranslation:     translation,
		SuggestedExampleSentence: fmt.Sprintf("Example: '%s'.", translation),
	}
}

func (s *VocabularyService) translate(ctx context.Context, word, targetLanguage string) (string, error) {
	engine, release, err := s.translators.Acquire(ctx, strings.ToLower(strings.TrimSpace(targetLanguage)))
	if err != nil {
		return "", fmt.Errorf("load translator: %w", err)
	}
	defer release()

	translation, err := engine.Translate(ctx, word)
	if err != nil {
		return "", err
	}
	if translation == "" {
		return "", fmt.Errorf("empty translation")
	}
	return translation, nil
}
