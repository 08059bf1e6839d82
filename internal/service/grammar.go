package service

import (
	"context"
	"fmt"
	"strings"

	"languager/internal/domain"
	"languager/internal/enginepool"
	"languager/internal/grammar"

	"go.uber.org/zap"
)

const maxExplanationLines = 5

// GrammarEngine checks text for one locale
type GrammarEngine interface {
	Check(ctx context.Context, text string) ([]grammar.Match, error)
	Close() error
}

// GrammarService checks and corrects text
type GrammarService struct {
	checkers *enginepool.Pool[GrammarEngine]
	logger   *zap.Logger
}

// NewGrammarService creates a new grammar service
func NewGrammarService(checkers *enginepool.Pool[GrammarEngine], logger *zap.Logger) *GrammarService {
	return &GrammarService{
		checkers: checkers,
		logger:   logger,
	}
}

// Check runs the grammar checker for language over text.
// Checker failures degrade into an explanation, not an error.
func (s *GrammarService) Check(ctx context.Context, text, language string) (*domain.GrammarResult, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		return nil, domain.ErrInvalidLanguage
	}

	result := &domain.GrammarResult{
		OriginalText:  text,
		CorrectedText: text,
		Errors:        []domain.GrammarError{},
		Language:      language,
	}

	engine, release, err := s.checkers.Acquire(ctx, grammar.Locale(language))
	if err != nil {
		s.logger.Warn("Failed to load grammar checker", zap.String("language", language), zap.Error(err))
		result.Explanation = fmt.Sprintf("Failed to load grammar service for '%s'. Please check server logs. Error: %v", language, err)
		return result, nil
	}
	defer release()

	matches, err := engine.Check(ctx, text)
	if err != nil {
		s.logger.Warn("Grammar check failed", zap.String("language", language), zap.Error(err))
		result.Explanation = fmt.Sprintf("Error during grammar check for '%s': %v. Please try again later.", language, err)
		return result, nil
	}

	result.CorrectedText = grammar.Correct(text, matches)
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		ge := domain.GrammarError{
			Message:     m.Message,
			BadWord:     m.BadWord(),
			Suggestions: m.Suggestions(),
			Offset:      m.Offset,
			Length:      m.Length,
		}
		result.Errors = append(result.Errors, ge)
		lines = append(lines, explainMatch(ge, m.Context.Text))
	}
	result.Explanation = explain(lines, result.OriginalText != result.CorrectedText)

	return result, nil
}

func explainMatch(ge domain.GrammarError, snippet string) string {
	if len(ge.Suggestions) > 0 {
		return fmt.Sprintf("Error: '%s' for '%s' -> Suggestion: '%s'", ge.Message, ge.BadWord, ge.Suggestions[0])
	}
	return fmt.Sprintf("Error: '%s' in '%s'", ge.Message, snippet)
}

func explain(lines []string, changed bool) string {
	switch {
	case len(lines) > 0:
		shown := lines
		if len(shown) > maxExplanationLines {
			shown = shown[:maxExplanationLines]
		}
		explanation := "Corrections applied:\n" + strings.Join(shown, "\n")
		if len(lines) > maxExplanationLines {
			explanation += "\n(and more errors...)"
		}
		return explanation
	case changed:
		return "Corrections made, but no specific explanations generated."
	default:
		return "No grammar errors found."
	}
}
