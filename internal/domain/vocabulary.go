package domain

import "time"

// MaxWordLength bounds russian_word and translation, matching their VARCHAR(255) columns
const MaxWordLength = 255

// VocabularyItem is one learned word with its translation
type VocabularyItem struct {
	ID              int64     `json:"id"`
	RussianWord     string    `json:"russian_word"`
	Translation     string    `json:"translation"`
	ExampleSentence *string   `json:"example_sentence,omitempty"`
	UserID          *int64    `json:"user_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewVocabularyItem holds the fields for a new vocabulary entry
type NewVocabularyItem struct {
	UserID          *int64
	RussianWord     string
	Translation     string
	ExampleSentence *string
}

// Suggestion is an advisory translation, never persisted
type Suggestion struct {
	RussianWord              string `json:"russian_word"`
	SuggestedTranslation     string `json:"suggested_translation"`
	SuggestedExampleSentence string `json:"suggested_example_sentence"`
}
