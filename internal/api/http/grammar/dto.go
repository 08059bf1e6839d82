package grammar

import "languager/internal/domain"

type checkInput struct {
	Body checkRequest
}

type checkRequest struct {
	Text     string `json:"text" doc:"The text to be checked for grammar errors"`
	Language string `json:"language" example:"en" doc:"The language of the text (e.g., 'en' for English, 'es' for Spanish)"`
}

type checkOutput struct {
	Body *domain.GrammarResult
}
