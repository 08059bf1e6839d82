package vocabulary

import "languager/internal/domain"

type createInput struct {
	Body createRequest
}

type createRequest struct {
	RussianWord     string  `json:"russian_word" minLength:"1" maxLength:"255" example:"дом"`
	Translation     string  `json:"translation" minLength:"1" maxLength:"255" example:"house"`
	ExampleSentence *string `json:"example_sentence,omitempty"`
}

type itemOutput struct {
	Body *domain.VocabularyItem
}

type listInput struct {
	Offset int `query:"offset" default:"0" minimum:"0"`
	Limit  int `query:"limit" default:"100" minimum:"0" doc:"Maximum number to return, 0 for all"`
}

type listOutput struct {
	Body []domain.VocabularyItem
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"Vocabulary item ID"`
}

type suggestInput struct {
	Body suggestRequest
}

type suggestRequest struct {
	RussianWord    string `json:"russian_word" minLength:"1" maxLength:"255" example:"дом"`
	TargetLanguage string `json:"target_language" example:"en" doc:"One of en, es, fr, pt"`
}

type suggestOutput struct {
	Body domain.Suggestion
}
