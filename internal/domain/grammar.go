package domain

// GrammarError is a single issue reported by the grammar engine
type GrammarError struct {
	Message     string   `json:"message"`
	BadWord     string   `json:"bad_word"`
	Suggestions []string `json:"suggestions"`
	Offset      int      `json:"offset"`
	Length      int      `json:"length"`
}

// GrammarResult is the outcome of a grammar check
type GrammarResult struct {
	OriginalText  string         `json:"original_text"`
	CorrectedText string         `json:"corrected_text"`
	Explanation   string         `json:"explanation"`
	Errors        []GrammarError `json:"errors"`
	Language      string         `json:"language"`
}
