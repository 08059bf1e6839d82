package grammar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "en", expected: "en-US"},
		{input: "ES", expected: "es-ES"},
		{input: " ru ", expected: "ru-RU"},
		{input: "de-DE", expected: "de-DE"},
		{input: "fr", expected: "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Locale(tt.input))
		})
	}
}

func whitespaceMatch(offset int) Match {
	return Match{
		Message:      "Possible typo: you repeated a whitespace",
		Offset:       offset,
		Length:       3,
		Replacements: []Replacement{{Value: " "}},
		Context:      Context{Text: "Hello   world", Offset: 5, Length: 3},
	}
}

func TestCorrect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		matches  []Match
		expected string
	}{
		{
			name:     "no matches",
			text:     "Hello world",
			expected: "Hello world",
		},
		{
			name:     "single replacement",
			text:     "Hello   world",
			matches:  []Match{whitespaceMatch(5)},
			expected: "Hello world",
		},
		{
			name: "multiple replacements keep offsets valid",
			text: "I has a apple",
			matches: []Match{
				{Offset: 2, Length: 3, Replacements: []Replacement{{Value: "have"}}},
				{Offset: 6, Length: 1, Replacements: []Replacement{{Value: "an"}}},
			},
			expected: "I have an apple",
		},
		{
			name: "match without replacement ignored",
			text: "Teh cat",
			matches: []Match{
				{Offset: 0, Length: 3},
			},
			expected: "Teh cat",
		},
		{
			name: "overlapping match skipped",
			text: "abcdef",
			matches: []Match{
				{Offset: 1, Length: 3, Replacements: []Replacement{{Value: "X"}}},
				{Offset: 2, Length: 3, Replacements: []Replacement{{Value: "Y"}}},
			},
			expected: "abYf",
		},
		{
			name: "out of range ignored",
			text: "short",
			matches: []Match{
				{Offset: 3, Length: 10, Replacements: []Replacement{{Value: "X"}}},
			},
			expected: "short",
		},
		{
			name: "cyrillic text",
			text: "Я идти домой",
			matches: []Match{
				{Offset: 2, Length: 4, Replacements: []Replacement{{Value: "иду"}}},
			},
			expected: "Я иду домой",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Correct(tt.text, tt.matches))
		})
	}
}

func TestMatch_BadWordAndSuggestions(t *testing.T) {
	m := Match{
		Context:      Context{Text: "...Я идти домой...", Offset: 5, Length: 4},
		Replacements: []Replacement{{Value: "иду"}, {Value: "шёл"}},
	}

	assert.Equal(t, "идти", m.BadWord())
	assert.Equal(t, []string{"иду", "шёл"}, m.Suggestions())
	assert.Equal(t, []string{}, Match{}.Suggestions())
}

func newLanguageToolServer(t *testing.T, matches []Match) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/languages":
			_ = json.NewEncoder(w).Encode([]map[string]string{
				{"name": "English (US)", "code": "en", "longCode": "en-US"},
				{"name": "Spanish", "code": "es", "longCode": "es"},
			})
		case "/v2/check":
			if !assert.NoError(t, r.ParseForm()) {
				return
			}
			assert.NotEmpty(t, r.PostForm.Get("text"))
			assert.NotEmpty(t, r.PostForm.Get("language"))
			_ = json.NewEncoder(w).Encode(checkResponse{Matches: matches})
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestClient_NewEngine(t *testing.T) {
	server := newLanguageToolServer(t, nil)
	defer server.Close()

	client := New(Config{URL: server.URL})

	engine, err := client.NewEngine(context.Background(), "en-US")
	require.NoError(t, err)
	assert.Equal(t, "en-US", engine.Locale())
	assert.NoError(t, engine.Close())

	// The server lists Spanish under its short code.
	engine, err = client.NewEngine(context.Background(), "es")
	require.NoError(t, err)
	assert.NoError(t, engine.Close())

	engine, err = client.NewEngine(context.Background(), "xx-XX")
	assert.Error(t, err)
	assert.Nil(t, engine)
}

func TestEngine_Check(t *testing.T) {
	server := newLanguageToolServer(t, []Match{whitespaceMatch(5)})
	defer server.Close()

	engine, err := New(Config{URL: server.URL}).NewEngine(context.Background(), "en-US")
	require.NoError(t, err)
	defer engine.Close()

	matches, err := engine.Check(context.Background(), "Hello   world")

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 5, matches[0].Offset)
	assert.Equal(t, "   ", matches[0].BadWord())
}

func TestEngine_Check_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v2/languages" {
			_ = json.NewEncoder(w).Encode([]map[string]string{{"code": "en", "longCode": "en-US"}})
			return
		}
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	engine, err := New(Config{URL: server.URL}).NewEngine(context.Background(), "en-US")
	require.NoError(t, err)
	defer engine.Close()

	matches, err := engine.Check(context.Background(), "text")

	assert.Error(t, err)
	assert.Nil(t, matches)
}
