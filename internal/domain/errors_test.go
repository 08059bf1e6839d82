package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{name: "short string", input: "abc", n: 5, expected: "abc"},
		{name: "exact length", input: "abcde", n: 5, expected: "abcde"},
		{name: "long string", input: "abcdefgh", n: 3, expected: "abc"},
		{name: "multibyte runes", input: "привет мир", n: 6, expected: "привет"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.n))
		})
	}
}

func TestInternalError(t *testing.T) {
	cause := errors.New(strings.Repeat("x", 250))
	err := error(&InternalError{Err: fmt.Errorf("save: %w", cause)})

	assert.True(t, strings.HasPrefix(err.Error(), "Internal error processing audio: save: "))
	assert.Len(t, strings.TrimPrefix(err.Error(), "Internal error processing audio: "), 100)
	assert.ErrorIs(t, err, cause)

	var internal *InternalError
	assert.True(t, errors.As(err, &internal))
}

func TestUnsupportedMediaTypeError(t *testing.T) {
	err := &UnsupportedMediaTypeError{Received: "text/plain"}
	assert.Equal(t, "Unsupported file type. Please upload an audio file (e.g., WAV, MP3). Received: text/plain", err.Error())
}

func TestIsAllowedAudioType(t *testing.T) {
	assert.True(t, IsAllowedAudioType("audio/wav"))
	assert.True(t, IsAllowedAudioType("audio/webm"))
	assert.False(t, IsAllowedAudioType("audio/x-wav"))
	assert.False(t, IsAllowedAudioType("video/mp4"))
	assert.False(t, IsAllowedAudioType(""))
}
