package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an owner-scoped lookup misses
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated covers every bearer token failure
	ErrUnauthenticated = errors.New("could not validate credentials")
	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("incorrect credentials")
	// ErrUsernameTaken is returned when registering an existing username
	ErrUsernameTaken = errors.New("username already registered")
	// ErrEmailTaken is returned when registering with an email another user has
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidLanguage is returned for an empty grammar language
	ErrInvalidLanguage = errors.New("language must not be empty")
	// ErrInvalidInput is returned when required fields are blank
	ErrInvalidInput = errors.New("invalid input")
)

// UnsupportedMediaTypeError is returned when an upload is not an accepted audio type
type UnsupportedMediaTypeError struct {
	Received string
}

func (e *UnsupportedMediaTypeError) Error() string {
	return fmt.Sprintf("Unsupported file type. Please upload an audio file (e.g., WAV, MP3). Received: %s", e.Received)
}

// TranscriptionError is returned when the speech-to-text collaborator fails
type TranscriptionError struct {
	Detail string
}

func (e *TranscriptionError) Error() string {
	return "Transcription failed: " + e.Detail
}

// InternalError wraps an unexpected failure in the audio workflow.
// Error returns a truncated public message; Unwrap exposes the cause for logging.
type InternalError struct {
	Err error
}

const internalDetailLimit = 100

func (e *InternalError) Error() string {
	return "Internal error processing audio: " + Truncate(e.Err.Error(), internalDetailLimit)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Truncate cuts s to at most n runes
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
