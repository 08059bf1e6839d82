package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"languager/internal/domain"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedDetail  string
		expectChallenge bool
	}{
		{
			name:            "bad token",
			err:             domain.ErrUnauthenticated,
			expectedStatus:  http.StatusUnauthorized,
			expectedDetail:  "Could not validate credentials",
			expectChallenge: true,
		},
		{
			name:            "bad login",
			err:             domain.ErrInvalidCredentials,
			expectedStatus:  http.StatusUnauthorized,
			expectedDetail:  "Incorrect credentials",
			expectChallenge: true,
		},
		{
			name:           "duplicate username",
			err:            fmt.Errorf("create user: %w", domain.ErrUsernameTaken),
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Username already registered",
		},
		{
			name:           "duplicate email",
			err:            fmt.Errorf("create user: %w", domain.ErrEmailTaken),
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Email already registered",
		},
		{
			name:           "unsupported media type",
			err:            &domain.UnsupportedMediaTypeError{Received: "text/plain"},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Unsupported file type. Please upload an audio file (e.g., WAV, MP3). Received: text/plain",
		},
		{
			name:           "transcription failure",
			err:            &domain.TranscriptionError{Detail: "timeout"},
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "Transcription failed: timeout",
		},
		{
			name:           "internal error keeps its public message",
			err:            &domain.InternalError{Err: errors.New("disk full")},
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "Internal error processing audio: disk full",
		},
		{
			name:           "empty language",
			err:            domain.ErrInvalidLanguage,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Language must not be empty",
		},
		{
			name:           "unknown error is hidden",
			err:            errors.New("pq: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := From(zap.NewNop(), tt.err)

			var model *huma.ErrorModel
			require.ErrorAs(t, err, &model)
			assert.Equal(t, tt.expectedStatus, model.GetStatus())
			assert.Equal(t, tt.expectedDetail, model.Detail)

			var withHeaders huma.HeadersError
			if tt.expectChallenge {
				require.ErrorAs(t, err, &withHeaders)
				assert.Equal(t, "Bearer", withHeaders.GetHeaders().Get("WWW-Authenticate"))
			} else {
				assert.False(t, errors.As(err, &withHeaders))
			}
		})
	}
}
