// Package apierr maps domain errors onto RFC 7807 responses.
package apierr

import (
	"errors"
	"net/http"

	"languager/internal/api/http/middleware/auth"
	"languager/internal/domain"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// Unauthenticated is the 401 returned when a handler runs without a user
func Unauthenticated() error {
	return withBearerChallenge(huma.Error401Unauthorized(auth.UnauthenticatedMessage))
}

// From converts err into a huma status error, logging anything unexpected
func From(log *zap.Logger, err error) error {
	var (
		unsupported   *domain.UnsupportedMediaTypeError
		transcription *domain.TranscriptionError
		internal      *domain.InternalError
	)

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return Unauthenticated()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return withBearerChallenge(huma.Error401Unauthorized("Incorrect credentials"))
	case errors.Is(err, domain.ErrUsernameTaken):
		return huma.Error400BadRequest("Username already registered")
	case errors.Is(err, domain.ErrEmailTaken):
		return huma.Error400BadRequest("Email already registered")
	case errors.Is(err, domain.ErrInvalidLanguage):
		return huma.Error400BadRequest("Language must not be empty")
	case errors.Is(err, domain.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.As(err, &unsupported):
		return huma.Error400BadRequest(unsupported.Error())
	case errors.As(err, &transcription):
		return huma.Error500InternalServerError(transcription.Error())
	case errors.As(err, &internal):
		log.Error("Request failed", zap.Error(internal.Err))
		return huma.Error500InternalServerError(internal.Error())
	default:
		log.Error("Request failed", zap.Error(err))
		return huma.Error500InternalServerError("Internal server error")
	}
}

func withBearerChallenge(err error) error {
	return huma.ErrorWithHeaders(err, http.Header{"WWW-Authenticate": {"Bearer"}})
}
