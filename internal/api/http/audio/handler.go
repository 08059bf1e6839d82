package audio

import (
	"context"

	"languager/internal/api/http/apierr"
	"languager/internal/api/http/middleware/auth"
	"languager/internal/domain"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

const notFoundMessage = "Transcription not found or you do not have permission to delete it."

// Servicer is the audio workflow the handler depends on
type Servicer interface {
	Submit(ctx context.Context, ownerID int64, upload domain.AudioUpload) (*domain.AudioSubmission, error)
	List(ctx context.Context, ownerID int64, offset, limit int) ([]domain.AudioSubmission, error)
	Delete(ctx context.Context, ownerID, id int64) (bool, error)
}

type Handler struct {
	service    Servicer
	log        *zap.Logger
	middleware huma.Middlewares
}

func NewHandler(service Servicer, log *zap.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.transcribeOp(), h.transcribe)
	huma.Register(api, h.uploadOp(), h.transcribe)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) transcribe(ctx context.Context, input *transcribeInput) (*submissionOutput, error) {
	user, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, apierr.Unauthenticated()
	}

	return h.submit(ctx, user, input.RawBody.Data().AudioFile)
}

func (h *Handler) submit(ctx context.Context, user *domain.User, file huma.FormFile) (*submissionOutput, error) {
	if !file.IsSet || file.File == nil {
		return nil, huma.Error422UnprocessableEntity("audio_file is required")
	}
	defer file.Close()

	h.log.Debug("Audio upload received",
		zap.Int64("user_id", user.ID),
		zap.String("filename", file.Filename),
		zap.String("content_type", file.ContentType),
		zap.Int64("size", file.Size),
	)

	submission, err := h.service.Submit(ctx, user.ID, domain.AudioUpload{
		Content:     file.File,
		ContentType: file.ContentType,
		Filename:    file.Filename,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &submissionOutput{Body: submission}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	user, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, apierr.Unauthenticated()
	}

	submissions, err := h.service.List(ctx, user.ID, input.Offset, input.Limit)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	if submissions == nil {
		submissions = []domain.AudioSubmission{}
	}

	return &listOutput{Body: submissions}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*struct{}, error) {
	user, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, apierr.Unauthenticated()
	}

	deleted, err := h.service.Delete(ctx, user.ID, input.ID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	if !deleted {
		return nil, huma.Error404NotFound(notFoundMessage)
	}

	return nil, nil
}
