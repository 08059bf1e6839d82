package vocabulary

import (
	"context"

	"languager/internal/api/http/apierr"
	"languager/internal/api/http/middleware/auth"
	"languager/internal/domain"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

const notFoundMessage = "Vocabulary item not found or you do not have permission to delete it."

// Servicer is the vocabulary logic the handler depends on
type Servicer interface {
	Create(ctx context.Context, ownerID *int64, word, translation string, example *string) (*domain.VocabularyItem, error)
	List(ctx context.Context, ownerID int64, offset, limit int) ([]domain.VocabularyItem, error)
	Delete(ctx context.Context, ownerID, id int64) (bool, error)
	Suggest(ctx context.Context, word, targetLanguage string) domain.Suggestion
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
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.suggestOp(), h.suggest)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*itemOutput, error) {
	user, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, apierr.Unauthenticated()
	}

	item, err := h.service.Create(ctx, &user.ID, input.Body.RussianWord, input.Body.Translation, input.Body.ExampleSentence)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &itemOutput{Body: item}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	user, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, apierr.Unauthenticated()
	}

	items, err := h.service.List(ctx, user.ID, input.Offset, input.Limit)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	if items == nil {
		items = []domain.VocabularyItem{}
	}

	return &listOutput{Body: items}, nil
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

func (h *Handler) suggest(ctx context.Context, input *suggestInput) (*suggestOutput, error) {
	if _, ok := auth.CurrentUser(ctx); !ok {
		return nil, apierr.Unauthenticated()
	}

	return &suggestOutput{
		Body: h.service.Suggest(ctx, input.Body.RussianWord, input.Body.TargetLanguage),
	}, nil
}
