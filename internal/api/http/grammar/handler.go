package grammar

import (
	"context"

	"languager/internal/api/http/apierr"
	"languager/internal/api/http/middleware/auth"
	"languager/internal/domain"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// Servicer is the grammar logic the handler depends on
type Servicer interface {
	Check(ctx context.Context, text, language string) (*domain.GrammarResult, error)
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
	huma.Register(api, h.checkOp(), h.check)
}

func (h *Handler) check(ctx context.Context, input *checkInput) (*checkOutput, error) {
	if _, ok := auth.CurrentUser(ctx); !ok {
		return nil, apierr.Unauthenticated()
	}

	result, err := h.service.Check(ctx, input.Body.Text, input.Body.Language)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &checkOutput{Body: result}, nil
}
