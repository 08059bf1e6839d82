package user

import (
	"context"
	"net/url"

	"languager/internal/api/http/apierr"
	"languager/internal/api/http/middleware/auth"
	"languager/internal/domain"
	"languager/internal/service"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// Servicer is the account logic the handler depends on
type Servicer interface {
	Register(ctx context.Context, req service.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, username, password string) (domain.Token, error)
}

type Handler struct {
	service        Servicer
	log            *zap.Logger
	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

func NewHandler(service Servicer, log *zap.Logger, middleware, authMiddleware huma.Middlewares) *Handler {
	return &Handler{
		service:        service,
		log:            log,
		middleware:     middleware,
		authMiddleware: authMiddleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.tokenOp(), h.token)
	huma.Register(api, h.meOp(), h.me)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*userOutput, error) {
	user, err := h.service.Register(ctx, service.RegisterRequest{
		Username:  input.Body.Username,
		Password:  input.Body.Password,
		Email:     input.Body.Email,
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &userOutput{Body: user}, nil
}

func (h *Handler) token(ctx context.Context, input *tokenInput) (*tokenOutput, error) {
	form, err := url.ParseQuery(string(input.RawBody))
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("Malformed form body")
	}

	username, password := form.Get("username"), form.Get("password")
	if username == "" || password == "" {
		return nil, huma.Error422UnprocessableEntity("Both username and password are required")
	}

	token, err := h.service.Login(ctx, username, password)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &tokenOutput{Body: token}, nil
}

func (h *Handler) me(ctx context.Context, _ *struct{}) (*userOutput, error) {
	user, ok := auth.CurrentUser(ctx)
	if !ok {
		return nil, apierr.Unauthenticated()
	}

	return &userOutput{Body: user}, nil
}
