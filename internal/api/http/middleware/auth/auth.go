package auth

import (
	"context"
	"net/http"
	"strings"

	"languager/internal/domain"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// UnauthenticatedMessage is the public detail of every 401 issued here
const UnauthenticatedMessage = "Could not validate credentials"

// Resolver maps a bearer token to its user
type Resolver interface {
	ResolveCurrentUser(ctx context.Context, token string) (*domain.User, error)
}

// Auth rejects requests without a valid bearer token
type Auth struct {
	api      huma.API
	resolver Resolver
	log      *zap.Logger
}

// New creates the bearer auth middleware
func New(api huma.API, resolver Resolver, log *zap.Logger) *Auth {
	return &Auth{
		api:      api,
		resolver: resolver,
		log:      log.With(zap.String("component", "auth_middleware")),
	}
}

type contextKey string

const userKey contextKey = "user"

// Middleware returns the huma middleware func
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token, ok := bearerToken(ctx.Header("Authorization"))
		if !ok {
			a.reject(ctx, "missing bearer token")
			return
		}

		user, err := a.resolver.ResolveCurrentUser(ctx.Context(), token)
		if err != nil {
			a.reject(ctx, err.Error())
			return
		}

		next(huma.WithContext(ctx, WithUser(ctx.Context(), user)))
	}
}

func (a *Auth) reject(ctx huma.Context, reason string) {
	a.log.Debug("Request rejected",
		zap.String("path", ctx.URL().Path),
		zap.String("reason", reason),
	)
	ctx.SetHeader("WWW-Authenticate", "Bearer")
	if err := huma.WriteErr(a.api, ctx, http.StatusUnauthorized, UnauthenticatedMessage); err != nil {
		a.log.Error("Failed to write auth error", zap.Error(err))
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// WithUser stores the authenticated user in ctx
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// CurrentUser returns the authenticated user stored by the middleware
func CurrentUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok && user != nil
}
