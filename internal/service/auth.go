package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"languager/internal/domain"
	"languager/internal/repository"
	"languager/internal/security"

	"go.uber.org/zap"
)

// RegisterRequest holds the fields accepted on sign up
type RegisterRequest struct {
	Username  string
	Password  string
	Email     *string
	FirstName *string
	LastName  *string
}

// AuthService handles accounts and bearer tokens
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenManager
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a password account
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password cannot be empty", domain.ErrInvalidInput)
	}

	_, err := s.userRepo.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, domain.ErrUsernameTaken
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("lookup username: %w", err)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, domain.NewUser{
		Username:       username,
		HashedPassword: hash,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.Int64("user_id", user.ID), zap.String("username", username))
	return user, nil
}

// Login checks credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Token, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Token{}, domain.ErrInvalidCredentials
		}
		return domain.Token{}, fmt.Errorf("lookup username: %w", err)
	}

	if user.HashedPassword == nil || !security.VerifyPassword(password, *user.HashedPassword) {
		return domain.Token{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(username, 0)
	if err != nil {
		return domain.Token{}, fmt.Errorf("issue token: %w", err)
	}

	return domain.Token{AccessToken: token, TokenType: "bearer"}, nil
}

// ResolveCurrentUser maps a bearer token to its user.
// Every failure is reported as domain.ErrUnauthenticated.
func (s *AuthService) ResolveCurrentUser(ctx context.Context, token string) (*domain.User, error) {
	username, err := s.tokens.Subject(token)
	if err != nil || username == "" {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("Failed to resolve token subject", zap.String("username", username), zap.Error(err))
		}
		return nil, domain.ErrUnauthenticated
	}

	return user, nil
}

// EnsureTelegramUser finds or creates the account for a Telegram profile
func (s *AuthService) EnsureTelegramUser(ctx context.Context, profile domain.TelegramProfile) (*domain.User, error) {
	return s.userRepo.EnsureTelegramUser(ctx, profile)
}
