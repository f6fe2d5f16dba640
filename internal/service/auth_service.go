package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"shopfront/internal/auth"
	"shopfront/internal/model"
	"shopfront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Minimum plaintext password length accepted at registration.
const minPasswordLength = 8

// authService implements AuthService.
type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates an account and returns a signed session token.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if req == nil || req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Name, email and password are required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Email address is not valid")
	}
	if len(req.Password) < minPasswordLength {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Password must be at least 8 characters")
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to check existing email")
		return nil, fmt.Errorf("failed to register: %w", err)
	}
	if existing != nil {
		return nil, model.ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleCustomer,
		Status:       model.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user registered")

	return &model.AuthResponse{Token: token, User: user}, nil
}

// Login exchanges credentials for a signed session token. Wrong email
// and wrong password report the same error.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if req == nil || req.Email == "" || req.Password == "" {
		return nil, model.ErrBadCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up user")
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, model.ErrBadCredentials
	}
	if user.Status != model.UserStatusActive {
		return nil, model.NewDomainError(model.ErrCodeForbidden, "Account is deactivated")
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user logged in")

	return &model.AuthResponse{Token: token, User: user}, nil
}

// Verify resolves a bearer token to its user. Tokens for deactivated
// accounts stop working immediately.
func (s *authService) Verify(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Verify(ctx, token)
	if err != nil {
		return nil, model.NewDomainError(model.ErrCodeUnauthorised, "Invalid or expired token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", claims.UserID.String()).Msg("failed to load token user")
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	if user == nil || user.Status != model.UserStatusActive {
		return nil, model.NewDomainError(model.ErrCodeUnauthorised, "Invalid or expired token")
	}

	return user, nil
}

// Logout revokes the token server-side. It never fails: revocation is
// best-effort and the client discards its copy regardless.
func (s *authService) Logout(ctx context.Context, token string) {
	s.tokens.Revoke(ctx, token)
}
