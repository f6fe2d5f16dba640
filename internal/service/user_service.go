package service

import (
	"context"
	"fmt"

	"shopfront/internal/model"
	"shopfront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) UserService {
	return &userService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "user").Logger(),
	}
}

func (s *userService) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	limit, offset = clampPage(limit, offset)
	users, err := s.userRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// GetDetail retrieves a user with their order history embedded, for the
// admin user page.
func (s *userService) GetDetail(ctx context.Context, id uuid.UUID) (*model.UserDetail, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id.String()).Msg("failed to get user")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	orders, err := s.orderRepo.ListByUser(ctx, id, 100, 0)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id.String()).Msg("failed to get user orders")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}

	return &model.UserDetail{User: *user, Orders: orders}, nil
}

// UpdateStatus activates or deactivates an account.
func (s *userService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !model.ValidUserStatus(status) {
		return model.ErrInvalidStatus
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	if user == nil {
		return model.ErrUserNotFound
	}

	if err := s.userRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error().Err(err).Str("user_id", id.String()).Msg("failed to update user status")
		return fmt.Errorf("failed to update user status: %w", err)
	}

	s.logger.Info().
		Str("user_id", id.String()).
		Str("status", status).
		Msg("user status updated")

	return nil
}
