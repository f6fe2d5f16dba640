package service

import (
	"context"
	"fmt"

	"shopfront/internal/model"
	"shopfront/internal/repository"

	"github.com/rs/zerolog"
)

// statsService implements StatsService.
type statsService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	orderRepo    repository.OrderRepository
	logger       zerolog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) StatsService {
	return &statsService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		logger:       logger.With().Str("service", "stats").Logger(),
	}
}

// Dashboard assembles the admin dashboard counters. Revenue sums the
// totals of non-cancelled orders.
func (s *statsService) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, s.fail(err, "products")
	}
	categories, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return nil, s.fail(err, "categories")
	}
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, s.fail(err, "users")
	}
	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, s.fail(err, "orders")
	}
	revenue, err := s.orderRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, s.fail(err, "revenue")
	}

	return &model.DashboardStats{
		Products:   products,
		Categories: categories,
		Users:      users,
		Orders:     orders,
		Revenue:    model.Round2(revenue),
	}, nil
}

func (s *statsService) fail(err error, counter string) error {
	s.logger.Error().Err(err).Str("counter", counter).Msg("failed to load dashboard counter")
	return fmt.Errorf("failed to load dashboard stats: %w", err)
}
