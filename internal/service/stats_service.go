package service

import (
	"context"

	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/repository"
)

// StatsService aggregates admin dashboard counters.
type StatsService struct {
	users    repository.UserRepository
	products repository.ProductRepository
	reviews  repository.ReviewRepository
}

// NewStatsService builds the service.
func NewStatsService(users repository.UserRepository, products repository.ProductRepository, reviews repository.ReviewRepository) *StatsService {
	return &StatsService{users: users, products: products, reviews: reviews}
}

// Statistics returns the dashboard summary. User and review counts are
// collection-level estimates; the product count is an exact count over
// accepted listings.
func (s *StatsService) Statistics(ctx context.Context) (domain.Statistics, error) {
	users, err := s.users.EstimatedCount(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	products, err := s.products.CountAccepted(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	reviews, err := s.reviews.EstimatedCount(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	return domain.Statistics{Users: users, Products: products, Reviews: reviews}, nil
}
