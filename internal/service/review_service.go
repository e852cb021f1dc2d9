package service

import (
	"context"

	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/repository"
)

// ReviewService coordinates the append-only review collection.
type ReviewService struct {
	reviews repository.ReviewRepository
}

// NewReviewService builds the service.
func NewReviewService(reviews repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Add appends a review. The product id is stored as supplied; there is no
// existence check against the products collection.
func (s *ReviewService) Add(ctx context.Context, review *domain.Review) (repository.InsertResult, error) {
	return s.reviews.Insert(ctx, review)
}

// ListByProduct returns the reviews for one product id, unpaginated.
func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	return s.reviews.ListByProduct(ctx, productID)
}
