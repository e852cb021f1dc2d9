package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/repository"
)

type fakeReviewRepo struct {
	reviews []*domain.Review
}

func (f *fakeReviewRepo) Insert(_ context.Context, review *domain.Review) (repository.InsertResult, error) {
	f.reviews = append(f.reviews, review)
	return repository.InsertResult{InsertedID: "fake-id"}, nil
}

func (f *fakeReviewRepo) ListByProduct(_ context.Context, productID string) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) EstimatedCount(_ context.Context) (int64, error) {
	return int64(len(f.reviews)), nil
}

func TestStatisticsCountsAcceptedProductsOnly(t *testing.T) {
	users := newFakeUserRepo()
	products := newFakeProductRepo()
	reviews := &fakeReviewRepo{}
	ctx := context.Background()

	_, _, err := NewUserService(users).Register(ctx, &domain.User{Email: "alice@example.com"})
	require.NoError(t, err)

	productSvc := NewProductService(products, nil)
	accepted := &domain.Product{Name: "a"}
	pending := &domain.Product{Name: "b"}
	_, err = productSvc.Submit(ctx, accepted)
	require.NoError(t, err)
	_, err = productSvc.Submit(ctx, pending)
	require.NoError(t, err)
	products.products[accepted.ID].Status = domain.StatusAccepted

	_, err = NewReviewService(reviews).Add(ctx, &domain.Review{ProductID: accepted.ID.Hex(), Rating: 5})
	require.NoError(t, err)

	stats, err := NewStatsService(users, products, reviews).Statistics(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Users)
	assert.EqualValues(t, 1, stats.Products, "only accepted listings count")
	assert.EqualValues(t, 1, stats.Reviews)
}

func TestReviewListByProductMatchesExactly(t *testing.T) {
	reviews := &fakeReviewRepo{}
	svc := NewReviewService(reviews)
	ctx := context.Background()

	_, err := svc.Add(ctx, &domain.Review{ProductID: "abc", Rating: 4, Text: "good"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, &domain.Review{ProductID: "abcdef", Rating: 2, Text: "meh"})
	require.NoError(t, err)

	got, err := svc.ListByProduct(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].Text)
}
