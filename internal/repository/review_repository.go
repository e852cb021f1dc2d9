package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/markethub/marketplace-service/internal/domain"
)

// ReviewRepository encapsulates the append-only review collection.
type ReviewRepository interface {
	Insert(ctx context.Context, review *domain.Review) (InsertResult, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type reviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository returns a Mongo-backed implementation.
func NewReviewRepository(coll *mongo.Collection) ReviewRepository {
	return &reviewRepository{coll: coll}
}

func (r *reviewRepository) Insert(ctx context.Context, review *domain.Review) (InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return InsertResult{}, err
	}
	return InsertResult{InsertedID: res.InsertedID}, nil
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []domain.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) EstimatedCount(ctx context.Context) (int64, error) {
	return r.coll.EstimatedDocumentCount(ctx)
}
