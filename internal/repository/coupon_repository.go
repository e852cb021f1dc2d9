package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/markethub/marketplace-service/internal/domain"
)

// CouponRepository encapsulates coupon lookups. Creation is out of scope;
// codes are seeded out of band.
type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
}

type couponRepository struct {
	coll *mongo.Collection
}

// NewCouponRepository returns a Mongo-backed implementation.
func NewCouponRepository(coll *mongo.Collection) CouponRepository {
	return &couponRepository{coll: coll}
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	if err := r.coll.FindOne(ctx, bson.M{"coupon_code": code}).Decode(&coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) List(ctx context.Context) ([]domain.Coupon, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coupons []domain.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *couponRepository) Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{DeletedCount: res.DeletedCount}, nil
}
