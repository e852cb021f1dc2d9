package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/repository"
)

// CouponValidation is the outcome of a code check. Discount is only present
// for valid coupons.
type CouponValidation struct {
	IsValid  bool     `json:"isValid"`
	Discount *float64 `json:"discount,omitempty"`
}

// CouponService coordinates coupon lookups.
type CouponService struct {
	coupons repository.CouponRepository
}

// NewCouponService builds the service.
func NewCouponService(coupons repository.CouponRepository) *CouponService {
	return &CouponService{coupons: coupons}
}

// Validate checks a code against existence and expiry. Unknown and expired
// codes both come back invalid without error.
func (s *CouponService) Validate(ctx context.Context, code string) (CouponValidation, error) {
	coupon, err := s.coupons.GetByCode(ctx, code)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return CouponValidation{IsValid: false}, nil
	}
	if err != nil {
		return CouponValidation{}, err
	}
	if !coupon.Valid(time.Now()) {
		return CouponValidation{IsValid: false}, nil
	}
	discount := coupon.DiscountAmount
	return CouponValidation{IsValid: true, Discount: &discount}, nil
}

// List returns every coupon.
func (s *CouponService) List(ctx context.Context) ([]domain.Coupon, error) {
	return s.coupons.List(ctx)
}

// Delete removes a coupon.
func (s *CouponService) Delete(ctx context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	return s.coupons.Delete(ctx, id)
}
