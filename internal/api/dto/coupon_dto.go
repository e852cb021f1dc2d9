package dto

// ValidateCouponRequest payload for POST /api/validate-coupon.
type ValidateCouponRequest struct {
	CouponCode string `json:"couponCode"`
}
