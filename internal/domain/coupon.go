package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coupon is a discount code. A coupon is valid while its expiry date is in
// the future; there is no creation endpoint in scope, only lookup and delete.
type Coupon struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Code           string             `bson:"coupon_code" json:"coupon_code"`
	DiscountAmount float64            `bson:"discount_amount" json:"discount_amount"`
	ExpiryDate     time.Time          `bson:"expiry_date" json:"expiry_date"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
}

// Valid reports whether the coupon can still be redeemed at the given time.
func (c *Coupon) Valid(now time.Time) bool {
	return c != nil && c.ExpiryDate.After(now)
}
