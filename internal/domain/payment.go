package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatusSubscribed marks a payment record that grants a subscription.
const PaymentStatusSubscribed = "subscribed"

// Payment is one entry in the append-only payment ledger. A user counts as
// subscribed when any of their records carries the subscribed status.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Status        string             `bson:"status" json:"status"`
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp"`
}

// Subscribed reports whether this record grants a subscription.
func (p *Payment) Subscribed() bool {
	return p != nil && p.Status == PaymentStatusSubscribed
}

// Statistics is the admin dashboard summary. User and review counts are
// collection-level estimates; the product count is an exact count of
// accepted listings.
type Statistics struct {
	Users    int64 `json:"users"`
	Products int64 `json:"product"`
	Reviews  int64 `json:"reviews"`
}
