package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/markethub/marketplace-service/internal/domain"
)

// PaymentRepository encapsulates the append-only payment ledger.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *domain.Payment) (InsertResult, error)
	// FirstByEmail returns the first ledger entry for the email in natural
	// order. Subscription checks deliberately use first-match, not
	// most-recent, semantics.
	FirstByEmail(ctx context.Context, email string) (*domain.Payment, error)
}

type paymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository returns a Mongo-backed implementation.
func NewPaymentRepository(coll *mongo.Collection) PaymentRepository {
	return &paymentRepository{coll: coll}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *domain.Payment) (InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return InsertResult{}, err
	}
	return InsertResult{InsertedID: res.InsertedID}, nil
}

func (r *paymentRepository) FirstByEmail(ctx context.Context, email string) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}
