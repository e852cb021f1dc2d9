package service

import (
	"context"
	"errors"
	"math"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/markethub/marketplace-service/internal/billing"
	"github.com/markethub/marketplace-service/internal/domain"
	"github.com/markethub/marketplace-service/internal/repository"
	apperrors "github.com/markethub/marketplace-service/pkg/util"
)

// PaymentService records subscription payments and brokers intents with the
// external processor.
type PaymentService struct {
	payments repository.PaymentRepository
	gateway  billing.Gateway
}

// NewPaymentService builds the service.
func NewPaymentService(payments repository.PaymentRepository, gateway billing.Gateway) *PaymentService {
	return &PaymentService{payments: payments, gateway: gateway}
}

// CreateIntent asks the processor for a payment intent over the given price
// in major units. The processor wants minor units: floor(price * 100).
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return "", apperrors.NewValidationError("invalid price", nil)
	}
	amountMinor := int64(math.Floor(price * 100))
	return s.gateway.CreateIntent(ctx, amountMinor, "usd")
}

// Record appends a payment to the ledger. Nothing is verified against an
// actual processor charge.
func (s *PaymentService) Record(ctx context.Context, payment *domain.Payment) (repository.InsertResult, error) {
	return s.payments.Insert(ctx, payment)
}

// IsSubscribed reports whether the email has a subscribed ledger entry. The
// check reads the first record in natural order, not the most recent one.
func (s *PaymentService) IsSubscribed(ctx context.Context, email string) (bool, error) {
	payment, err := s.payments.FirstByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return payment.Subscribed(), nil
}
