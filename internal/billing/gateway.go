package billing

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no processor credential was supplied at
// startup. Only the payment-intent endpoint depends on the gateway.
var ErrNotConfigured = errors.New("payment gateway not configured")

// Gateway brokers payment-intent creation with the external processor.
// Amounts are in minor units (cents).
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (clientSecret string, err error)
}
