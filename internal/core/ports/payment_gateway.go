package ports

import (
	"context"

	"vastrakala/internal/core/domain/model/kernel"
)

// PaymentIntent is the gateway's response to a payment creation request.
// AmountMinor is the order total converted to the currency's smallest
// denomination (paise for INR).
type PaymentIntent struct {
	Reference   string
	AmountMinor int64
	Currency    string
	KeyID       string
	Mock        bool
	Message     string
}

// PaymentGateway is the capability boundary towards the payment provider.
// Exactly one implementation exists today (the mock adapter), but the
// lifecycle engine only ever sees this interface, so a real gateway is a
// drop-in replacement.
type PaymentGateway interface {
	// CreatePayment registers a payment attempt for the order and returns
	// the provider-side reference the storefront hands to the client.
	CreatePayment(ctx context.Context, orderID kernel.UUID, amount float64) (PaymentIntent, error)

	// VerifyPayment checks the provider's signature for a completed
	// payment. The mock implementation always succeeds.
	VerifyPayment(ctx context.Context, orderID kernel.UUID, paymentID, signature string) error
}
