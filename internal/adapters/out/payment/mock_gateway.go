// Package payment contains the payment gateway adapter. The current
// implementation is a development mock shaped like the Razorpay checkout
// contract, so the storefront integration code stays unchanged when a real
// gateway is wired in.
package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/core/ports"
	"vastrakala/internal/pkg/errs"
)

const (
	// currency is the only currency the storefront sells in.
	currency = "INR"

	// mockKeyID is the publishable key handed to the checkout widget.
	mockKeyID = "rzp_test_mock_key"

	// referenceBytes sizes the random payment reference.
	referenceBytes = 8
)

// RazorMockGateway simulates the payment provider. CreatePayment issues
// random order references and VerifyPayment accepts everything; no network
// calls are made and no money moves.
type RazorMockGateway struct{}

// NewRazorMockGateway creates the mock gateway.
func NewRazorMockGateway() *RazorMockGateway {
	return &RazorMockGateway{}
}

// CreatePayment registers a mock payment attempt. The amount is converted to
// paise, matching what the real provider expects.
func (g *RazorMockGateway) CreatePayment(
	_ context.Context,
	orderID kernel.UUID,
	amount float64,
) (ports.PaymentIntent, error) {
	if err := orderID.Validate(); err != nil {
		return ports.PaymentIntent{}, err
	}
	if amount <= 0 {
		return ports.PaymentIntent{}, errs.NewValueIsInvalidError("amount")
	}

	raw := make([]byte, referenceBytes)
	if _, err := rand.Read(raw); err != nil {
		return ports.PaymentIntent{}, fmt.Errorf("payment reference generation failed: %w", err)
	}

	return ports.PaymentIntent{
		Reference:   "order_" + hex.EncodeToString(raw),
		AmountMinor: int64(math.Round(amount * 100)),
		Currency:    currency,
		KeyID:       mockKeyID,
		Mock:        true,
		Message:     "This is MOCK mode. Add real Razorpay keys for production.",
	}, nil
}

// VerifyPayment accepts every payment. A real adapter validates the
// provider signature here.
func (g *RazorMockGateway) VerifyPayment(_ context.Context, _ kernel.UUID, _, _ string) error {
	return nil
}
