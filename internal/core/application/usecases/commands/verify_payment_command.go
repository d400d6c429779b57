package commands

import (
	"errors"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/pkg/errs"
	"vastrakala/internal/pkg/guard"
)

var (
	ErrVerifyPaymentCommandIsNotConstructed = errors.New(
		"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
	)
)

// VerifyPaymentCommand represents a request to verify a payment against the
// gateway and confirm the order on success. The signature is passed through
// to the gateway unvalidated: the mock ignores it, a real adapter checks it
// against the provider's shared secret.
type VerifyPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	paymentID string
	signature string

	guard guard.ConstructorGuard
}

// NewVerifyPaymentCommand creates a payment verification command.
// Requires a valid order id and a non-empty payment reference.
func NewVerifyPaymentCommand(orderID kernel.UUID, paymentID, signature string) (VerifyPaymentCommand, error) {
	cmd := VerifyPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPaymentID(paymentID),
	); err != nil {
		return VerifyPaymentCommand{}, err
	}

	cmd.signature = signature
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c VerifyPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentID returns the gateway payment reference.
func (c VerifyPaymentCommand) PaymentID() string {
	return c.paymentID
}

// Signature returns the provider signature accompanying the payment.
func (c VerifyPaymentCommand) Signature() string {
	return c.signature
}

func (c *VerifyPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyPaymentCommand) setPaymentID(paymentID string) error {
	if paymentID == "" {
		return errs.NewValueIsRequiredError("paymentID")
	}

	c.paymentID = paymentID
	return nil
}
