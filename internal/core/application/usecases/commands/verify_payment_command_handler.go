package commands

import (
	"context"
	"fmt"
	"log/slog"

	"vastrakala/internal/core/ports"
)

// VerifyPaymentCommandHandler handles payment verification and order
// confirmation. On a verified payment the order moves to
// completed/confirmed, and the user's cart is cleared.
//
// The cart clear is deliberately sequenced after the order update commits:
// a crash in between leaves the payment confirmed with the cart intact,
// which is a recoverable degraded state, not data loss. The whole operation
// is idempotent, so retrying the call re-runs only what is still missing.
type VerifyPaymentCommandHandler struct {
	gateway    ports.PaymentGateway
	uowFactory PaymentUoWFactory
	logger     *slog.Logger
}

// NewVerifyPaymentCommandHandler creates a handler for payment verification.
// Requires the payment gateway, a PaymentUoWFactory, and a logger for the
// post-commit side effect.
func NewVerifyPaymentCommandHandler(
	gateway ports.PaymentGateway,
	uowFactory PaymentUoWFactory,
	logger *slog.Logger,
) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{
		gateway:    gateway,
		uowFactory: uowFactory,
		logger:     logger.With("component", "verify_payment"),
	}
}

// Handle verifies the payment with the gateway, confirms the order inside a
// transaction, then clears the owning user's cart.
func (h *VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gateway.VerifyPayment(ctx, cmd.OrderID(), cmd.PaymentID(), cmd.Signature()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	paidOrder, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = paidOrder.ConfirmPayment(cmd.PaymentID()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, paidOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The transaction is closed; this runs on the base connection.
	if err = uow.CartRepository().ClearByUser(ctx, paidOrder.UserID()); err != nil {
		h.logger.ErrorContext(ctx, "payment confirmed but cart clear failed",
			"order_id", paidOrder.ID().String(),
			"user_id", paidOrder.UserID(),
			"error", err)
		return fmt.Errorf("order %s confirmed but cart clear failed: %w", paidOrder.ID(), err)
	}

	return nil
}
