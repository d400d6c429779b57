package commands

import (
	"context"

	"vastrakala/internal/core/domain/model/order"
	"vastrakala/internal/core/domain/model/tracking"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Persists the new order and seeds its tracking ledger with the initial
// pending entry, atomically.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID(), "user-1", items, 2000, 100, 2100, nil)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// placed.Status() == order.StatusPending, tracking has one entry
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the placement command. Creates the order in pending
// status and appends the seed tracking entry in the same transaction, so an
// order never exists without its first ledger entry.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.Items(),
		cmd.Subtotal(),
		cmd.Shipping(),
		cmd.Total(),
		cmd.ShippingAddress(),
	)
	if err != nil {
		return nil, err
	}

	seed, err := tracking.NewEntry(order.StatusPending, "", nil)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.TrackingRepository().Append(ctx, newOrder.ID(), seed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
