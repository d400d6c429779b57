package commands

import (
	"context"

	"vastrakala/internal/core/domain/model/order"
	"vastrakala/internal/core/domain/model/tracking"
)

// SimulateDeliveryCommandHandler replays the whole fulfillment timeline for
// an order in one shot. Appends all six timeline entries to the tracking
// ledger and leaves the order delivered.
//
// The replay always starts from the top of the timeline regardless of the
// order's current status, so invoking it twice yields a ledger with two full
// runs. The endpoint is a demo affordance and keeps the same deliberately
// simple semantics as a manual run of six tracking updates.
type SimulateDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSimulateDeliveryCommandHandler creates a handler for the delivery
// simulation.
func NewSimulateDeliveryCommandHandler(uowFactory OrderUoWFactory) SimulateDeliveryCommandHandler {
	return SimulateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends every timeline entry and moves the order to delivered,
// atomically. Returns the final status.
func (h *SimulateDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd SimulateDeliveryCommand,
) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	ledgerRepo := uow.TrackingRepository()

	simulatedOrder, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	for _, step := range fulfillmentSteps {
		location := stepLocation(step, simulatedOrder)

		entry, entryErr := tracking.NewEntry(step.status, step.message, &location)
		if entryErr != nil {
			return "", entryErr
		}

		if err = ledgerRepo.Append(ctx, simulatedOrder.ID(), entry); err != nil {
			return "", err
		}
	}

	if err = simulatedOrder.SetStatus(order.StatusDelivered); err != nil {
		return "", err
	}

	if err = ordersRepo.Update(ctx, simulatedOrder); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return simulatedOrder.Status(), nil
}
