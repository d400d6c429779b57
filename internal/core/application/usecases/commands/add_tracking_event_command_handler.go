package commands

import (
	"context"

	"vastrakala/internal/core/domain/model/tracking"
)

// AddTrackingEventCommandHandler appends a status event to an order's
// tracking ledger and moves the order to that status.
//
// The order must exist; the lookup runs before the append so a failed
// update never leaves a dangling ledger record. Transitions themselves are
// not validated; regressions are accepted, matching the manual-update
// contract.
type AddTrackingEventCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddTrackingEventCommandHandler creates a handler for manual tracking
// updates.
func NewAddTrackingEventCommandHandler(uowFactory OrderUoWFactory) AddTrackingEventCommandHandler {
	return AddTrackingEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the event and updates the order status atomically.
// Returns the appended entry with its resolved message and timestamp.
func (h *AddTrackingEventCommandHandler) Handle(
	ctx context.Context,
	cmd AddTrackingEventCommand,
) (tracking.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return tracking.Entry{}, err
	}

	entry, err := tracking.NewEntry(cmd.Status(), cmd.Message(), cmd.Location())
	if err != nil {
		return tracking.Entry{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return tracking.Entry{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	ledgerRepo := uow.TrackingRepository()

	trackedOrder, err := ordersRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return tracking.Entry{}, err
	}

	if err = ledgerRepo.Append(ctx, trackedOrder.ID(), entry); err != nil {
		return tracking.Entry{}, err
	}

	if err = trackedOrder.SetStatus(cmd.Status()); err != nil {
		return tracking.Entry{}, err
	}

	if err = ordersRepo.Update(ctx, trackedOrder); err != nil {
		return tracking.Entry{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return tracking.Entry{}, err
	}

	return entry, nil
}
