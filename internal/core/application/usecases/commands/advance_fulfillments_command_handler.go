package commands

import (
	"context"
	"log/slog"

	"vastrakala/internal/core/domain/model/tracking"
)

// AdvanceFulfillmentsCommandHandler moves every paid, undelivered order one
// step along the fulfillment timeline and records the matching tracking
// entry. Driven on a schedule by the progression job in demo mode.
//
// Orders sitting on a label outside the canonical timeline are skipped: a
// manual update parked them there and the job has no sensible next step.
type AdvanceFulfillmentsCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewAdvanceFulfillmentsCommandHandler creates a handler for the
// progression tick.
func NewAdvanceFulfillmentsCommandHandler(
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) AdvanceFulfillmentsCommandHandler {
	return AdvanceFulfillmentsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "advance_fulfillments"),
	}
}

// Handle advances all in-progress orders one step in a single transaction.
// Returns the number of orders that moved.
func (h *AdvanceFulfillmentsCommandHandler) Handle(ctx context.Context, cmd AdvanceFulfillmentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	ledgerRepo := uow.TrackingRepository()

	inProgress, err := ordersRepo.GetAllInProgress(ctx)
	if err != nil {
		return 0, err
	}

	advanced := 0
	for _, activeOrder := range inProgress {
		next, ok := activeOrder.Status().Next()
		if !ok {
			h.logger.DebugContext(ctx, "order outside canonical timeline, skipping",
				"order_id", activeOrder.ID().String(),
				"status", activeOrder.Status().String())
			continue
		}

		step, ok := stepFor(next)
		if !ok {
			continue
		}

		location := stepLocation(step, activeOrder)

		entry, entryErr := tracking.NewEntry(step.status, step.message, &location)
		if entryErr != nil {
			return 0, entryErr
		}

		if err = ledgerRepo.Append(ctx, activeOrder.ID(), entry); err != nil {
			return 0, err
		}

		if err = activeOrder.SetStatus(next); err != nil {
			return 0, err
		}

		if err = ordersRepo.Update(ctx, activeOrder); err != nil {
			return 0, err
		}

		advanced++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return advanced, nil
}
