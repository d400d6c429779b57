package ports

import (
	"context"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the append-only
// tracking ledger. One ordered sequence of entries exists per order id.
type TrackingRepository interface {
	// Append adds an entry to the order's ledger, creating the ledger
	// implicitly on first write. It deliberately does not check that the
	// order exists, to tolerate out-of-order calls.
	Append(ctx context.Context, orderID kernel.UUID, entry tracking.Entry) error

	// GetByOrder returns the order's entries in append order. An order
	// with no ledger yields an empty slice, not an error.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]tracking.Entry, error)
}
