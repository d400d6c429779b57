package ports

import (
	"context"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. Fails with a value-is-invalid
	// error if the id already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Fails with an object-not-found error if the order is absent.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Fails with an object-not-found error if the order is absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInProgress retrieves paid orders that have not yet been
	// delivered. Used by the fulfillment progression job.
	GetAllInProgress(ctx context.Context) ([]*order.Order, error)
}
