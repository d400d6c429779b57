package queries

import (
	"context"

	"vastrakala/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Fails with an object-not-found error when the
// order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}

	orders, err := collectOrders(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	return orders[0], nil
}
