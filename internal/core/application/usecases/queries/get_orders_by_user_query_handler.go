package queries

import (
	"context"

	"gorm.io/gorm"
)

// userOrdersLimit caps a single user's history page. Users with more orders
// see only the most recent ones.
const userOrdersLimit = 50

// GetOrdersByUserQueryHandler reads a user's order history from the database.
type GetOrdersByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByUserQueryHandler creates a handler for user order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersByUserQueryHandler(db *gorm.DB) GetOrdersByUserQueryHandler {
	return GetOrdersByUserQueryHandler{db: db}
}

// Handle returns the user's orders sorted by creation time, newest first.
// A user with no orders yields an empty slice, not an error.
func (h GetOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByUserQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, query.UserID(), userOrdersLimit).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrders(rows)
}
