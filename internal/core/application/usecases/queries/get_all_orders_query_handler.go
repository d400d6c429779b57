package queries

import (
	"context"

	"gorm.io/gorm"
)

// allOrdersLimit caps the back-office listing at the most recent orders.
const allOrdersLimit = 100

// GetAllOrdersQueryHandler reads the cross-user order listing from the
// database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the back-office listing.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns the most recent orders across all users, newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY created_at DESC
		LIMIT ?
	`, allOrdersLimit).Rows()
	if err != nil {
		return nil, err
	}

	return collectOrders(rows)
}
