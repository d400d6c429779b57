package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler reads an order's tracking ledger from the
// database.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle returns the order's events in append order alongside its current
// status. An unknown order id yields an empty event slice, not an error:
// the ledger deliberately tolerates missing orders, and the read side
// mirrors that. CurrentStatus stays empty when the order does not exist.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	resp := GetOrderTrackingQueryResponse{
		OrderID: query.OrderID(),
		Events:  make([]TrackingEventResponse, 0),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&resp.CurrentStatus); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return GetOrderTrackingQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			message,
			location,
			timestamp
		FROM order_tracking_events
		WHERE order_id = ?
		ORDER BY seq
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackingEventResponse
		var location sql.NullString

		if err = rows.Scan(&event.Status, &event.Message, &location, &event.Timestamp); err != nil {
			return GetOrderTrackingQueryResponse{}, err
		}

		if location.Valid {
			event.Location = &location.String
		}
		resp.Events = append(resp.Events, event)
	}

	if err = rows.Err(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	return resp, nil
}
