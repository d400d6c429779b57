// Package queries contains read-only operations in the CQRS split.
// Query handlers bypass the domain model and read the database directly,
// returning plain response structs shaped for the transport layer.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"vastrakala/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemResponse is one order line item as stored at purchase time.
type ItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

// OrderResponse is the read model of a single order.
type OrderResponse struct {
	ID              kernel.UUID
	UserID          string
	Items           []ItemResponse
	Subtotal        float64
	Shipping        float64
	Total           float64
	PaymentID       *string
	PaymentStatus   string
	Status          string
	ShippingAddress map[string]string
	CreatedAt       time.Time
}

// orderColumns is the column list shared by the order read queries. The
// order must match scanOrderRow.
const orderColumns = `
	id,
	user_id,
	items,
	subtotal,
	shipping,
	total,
	payment_id,
	payment_status,
	status,
	shipping_address,
	created_at
`

// scanOrderRow reads one row produced with orderColumns into an
// OrderResponse, decoding the jsonb columns.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id uuid.UUID
	var itemsJSON []byte
	var addressJSON []byte
	var paymentID sql.NullString

	err := rows.Scan(
		&id,
		&resp.UserID,
		&itemsJSON,
		&resp.Subtotal,
		&resp.Shipping,
		&resp.Total,
		&paymentID,
		&resp.PaymentStatus,
		&resp.Status,
		&addressJSON,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	if paymentID.Valid {
		resp.PaymentID = &paymentID.String
	}

	if err = json.Unmarshal(itemsJSON, &resp.Items); err != nil {
		return OrderResponse{}, err
	}

	if len(addressJSON) > 0 {
		if err = json.Unmarshal(addressJSON, &resp.ShippingAddress); err != nil {
			return OrderResponse{}, err
		}
	}

	return resp, nil
}

// collectOrders drains a gorm raw query into a response slice.
func collectOrders(rows *sql.Rows) ([]OrderResponse, error) {
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
