package queries

import (
	"errors"
	"time"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/pkg/guard"
)

var (
	ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
		"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
	)
)

// GetOrderTrackingQuery retrieves an order's tracking history.
//
// Example:
//
//	query, err := NewGetOrderTrackingQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderTrackingQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	for _, event := range resp.Events {
//	    fmt.Printf("%s: %s\n", event.Status, event.Message)
//	}
type GetOrderTrackingQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a query for an order's tracking history.
func NewGetOrderTrackingQuery(orderID kernel.UUID) (GetOrderTrackingQuery, error) {
	query := GetOrderTrackingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderTrackingQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the order whose tracking is requested.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderTrackingQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// TrackingEventResponse is one recorded tracking event.
type TrackingEventResponse struct {
	Status    string
	Message   string
	Location  *string
	Timestamp time.Time
}

// GetOrderTrackingQueryResponse is an order's tracking ledger together with
// the order's current status.
type GetOrderTrackingQueryResponse struct {
	OrderID       kernel.UUID
	CurrentStatus string
	Events        []TrackingEventResponse
}
