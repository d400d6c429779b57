package queries

import (
	"errors"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by its identifier.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}
