package queries

import (
	"errors"

	"vastrakala/internal/pkg/errs"
	"vastrakala/internal/pkg/guard"
)

var (
	ErrGetOrdersByUserQueryIsNotConstructed = errors.New(
		"GetOrdersByUserQuery must be created via NewGetOrdersByUserQuery constructor",
	)
)

// GetOrdersByUserQuery retrieves a user's order history, most recent first.
type GetOrdersByUserQuery struct { //nolint:recvcheck //using for validation
	userID string

	guard guard.ConstructorGuard
}

// NewGetOrdersByUserQuery creates a query for a user's orders.
func NewGetOrdersByUserQuery(userID string) (GetOrdersByUserQuery, error) {
	query := GetOrdersByUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetOrdersByUserQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserQueryIsNotConstructed)
}

// UserID returns the owning user whose orders are requested.
func (q GetOrdersByUserQuery) UserID() string {
	return q.userID
}

func (q *GetOrdersByUserQuery) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	q.userID = userID
	return nil
}
