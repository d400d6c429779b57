package queries

import (
	"errors"

	"vastrakala/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves the most recent orders across all users,
// serving the back-office listing.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the cross-user order listing.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}
