package ports

import "context"

// CartRepository is the cart collaborator consumed by the order core.
// The full cart CRUD lives at the storefront boundary; the core only needs
// the clearing side effect triggered by payment verification, plus a count
// so the effect is observable.
type CartRepository interface {
	// ClearByUser removes every cart item belonging to the user.
	// Clearing an empty cart is not an error.
	ClearByUser(ctx context.Context, userID string) error

	// CountByUser returns the number of cart items the user currently has.
	CountByUser(ctx context.Context, userID string) (int64, error)
}
