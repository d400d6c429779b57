// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: validation, transaction
// management, and persistence.
package commands

import (
	"context"

	"vastrakala/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest composition that covers the
// repositories they touch.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TrackingRepoFactory provides access to the tracking ledger within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// CartRepoFactory provides access to the cart collaborator within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderUoW manages transactions for operations that touch the order
	// aggregate and its tracking ledger: placement, tracking updates, and
	// the delivery simulation.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		TrackingRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages the payment verification flow: the order update
	// runs inside the transaction, the cart clear runs after commit on the
	// same unit of work.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		CartRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
