// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work owns one database transaction and hands out repositories
// bound to it, so a command handler's writes commit or roll back together.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
//	    return err
//	}
//	if err := uow.TrackingRepository().Append(ctx, newOrder.ID(), seed); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin or after Commit operate on the base
// connection instead of a transaction. The payment flow relies on this:
// it clears the user's cart through the same unit of work after the order
// update has committed.
//
// Each UnitOfWork instance is single-use and not safe for concurrent use;
// create one per business operation.
package postgres

import (
	"context"

	"vastrakala/internal/adapters/out/postgres/cartrepo"
	"vastrakala/internal/adapters/out/postgres/orderrepo"
	"vastrakala/internal/adapters/out/postgres/trackingrepo"
	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Kept for post-commit processing such as event publishing.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks aggregate
// changes for one business operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin on an already begun unit of
// work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the transaction. After commit the
// transaction is closed; repositories fall back to the base connection.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the transaction. Rolling back
// after a successful commit returns gorm.ErrInvalidTransaction, which
// deferred rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns the order repository bound to the current
// transaction, or to the base connection when no transaction is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackingRepository returns the tracking ledger repository bound to the
// current transaction, or to the base connection when none is active.
func (uow *GormUnitOfWork) TrackingRepository() ports.TrackingRepository {
	return trackingrepo.NewGormTrackingRepository(uow.conn())
}

// CartRepository returns the cart repository bound to the current
// transaction, or to the base connection when none is active. The payment
// flow deliberately calls it after commit to clear the cart outside the
// order transaction.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
