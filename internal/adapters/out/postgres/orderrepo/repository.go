package orderrepo

import (
	"context"
	"errors"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/core/domain/model/order"
	"vastrakala/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for unique constraint breaches.
const uniqueViolation = "23505"

// inProgressStatuses are the canonical statuses between payment and
// delivery. Orders in these statuses are candidates for the progression job.
var inProgressStatuses = []string{
	order.StatusConfirmed.String(),
	order.StatusPacked.String(),
	order.StatusShipped.String(),
	order.StatusInTransit.String(),
	order.StatusOutForDelivery.String(),
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. A duplicate id surfaces as a
// value-is-invalid error.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("order id", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInProgress retrieves paid orders that have not yet been delivered.
// Orders parked on labels outside the canonical progression are excluded.
func (r *GormOrderRepository) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "payment_status = ? AND status IN ?",
			order.PaymentCompleted.String(), inProgressStatuses).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}
