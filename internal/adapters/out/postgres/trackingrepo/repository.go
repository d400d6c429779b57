package trackingrepo

import (
	"context"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM. Entries
// are value objects owned by their order, so no aggregate tracking applies.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Append inserts an entry at the end of the order's ledger.
func (r *GormTrackingRepository) Append(ctx context.Context, orderID kernel.UUID, entry tracking.Entry) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(orderID.Bytes(), entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrder returns the order's entries in append order. An order with no
// ledger yields an empty slice.
func (r *GormTrackingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]tracking.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackingEventDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]tracking.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
