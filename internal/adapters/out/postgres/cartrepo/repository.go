package cartrepo

import (
	"context"

	"vastrakala/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// ClearByUser removes every cart item belonging to the user. Clearing an
// empty cart succeeds.
func (r *GormCartRepository) ClearByUser(ctx context.Context, userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&CartItemDTO{}).Error
}

// CountByUser returns the number of cart items the user currently has.
func (r *GormCartRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, errs.NewValueIsRequiredError("userID")
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&CartItemDTO{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
