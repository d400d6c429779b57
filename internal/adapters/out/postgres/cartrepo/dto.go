// Package cartrepo persists storefront cart items. The order core only
// consumes the clearing side effect; the row shape mirrors what the
// storefront writes.
package cartrepo

import (
	"time"

	"github.com/google/uuid"
)

// CartItemDTO represents one item sitting in a user's cart.
type CartItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"index"`
	ProductID string
	Name      string
	Price     float64
	Size      string
	Color     string
	Quantity  int
	AddedAt   time.Time
}

// TableName specifies the database table name for cart items.
func (CartItemDTO) TableName() string {
	return "cart_items"
}
