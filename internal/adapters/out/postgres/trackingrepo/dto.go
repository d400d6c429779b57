// Package trackingrepo persists the append-only tracking ledger. Each row is
// one immutable event; the bigserial seq column gives the ledger its stable
// append order.
package trackingrepo

import (
	"time"

	"vastrakala/internal/core/domain/model/order"
	"vastrakala/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingEventDTO represents one ledger row. Rows are only ever inserted,
// never updated or deleted.
type TrackingEventDTO struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    string
	Message   string
	Location  *string
	Timestamp time.Time
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "order_tracking_events"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(orderID uuid.UUID, entry tracking.Entry) TrackingEventDTO {
	return TrackingEventDTO{
		OrderID:   orderID,
		Status:    entry.Status().String(),
		Message:   entry.Message(),
		Location:  entry.Location(),
		Timestamp: entry.Timestamp(),
	}
}

// toDomain converts a database row back into a ledger entry.
func toDomain(dto TrackingEventDTO) (tracking.Entry, error) {
	return tracking.RestoreEntry(
		order.Status(dto.Status),
		dto.Message,
		dto.Timestamp,
		dto.Location,
	)
}
