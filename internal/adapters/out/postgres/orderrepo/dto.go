// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items and the shipping address are stored as jsonb documents: items
// are immutable snapshots and the address is freeform, so neither warrants
// its own table.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          string    `gorm:"index"`
	Items           ItemsJSON `gorm:"type:jsonb"`
	Subtotal        float64
	Shipping        float64
	Total           float64
	PaymentID       *string
	PaymentStatus   string      `gorm:"index"`
	Status          string      `gorm:"index"`
	ShippingAddress AddressJSON `gorm:"type:jsonb"`
	CreatedAt       time.Time   `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the jsonb shape of one order line item.
type ItemDTO struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

// ItemsJSON stores the order's line items as a jsonb array.
type ItemsJSON []ItemDTO

// Value implements driver.Valuer for jsonb persistence.
func (j ItemsJSON) Value() (driver.Value, error) {
	return json.Marshal(j)
}

// Scan implements sql.Scanner for jsonb retrieval.
func (j *ItemsJSON) Scan(value any) error {
	if value == nil {
		*j = nil
		return nil
	}

	raw, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected jsonb type %T for items", value)
	}
	return json.Unmarshal(raw, j)
}

// AddressJSON stores the freeform shipping address as a jsonb object.
// A nil map persists as SQL NULL.
type AddressJSON map[string]string

// Value implements driver.Valuer for jsonb persistence.
func (a AddressJSON) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for jsonb retrieval.
func (a *AddressJSON) Scan(value any) error {
	if value == nil {
		*a = nil
		return nil
	}

	raw, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unexpected jsonb type %T for shipping address", value)
	}
	return json.Unmarshal(raw, a)
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make(ItemsJSON, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, ItemDTO{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Size:      item.Size(),
			Color:     item.Color(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		UserID:          aggregate.UserID(),
		Items:           items,
		Subtotal:        aggregate.Subtotal(),
		Shipping:        aggregate.Shipping(),
		Total:           aggregate.Total(),
		PaymentID:       aggregate.PaymentID(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		Status:          aggregate.Status().String(),
		ShippingAddress: AddressJSON(aggregate.ShippingAddress()),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(
			itemDTO.ProductID,
			itemDTO.Name,
			itemDTO.Price,
			itemDTO.Size,
			itemDTO.Color,
			itemDTO.Quantity,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.UserID,
		items,
		dto.Subtotal,
		dto.Shipping,
		dto.Total,
		dto.PaymentID,
		order.PaymentStatus(dto.PaymentStatus),
		order.Status(dto.Status),
		order.Address(dto.ShippingAddress),
		dto.CreatedAt,
	)
}
