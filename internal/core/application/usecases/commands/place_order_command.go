package commands

import (
	"errors"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/core/domain/model/order"
	"vastrakala/internal/pkg/errs"
	"vastrakala/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to create a new order for a user.
// Totals are caller-supplied and trusted; the command only checks structure.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, "user-1", items, 2000, 100, 2100, address)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          string
	items           []order.Item
	subtotal        float64
	shipping        float64
	total           float64
	shippingAddress order.Address

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates the order id, owning user, and that at least one constructed
// line item is present. Price arithmetic is not checked.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	userID string,
	items []order.Item,
	subtotal, shipping, total float64,
	shippingAddress order.Address,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.subtotal = subtotal
	cmd.shipping = shipping
	cmd.total = total
	cmd.shippingAddress = shippingAddress
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identity of the ordering user.
func (c PlaceOrderCommand) UserID() string {
	return c.userID
}

// Items returns the line items of the order.
func (c PlaceOrderCommand) Items() []order.Item {
	return c.items
}

// Subtotal returns the caller-supplied item subtotal.
func (c PlaceOrderCommand) Subtotal() float64 {
	return c.subtotal
}

// Shipping returns the caller-supplied shipping cost.
func (c PlaceOrderCommand) Shipping() float64 {
	return c.shipping
}

// Total returns the caller-supplied order total.
func (c PlaceOrderCommand) Total() float64 {
	return c.total
}

// ShippingAddress returns the optional shipping address.
func (c PlaceOrderCommand) ShippingAddress() order.Address {
	return c.shippingAddress
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}

	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
