package order

import (
	"errors"
	"fmt"

	"vastrakala/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item captured at order time. Name, price, size, and color
// are snapshots of the product at the moment of purchase and never change
// afterwards, even if the catalog entry does.
type Item struct {
	productID string
	name      string
	price     float64
	size      string
	color     string
	quantity  int

	isConstructed bool
}

// NewItem creates a validated line item. The unit price is caller-supplied
// and trusted; only structural fields are checked.
func NewItem(productID, name string, price float64, size, color string, quantity int) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.price = price
	item.size = size
	item.color = color
	return item, nil
}

// Validate ensures the item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the catalog reference of the purchased product.
func (i Item) ProductID() string {
	return i.productID
}

// Name returns the product name snapshot.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price snapshot.
func (i Item) Price() float64 {
	return i.price
}

// Size returns the purchased size.
func (i Item) Size() string {
	return i.size
}

// Color returns the purchased color.
func (i Item) Color() string {
	return i.color
}

// Quantity returns the number of units purchased.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// Address is the freeform shipping address attached to an order. Keys are
// whatever the storefront collected (name, street, city, pincode, ...).
// A nil Address means the order has no shipping address yet.
type Address map[string]string

// City returns the address city, or false when the address is absent or has
// no city field.
func (a Address) City() (string, bool) {
	if a == nil {
		return "", false
	}
	city, ok := a["city"]
	if !ok || city == "" {
		return "", false
	}
	return city, true
}
