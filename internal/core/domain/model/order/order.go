package order

import (
	"errors"
	"time"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the purchase lifecycle. It carries two
// independent status axes: payment status (pending/completed/failed) and
// fulfillment status (the tracking progression).
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty owning user.
//   - Must contain at least one line item; items are immutable after creation.
//   - Subtotal, shipping, and total are caller-supplied and not re-validated
//     (total = subtotal + shipping is the storefront's responsibility).
//   - Only ConfirmPayment and SetStatus mutate the aggregate after creation;
//     orders are never deleted in normal operation.
type Order struct {
	id              kernel.UUID
	userID          string
	items           []Item
	subtotal        float64
	shipping        float64
	total           float64
	paymentID       *string
	paymentStatus   PaymentStatus
	status          Status
	shippingAddress Address
	createdAt       time.Time

	isConstructed bool
}

// NewOrder creates a new Order with pending payment and fulfillment status.
// The creation timestamp is taken from the clock at construction time.
func NewOrder(
	id kernel.UUID,
	userID string,
	items []Item,
	subtotal, shipping, total float64,
	shippingAddress Address,
) (*Order, error) {
	o := &Order{
		paymentStatus: PaymentPending,
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.subtotal = subtotal
	o.shipping = shipping
	o.total = total
	o.shippingAddress = shippingAddress
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. All fields are taken
// as stored; the same structural validations as NewOrder apply.
func RestoreOrder(
	id kernel.UUID,
	userID string,
	items []Item,
	subtotal, shipping, total float64,
	paymentID *string,
	paymentStatus PaymentStatus,
	status Status,
	shippingAddress Address,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, userID, items, subtotal, shipping, total, shippingAddress)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		paymentStatus.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.paymentID = paymentID
	o.paymentStatus = paymentStatus
	o.status = status
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identity of the user who placed the order.
func (o *Order) UserID() string {
	return o.userID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the caller-supplied item subtotal.
func (o *Order) Subtotal() float64 {
	return o.subtotal
}

// Shipping returns the caller-supplied shipping cost.
func (o *Order) Shipping() float64 {
	return o.shipping
}

// Total returns the caller-supplied order total.
func (o *Order) Total() float64 {
	return o.total
}

// PaymentID returns the external payment reference, nil before payment.
func (o *Order) PaymentID() *string {
	return o.paymentID
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// ShippingAddress returns the freeform shipping address, nil if absent.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmPayment records a verified payment: sets the payment reference,
// marks the payment completed, and moves the order to confirmed.
//
// The operation is idempotent: confirming an already confirmed order with
// the same reference leaves the aggregate unchanged.
func (o *Order) ConfirmPayment(paymentID string) error {
	if paymentID == "" {
		return errs.NewValueIsRequiredError("paymentID")
	}

	o.paymentID = &paymentID
	o.paymentStatus = PaymentCompleted
	o.status = StatusConfirmed
	return nil
}

// SetStatus updates the fulfillment status. Transitions are not validated:
// the label only has to be non-empty, and regressions are allowed. See the
// Status docs for why the set is open.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
