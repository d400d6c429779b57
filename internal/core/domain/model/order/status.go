package order

import (
	"vastrakala/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// The canonical progression is:
//
//	pending -> confirmed -> packed -> shipped -> in_transit -> out_for_delivery -> delivered
//
// Status is deliberately string-backed and open-valued: the tracking API
// accepts labels outside the canonical set and records them verbatim, so the
// type cannot be a closed enum. Known statuses get constants, a place in the
// progression, and default tracking messages; unknown labels are still valid
// values. Transitions are not enforced on manual updates; a caller may set
// any status at any time. Only the simulation and the background progression
// job move strictly forward.
type Status string

const (
	// StatusPending is the initial status assigned at order creation.
	StatusPending Status = "pending"

	// StatusConfirmed is set when payment is verified.
	StatusConfirmed Status = "confirmed"

	// StatusPacked indicates the order is packed and ready for dispatch.
	StatusPacked Status = "packed"

	// StatusShipped indicates the order left the warehouse.
	StatusShipped Status = "shipped"

	// StatusInTransit indicates the order is between hubs.
	StatusInTransit Status = "in_transit"

	// StatusOutForDelivery indicates the order is on its final leg.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDelivered is the terminal status of a fulfilled order.
	StatusDelivered Status = "delivered"
)

// Progression returns the canonical fulfillment sequence from pending to
// delivered. Callers must not mutate the returned slice.
func Progression() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusPacked,
		StatusShipped,
		StatusInTransit,
		StatusOutForDelivery,
		StatusDelivered,
	}
}

// Validate rejects the empty status. Any non-empty label is accepted,
// including labels outside the canonical set.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// IsKnown reports whether the status belongs to the canonical progression.
func (s Status) IsKnown() bool {
	for _, known := range Progression() {
		if s == known {
			return true
		}
	}
	return false
}

// Next returns the status following s in the canonical progression.
// Returns false for delivered (terminal) and for labels outside the
// progression.
func (s Status) Next() (Status, bool) {
	progression := Progression()
	for i, known := range progression {
		if s == known && i+1 < len(progression) {
			return progression[i+1], true
		}
	}
	return "", false
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// PaymentStatus represents the payment state of an order. Unlike Status it
// is a closed set: pending, completed, failed.
type PaymentStatus string

const (
	// PaymentPending is the initial payment status assigned at order creation.
	PaymentPending PaymentStatus = "pending"

	// PaymentCompleted is set once the gateway verifies the payment.
	PaymentCompleted PaymentStatus = "completed"

	// PaymentFailed is set when the gateway rejects the payment. The mock
	// gateway never produces it; a real adapter will.
	PaymentFailed PaymentStatus = "failed"
)

// Validate checks the payment status against the closed set of values.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return nil
	default:
		return errs.NewValueIsInvalidError("payment status")
	}
}

// String implements fmt.Stringer.
func (p PaymentStatus) String() string {
	return string(p)
}
