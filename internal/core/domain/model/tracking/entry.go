package tracking

import (
	"errors"
	"fmt"
	"time"

	"vastrakala/internal/core/domain/model/order"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

// SeedMessage is the message of the initial ledger entry written at order
// creation.
const SeedMessage = "Order placed successfully"

// defaultMessages maps canonical statuses to the message used when the
// caller supplies none.
var defaultMessages = map[order.Status]string{
	order.StatusPending:        "Order placed successfully",
	order.StatusConfirmed:      "Order confirmed and being processed",
	order.StatusPacked:         "Order has been packed and ready for dispatch",
	order.StatusShipped:        "Order has been shipped",
	order.StatusInTransit:      "Order is in transit",
	order.StatusOutForDelivery: "Order is out for delivery",
	order.StatusDelivered:      "Order has been delivered successfully",
}

// DefaultMessage returns the default human-readable message for a status.
// Labels outside the canonical set fall back to "Status updated to {status}".
func DefaultMessage(status order.Status) string {
	if msg, ok := defaultMessages[status]; ok {
		return msg
	}
	return fmt.Sprintf("Status updated to %s", status)
}

// Entry is one timestamped fulfillment-status event in an order's history.
// Entries are immutable once created; the ledger only ever appends them.
type Entry struct {
	status    order.Status
	message   string
	timestamp time.Time
	location  *string

	isConstructed bool
}

// NewEntry creates a ledger entry stamped with the current time. An empty
// message is resolved through the default-message table; location may be nil.
func NewEntry(status order.Status, message string, location *string) (Entry, error) {
	if err := status.Validate(); err != nil {
		return Entry{}, err
	}

	if message == "" {
		message = DefaultMessage(status)
	}

	return Entry{
		status:        status,
		message:       message,
		timestamp:     time.Now().UTC(),
		location:      location,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an Entry from persistence with its stored
// timestamp and message.
func RestoreEntry(status order.Status, message string, timestamp time.Time, location *string) (Entry, error) {
	if err := status.Validate(); err != nil {
		return Entry{}, err
	}

	return Entry{
		status:        status,
		message:       message,
		timestamp:     timestamp,
		location:      location,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through a constructor.
func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// Status returns the status label the entry records.
func (e Entry) Status() order.Status {
	return e.status
}

// Message returns the human-readable event message.
func (e Entry) Message() string {
	return e.message
}

// Timestamp returns when the event was recorded.
func (e Entry) Timestamp() time.Time {
	return e.timestamp
}

// Location returns the optional location of the event, nil if unknown.
func (e Entry) Location() *string {
	return e.location
}
