package commands

import (
	"errors"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/core/domain/model/order"
	"vastrakala/internal/pkg/guard"
)

var (
	ErrAddTrackingEventCommandIsNotConstructed = errors.New(
		"AddTrackingEventCommand must be created via NewAddTrackingEventCommand constructor",
	)
)

// AddTrackingEventCommand represents a manual tracking update for an order.
// Message and location are optional; an empty message is resolved through
// the default-message table. Any non-empty status label is accepted,
// including labels outside the canonical progression.
type AddTrackingEventCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	status   order.Status
	message  string
	location *string

	guard guard.ConstructorGuard
}

// NewAddTrackingEventCommand creates a manual tracking update command.
func NewAddTrackingEventCommand(
	orderID kernel.UUID,
	status order.Status,
	message string,
	location *string,
) (AddTrackingEventCommand, error) {
	cmd := AddTrackingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return AddTrackingEventCommand{}, err
	}

	cmd.message = message
	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAddTrackingEventCommandIsNotConstructed)
}

// OrderID returns the order being updated.
func (c AddTrackingEventCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status label to record.
func (c AddTrackingEventCommand) Status() order.Status {
	return c.status
}

// Message returns the optional explicit message, empty for default.
func (c AddTrackingEventCommand) Message() string {
	return c.message
}

// Location returns the optional event location.
func (c AddTrackingEventCommand) Location() *string {
	return c.location
}

func (c *AddTrackingEventCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddTrackingEventCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
