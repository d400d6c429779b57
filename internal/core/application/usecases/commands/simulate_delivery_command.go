package commands

import (
	"errors"

	"vastrakala/internal/core/domain/model/kernel"
	"vastrakala/internal/pkg/guard"
)

var (
	ErrSimulateDeliveryCommandIsNotConstructed = errors.New(
		"SimulateDeliveryCommand must be created via NewSimulateDeliveryCommand constructor",
	)
)

// SimulateDeliveryCommand requests a full fast-forward of an order's
// fulfillment timeline, used for demos and testing.
type SimulateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSimulateDeliveryCommand creates a delivery simulation command.
func NewSimulateDeliveryCommand(orderID kernel.UUID) (SimulateDeliveryCommand, error) {
	cmd := SimulateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return SimulateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SimulateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrSimulateDeliveryCommandIsNotConstructed)
}

// OrderID returns the order whose delivery is simulated.
func (c SimulateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *SimulateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
