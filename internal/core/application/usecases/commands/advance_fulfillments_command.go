package commands

import (
	"errors"

	"vastrakala/internal/pkg/guard"
)

var (
	ErrAdvanceFulfillmentsCommandIsNotConstructed = errors.New(
		"AdvanceFulfillmentsCommand must be created via NewAdvanceFulfillmentsCommand constructor",
	)
)

// AdvanceFulfillmentsCommand requests one progression tick: every paid,
// undelivered order moves one step along the fulfillment timeline.
type AdvanceFulfillmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceFulfillmentsCommand creates a progression tick command.
func NewAdvanceFulfillmentsCommand() (AdvanceFulfillmentsCommand, error) {
	return AdvanceFulfillmentsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceFulfillmentsCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceFulfillmentsCommandIsNotConstructed)
}
