package commands_test

import (
	"testing"

	"vastrakala/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceFulfillmentsCommand_Valid(t *testing.T) {
	cmd, err := commands.NewAdvanceFulfillmentsCommand()
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}

func TestAdvanceFulfillmentsCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.AdvanceFulfillmentsCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAdvanceFulfillmentsCommandIsNotConstructed)
}
