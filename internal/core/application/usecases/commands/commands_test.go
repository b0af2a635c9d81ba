package commands_test

import (
	"strings"
	"testing"
	"time"

	"drivethrough/internal/core/application/usecases/commands"
	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartSessionCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewStartSessionCommand(id)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.SessionID())
}

func TestNewStartSessionCommand_InvalidSessionID(t *testing.T) {
	_, err := commands.NewStartSessionCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestStartSessionCommand_NotConstructed(t *testing.T) {
	cmd := commands.StartSessionCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrStartSessionCommandIsNotConstructed)
}

func TestNewApplyUtteranceCommand_TrimsUtterance(t *testing.T) {
	cmd, err := commands.NewApplyUtteranceCommand(kernel.NewUUID(), "  two big macs  ")
	require.NoError(t, err)
	assert.Equal(t, "two big macs", cmd.Utterance())
}

func TestNewApplyUtteranceCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewApplyUtteranceCommand(kernel.UUID{}, " ")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, commands.ErrUtteranceIsRequired)
}

func TestNewApplyUtteranceCommand_TooLong(t *testing.T) {
	_, err := commands.NewApplyUtteranceCommand(kernel.NewUUID(), strings.Repeat("a", 501))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewApplyIntentsCommand_CopiesBatch(t *testing.T) {
	batch := intent.NewBatch(intent.NewAdd("Coke", 1))
	cmd, err := commands.NewApplyIntentsCommand(kernel.NewUUID(), batch)
	require.NoError(t, err)

	batch[0] = intent.NewClear()
	assert.Equal(t, intent.Add, cmd.Intents()[0].Kind())
}

func TestNewApplyIntentsCommand_EmptyBatch(t *testing.T) {
	_, err := commands.NewApplyIntentsCommand(kernel.NewUUID(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSessionCommands_InvalidSessionID(t *testing.T) {
	_, err := commands.NewUndoLastTurnCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewResetSessionCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewCheckoutSessionCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewExpireIdleSessionsCommand(t *testing.T) {
	cmd, err := commands.NewExpireIdleSessionsCommand(time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cmd.IdleFor())

	_, err = commands.NewExpireIdleSessionsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
