package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkNotificationReadCommand_ValidInput(t *testing.T) {
	notificationID := kernel.NewUUID()

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	require.NoError(t, err)

	assert.Equal(t, notificationID, cmd.NotificationID())
	require.NoError(t, cmd.Validate())
}

func TestNewMarkNotificationReadCommand_InvalidNotificationID(t *testing.T) {
	_, err := commands.NewMarkNotificationReadCommand(kernel.UUID{})
	require.Error(t, err)
}

func TestMarkNotificationReadCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.MarkNotificationReadCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMarkNotificationReadCommandIsNotConstructed)
}
