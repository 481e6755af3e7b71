package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	restaurantID := kernel.NewUUID()
	addressID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand("alice@example.com", restaurantID, addressID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", cmd.CustomerEmail())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Equal(t, addressID, cmd.AddressID())
}

func TestNewPlaceOrderCommand_EmptyEmail(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand("", kernel.NewUUID(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerEmailIsRequired)
}

func TestNewPlaceOrderCommand_InvalidRestaurantID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand("alice@example.com", kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOrderCommand_InvalidAddressID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand("alice@example.com", kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestPlaceOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.PlaceOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}
