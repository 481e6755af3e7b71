package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUserOrdersQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetUserOrdersQuery("alice@example.com", 1)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", query.CustomerEmail())
	assert.Equal(t, 1, query.StatusRank())
}

func TestNewGetUserOrdersQuery_EmptyEmail(t *testing.T) {
	_, err := queries.NewGetUserOrdersQuery("", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCustomerEmailIsRequired)
}

func TestGetUserOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetUserOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUserOrdersQueryIsNotConstructed)
}
