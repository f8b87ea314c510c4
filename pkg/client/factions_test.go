package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/pkg/client"
	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

func TestFactions_List(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()

	// Act
	outcome, err := c.Factions.List(context.Background(), client.DefaultPage, client.DefaultLimit)

	// Assert
	require.NoError(t, err)
	require.True(t, outcome.OK())
	require.Len(t, outcome.Value.Data, 2)
	assert.Equal(t, models.FactionCosmic, outcome.Value.Data[0].Symbol)
	assert.Equal(t, models.FactionVoid, outcome.Value.Data[1].Symbol)
	assert.Equal(t, 2, outcome.Value.Meta.Total)
}

func TestFactions_Get(t *testing.T) {
	tests := []struct {
		symbol  string
		ok      bool
		message string
	}{
		{"COSMIC", true, "Fetched faction COSMIC."},
		{"VOID", true, "Fetched faction VOID."},
		{"QUANTUM", false, "Faction not found."},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			// Arrange
			fake := helpers.NewFakeAPI(t)
			c := fake.Client()

			// Act
			outcome, err := c.Factions.Get(context.Background(), tt.symbol)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.ok, outcome.OK())
			assert.Equal(t, tt.message, outcome.Message)
			if tt.ok {
				assert.Equal(t, models.FactionSymbol(tt.symbol), outcome.Value.Symbol)
			} else {
				assert.Nil(t, outcome.Value)
			}
		})
	}
}

func TestFactions_Get_RejectsBadSymbol(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()

	// Act
	_, err := c.Factions.Get(context.Background(), "cosmic!")

	// Assert
	assert.ErrorIs(t, err, client.ErrInvalidParams)
	assert.Equal(t, 0, fake.Hits())
}

func TestFactions_List_RejectsBadPagination(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()

	// Act
	_, err := c.Factions.List(context.Background(), 0, 10)

	// Assert
	assert.ErrorIs(t, err, client.ErrInvalidParams)
	assert.Equal(t, 0, fake.Hits())
}
