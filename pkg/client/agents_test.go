package client_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/pkg/client"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

func TestAgents_Mine(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	fake.SetAgent(helpers.CreateTestAgent(helpers.TestAgentSymbol, 100))
	c := fake.Client()

	// Act
	outcome, err := c.Agents.Mine(context.Background())

	// Assert
	require.NoError(t, err)
	require.True(t, outcome.OK())
	assert.Equal(t, int64(100), outcome.Value.Credits)
	assert.Equal(t, helpers.TestAgentSymbol, outcome.Value.Symbol)
	require.NotNil(t, outcome.Value.AccountID)
	assert.Equal(t, client.KindOK, outcome.Kind)
	assert.Equal(t, 200, outcome.StatusCode)
	assert.NotEmpty(t, outcome.Message)

	req, _ := fake.LastRequest()
	assert.Equal(t, "/my/agent", req.Path)
}

func TestAgents_Get(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	fake.AddAgent(helpers.CreateTestAgent("RIVAL", 5000))
	c := fake.Client()

	// Act
	outcome, err := c.Agents.Get(context.Background(), "RIVAL")

	// Assert
	require.NoError(t, err)
	require.True(t, outcome.OK())
	assert.Equal(t, "RIVAL", outcome.Value.Symbol)
	assert.Equal(t, "Fetched agent RIVAL.", outcome.Message)
}

func TestAgents_Get_NotFound(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()

	// Act
	outcome, err := c.Agents.Get(context.Background(), "NOBODY")

	// Assert
	require.NoError(t, err)
	assert.Nil(t, outcome.Value)
	assert.Equal(t, client.KindNotFound, outcome.Kind)
	assert.Contains(t, outcome.Message, "not found")
}

func TestAgents_Get_RejectsBadSymbolWithoutSending(t *testing.T) {
	for _, symbol := range []string{"", "has space", "semi;colon", "slash/path"} {
		t.Run(fmt.Sprintf("%q", symbol), func(t *testing.T) {
			// Arrange
			fake := helpers.NewFakeAPI(t)
			c := fake.Client()

			// Act
			outcome, err := c.Agents.Get(context.Background(), symbol)

			// Assert
			assert.Nil(t, outcome)
			require.Error(t, err)
			assert.True(t, errors.Is(err, client.ErrInvalidParams))
			var perr *client.ParamError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "agentSymbol", perr.Fields[0].Field)
			assert.Equal(t, 0, fake.Hits())
		})
	}
}

func TestAgents_List_Paginates(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	for i := 0; i < 11; i++ {
		fake.AddAgent(helpers.CreateTestAgent(fmt.Sprintf("AGENT-%02d", i), int64(i)))
	}
	c := fake.Client()

	// Act
	outcome, err := c.Agents.List(context.Background(), 2, 5)

	// Assert
	require.NoError(t, err)
	require.True(t, outcome.OK())
	page := outcome.Value
	assert.Equal(t, 12, page.Meta.Total)
	assert.Equal(t, 2, page.Meta.Page)
	assert.Equal(t, 5, page.Meta.Limit)
	assert.Len(t, page.Data, 5)
	assert.Equal(t, "AGENT-05", page.Data[0].Symbol)

	req, _ := fake.LastRequest()
	assert.Equal(t, "2", req.Query.Get("page"))
	assert.Equal(t, "5", req.Query.Get("limit"))
}

func TestAgents_List_RejectsPaginationWithoutSending(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		field       string
	}{
		{"limit above 20", 1, 21, "limit"},
		{"limit zero", 1, 0, "limit"},
		{"page zero", 0, 10, "page"},
		{"negative page", -3, 10, "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			fake := helpers.NewFakeAPI(t)
			c := fake.Client()

			// Act
			outcome, err := c.Agents.List(context.Background(), tt.page, tt.limit)

			// Assert
			assert.Nil(t, outcome)
			require.ErrorIs(t, err, client.ErrInvalidParams)
			var perr *client.ParamError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.field, perr.Fields[0].Field)
			assert.Equal(t, 0, fake.Hits())
		})
	}
}

func TestAgents_List_Defaults(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()

	// Act
	outcome, err := c.Agents.List(context.Background(), client.DefaultPage, client.DefaultLimit)

	// Assert
	require.NoError(t, err)
	require.True(t, outcome.OK())
	assert.Equal(t, 1, outcome.Value.Meta.Page)
	assert.Equal(t, 10, outcome.Value.Meta.Limit)
	assert.LessOrEqual(t, len(outcome.Value.Data), outcome.Value.Meta.Limit)
}

func TestAgents_List_OversizedPageIsSchemaError(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	agent := `{"symbol":"A","headquarters":"X1-A1","credits":0,"startingFaction":"COSMIC","shipCount":0}`
	fake.Respond("GET", "/agents", 200,
		`{"data":[`+agent+`,`+agent+`],"meta":{"total":2,"page":1,"limit":1}}`)
	c := fake.Client()

	// Act
	outcome, err := c.Agents.List(context.Background(), 1, 1)

	// Assert
	assert.Nil(t, outcome)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit is 1")
}
