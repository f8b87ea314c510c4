package client_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/internal/infrastructure/config"
	"github.com/andrescamacho/spacetraders-sdk/pkg/client"
	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
	"github.com/andrescamacho/spacetraders-sdk/pkg/transport"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := client.New("", "token")
	assert.ErrorIs(t, err, client.ErrMissingBaseURL)

	_, err = client.New("http://localhost", "")
	assert.ErrorIs(t, err, client.ErrMissingToken)

	c, err := client.New("http://localhost", "token")
	require.NoError(t, err)
	assert.NotNil(t, c.Agents)
	assert.NotNil(t, c.Contracts)
	assert.NotNil(t, c.Factions)
	assert.NotNil(t, c.Fleet)
	assert.NotNil(t, c.Systems)
	assert.Equal(t, "http://localhost", c.Session().BaseURL())
}

func TestNewFromEnvironment_PrefersEnvironment(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	t.Setenv(config.EnvBaseURL, fake.URL())
	t.Setenv(config.EnvToken, helpers.TestToken)

	// Act
	c, err := client.NewFromEnvironment("http://unused.invalid", "wrong-token")
	require.NoError(t, err)
	outcome, err := c.Agents.Mine(context.Background())

	// Assert
	require.NoError(t, err)
	assert.True(t, outcome.OK())
	assert.Equal(t, fake.URL(), c.Session().BaseURL())
}

func TestNewFromEnvironment_FallsBackToArguments(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	t.Setenv(config.EnvBaseURL, "")
	t.Setenv(config.EnvToken, "")

	// Act
	c, err := client.NewFromEnvironment(fake.URL(), helpers.TestToken)
	require.NoError(t, err)
	outcome, err := c.Agents.Mine(context.Background())

	// Assert
	require.NoError(t, err)
	assert.True(t, outcome.OK())

	// Act - nothing configured anywhere
	_, err = client.NewFromEnvironment("", "")

	// Assert
	assert.ErrorIs(t, err, client.ErrMissingBaseURL)
}

func TestClient_Status(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()

	// Act
	outcome, err := c.Status(context.Background())

	// Assert
	require.NoError(t, err)
	require.True(t, outcome.OK())
	assert.Equal(t, "v2.3.0", outcome.Value.Version)
	assert.Equal(t, "2025-05-25", outcome.Value.ResetDate)
	assert.Equal(t, "Fetched server status.", outcome.Message)

	req, ok := fake.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "/", req.Path)
}

func TestClient_SendsJSONAndBearerHeaders(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()

	// Act
	_, err := c.Fleet.Orbit(context.Background(), helpers.TestShipSymbol)
	require.NoError(t, err)

	// Assert
	req, ok := fake.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "Bearer "+helpers.TestToken, req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestClient_WrongTokenIsUnauthorizedOutcome(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c, err := client.New(fake.URL(), "someone-else")
	require.NoError(t, err)

	// Act
	outcome, err := c.Agents.Mine(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, client.KindUnauthorized, outcome.Kind)
	assert.Equal(t, 4100, outcome.Code)
	assert.Contains(t, outcome.Message, "Unauthorized (status 401)")
}

func TestClient_TransportFailureIsError(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c, err := client.New(fake.URL(), helpers.TestToken, transport.WithTimeout(time.Second))
	require.NoError(t, err)
	closed, err := client.New("http://127.0.0.1:1", helpers.TestToken)
	require.NoError(t, err)

	// Act
	outcome, err := closed.Agents.Mine(context.Background())

	// Assert
	assert.Nil(t, outcome)
	require.Error(t, err)
	assert.True(t, transport.IsTransportError(err))
	assert.False(t, models.IsSchemaError(err))
	assert.False(t, errors.Is(err, client.ErrInvalidParams))
	assert.Contains(t, err.Error(), "failed to fetch own agent")

	// The working client is unaffected
	ok, err := c.Agents.Mine(context.Background())
	require.NoError(t, err)
	assert.True(t, ok.OK())
}

func TestClient_CancelledContextIsError(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	outcome, err := c.Agents.Mine(ctx)

	// Assert
	assert.Nil(t, outcome)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_SchemaViolationIsLoud(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"credits beyond safe integer", `{"data":{"symbol":"BOB","headquarters":"X1-A1","credits":9007199254740992,"startingFaction":"COSMIC","shipCount":1}}`},
		{"bad symbol", `{"data":{"symbol":"not a symbol","headquarters":"X1-A1","credits":1,"startingFaction":"COSMIC","shipCount":1}}`},
		{"negative ship count", `{"data":{"symbol":"BOB","headquarters":"X1-A1","credits":1,"startingFaction":"COSMIC","shipCount":-1}}`},
		{"missing data", `{"agent":{}}`},
		{"null data", `{"data":null}`},
		{"not json", `<html>oops</html>`},
		{"wrong type", `{"data":{"symbol":"BOB","headquarters":"X1-A1","credits":"lots","startingFaction":"COSMIC","shipCount":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			fake := helpers.NewFakeAPI(t)
			fake.Respond(http.MethodGet, "/agents/BOB", http.StatusOK, tt.body)
			c := fake.Client()

			// Act
			outcome, err := c.Agents.Get(context.Background(), "BOB")

			// Assert
			assert.Nil(t, outcome)
			require.Error(t, err)
			assert.True(t, models.IsSchemaError(err), "got %v", err)
			assert.False(t, transport.IsTransportError(err))
		})
	}
}

func TestClient_ConcurrentUse(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()
	var wg sync.WaitGroup
	errs := make(chan error, 20)

	// Act
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := c.Agents.Mine(context.Background())
			if err == nil && !outcome.OK() {
				err = errors.New(outcome.Message)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	// Assert
	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 20, fake.Hits())
}
