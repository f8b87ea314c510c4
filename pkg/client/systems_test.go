package client_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/pkg/client"
	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

func TestSystems_ListAndGet(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()
	ctx := context.Background()

	// Act
	list, err := c.Systems.List(ctx, 1, 20)
	require.NoError(t, err)
	system, err := c.Systems.Get(ctx, helpers.TestSystem)
	require.NoError(t, err)

	// Assert
	require.True(t, list.OK())
	require.Len(t, list.Value.Data, 1)
	assert.Equal(t, helpers.TestSystem, list.Value.Data[0].Symbol)
	require.True(t, system.OK())
	assert.Len(t, system.Value.Waypoints, 3)
	assert.Equal(t, "Fetched system X1-DF55.", system.Message)
}

func TestSystems_Get_NotFound(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()

	// Act
	outcome, err := c.Systems.Get(context.Background(), "X1-ZZ99")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, client.KindNotFound, outcome.Kind)
	assert.Equal(t, "System not found.", outcome.Message)
}

func TestSystems_ListWaypoints_Filters(t *testing.T) {
	tests := []struct {
		name   string
		filter models.WaypointFilter
		want   []string
		query  url.Values
	}{
		{
			name:   "no filter",
			filter: models.WaypointFilter{},
			want:   []string{helpers.TestHomeWaypoint, helpers.TestMoonWaypoint, helpers.TestAsteroidField},
			query:  url.Values{"page": {"1"}, "limit": {"10"}},
		},
		{
			name:   "single trait",
			filter: models.WaypointFilter{Traits: []models.WaypointTraitSymbol{models.WaypointTraitMarketplace}},
			want:   []string{helpers.TestHomeWaypoint, helpers.TestMoonWaypoint},
			query:  url.Values{"page": {"1"}, "limit": {"10"}, "traits": {"MARKETPLACE"}},
		},
		{
			name: "every trait must match",
			filter: models.WaypointFilter{Traits: []models.WaypointTraitSymbol{
				models.WaypointTraitMarketplace, models.WaypointTraitShipyard,
			}},
			want:  []string{helpers.TestHomeWaypoint},
			query: url.Values{"page": {"1"}, "limit": {"10"}, "traits": {"MARKETPLACE", "SHIPYARD"}},
		},
		{
			name:   "type",
			filter: models.WaypointFilter{Type: models.WaypointTypeAsteroidField},
			want:   []string{helpers.TestAsteroidField},
			query:  url.Values{"page": {"1"}, "limit": {"10"}, "type": {"ASTEROID_FIELD"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			fake := helpers.NewFakeAPI(t)
			c := fake.Client()

			// Act
			outcome, err := c.Systems.ListWaypoints(context.Background(), helpers.TestSystem, tt.filter, client.DefaultPage, client.DefaultLimit)

			// Assert
			require.NoError(t, err)
			require.True(t, outcome.OK(), outcome.Message)
			var got []string
			for _, wp := range outcome.Value.Data {
				got = append(got, wp.Symbol)
			}
			assert.ElementsMatch(t, tt.want, got)
			assert.Equal(t, len(tt.want), outcome.Value.Meta.Total)

			req, _ := fake.LastRequest()
			assert.Equal(t, tt.query, req.Query)
		})
	}
}

func TestSystems_ListWaypoints_RejectsUnknownTrait(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()
	filter := models.WaypointFilter{Traits: []models.WaypointTraitSymbol{"SPACE_BAKERY"}}

	// Act
	_, err := c.Systems.ListWaypoints(context.Background(), helpers.TestSystem, filter, 1, 10)

	// Assert
	assert.ErrorIs(t, err, client.ErrInvalidParams)
	assert.Equal(t, 0, fake.Hits())
}

func TestSystems_Waypoint(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()

	// Act
	outcome, err := c.Systems.Waypoint(context.Background(), helpers.TestSystem, helpers.TestMoonWaypoint)

	// Assert
	require.NoError(t, err)
	require.True(t, outcome.OK())
	assert.Equal(t, models.WaypointTypeMoon, outcome.Value.Type)
	assert.Equal(t, 30, outcome.Value.X)
	assert.Equal(t, 40, outcome.Value.Y)
	assert.True(t, outcome.Value.HasTrait(models.WaypointTraitMarketplace))
}

func TestSystems_Market_PricesOnlyWithShipPresent(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()
	ctx := context.Background()

	// Act
	home, err := c.Systems.Market(ctx, helpers.TestSystem, helpers.TestHomeWaypoint)
	require.NoError(t, err)
	moon, err := c.Systems.Market(ctx, helpers.TestSystem, helpers.TestMoonWaypoint)
	require.NoError(t, err)

	// Assert
	require.True(t, home.OK(), home.Message)
	fuel, ok := home.Value.TradeGood(models.TradeSymbolFuel)
	require.True(t, ok)
	assert.Equal(t, 72, fuel.PurchasePrice)

	require.True(t, moon.OK(), moon.Message)
	assert.Empty(t, moon.Value.TradeGoods)
	assert.NotEmpty(t, moon.Value.Exchange)
}

func TestSystems_Market_NotFound(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()

	// Act
	outcome, err := c.Systems.Market(context.Background(), helpers.TestSystem, helpers.TestAsteroidField)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, outcome.Value)
	assert.Equal(t, "Market not found.", outcome.Message)
}

func TestSystems_Shipyard(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()
	ctx := context.Background()

	// Act
	found, err := c.Systems.Shipyard(ctx, helpers.TestSystem, helpers.TestHomeWaypoint)
	require.NoError(t, err)
	missing, err := c.Systems.Shipyard(ctx, helpers.TestSystem, helpers.TestMoonWaypoint)
	require.NoError(t, err)

	// Assert
	require.True(t, found.OK())
	assert.Len(t, found.Value.ShipTypes, 2)
	assert.Equal(t, client.KindNotFound, missing.Kind)
	assert.Equal(t, "Shipyard not found.", missing.Message)
}

func TestSystems_JumpGate(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	path := "/systems/X1-DF55/waypoints/X1-DF55-JG/jump-gate"
	fake.Respond("GET", path, 200, `{"data":{"symbol":"X1-DF55-JG","connections":["X1-AB12-JG","X1-CD34-JG"]}}`)
	c := fake.Client()

	// Act
	outcome, err := c.Systems.JumpGate(context.Background(), helpers.TestSystem, "X1-DF55-JG")

	// Assert
	require.NoError(t, err)
	require.True(t, outcome.OK())
	assert.Equal(t, []string{"X1-AB12-JG", "X1-CD34-JG"}, outcome.Value.Connections)
	assert.Equal(t, "Fetched jump gate at X1-DF55-JG.", outcome.Message)
}

func TestSystems_JumpGate_NotFound(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	fake.Respond("GET", "/systems/X1-DF55/waypoints/X1-DF55-A1/jump-gate", 404,
		`{"error":{"message":"Waypoint is not a jump gate","code":404}}`)
	c := fake.Client()

	// Act
	outcome, err := c.Systems.JumpGate(context.Background(), helpers.TestSystem, helpers.TestHomeWaypoint)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Jump gate not found.", outcome.Message)
}

func TestSystems_ConstructionAndSupply(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	base := "/systems/X1-DF55/waypoints/X1-DF55-JG/construction"
	fake.Respond("GET", base, 200, `{"data":{"symbol":"X1-DF55-JG","isComplete":false,
		"materials":[{"tradeSymbol":"FAB_MATS","required":1600,"fulfilled":0}]}}`)
	fake.Respond("POST", base+"/supply", 201, `{"data":{
		"construction":{"symbol":"X1-DF55-JG","isComplete":false,
			"materials":[{"tradeSymbol":"FAB_MATS","required":1600,"fulfilled":20}]},
		"cargo":{"capacity":40,"units":0,"inventory":[]}}}`)
	c := fake.Client()
	ctx := context.Background()

	// Act
	site, err := c.Systems.Construction(ctx, helpers.TestSystem, "X1-DF55-JG")
	require.NoError(t, err)
	supplied, err := c.Systems.SupplyConstruction(ctx, helpers.TestSystem, "X1-DF55-JG", models.SupplyConstructionRequest{
		ShipSymbol:  helpers.TestShipSymbol,
		TradeSymbol: models.TradeSymbolFabMats,
		Units:       20,
	})
	require.NoError(t, err)

	// Assert
	require.True(t, site.OK())
	assert.False(t, site.Value.IsComplete)
	assert.Equal(t, 1600, site.Value.Materials[0].Required)

	require.True(t, supplied.OK(), supplied.Message)
	assert.Equal(t, 201, supplied.StatusCode)
	assert.Equal(t, 20, supplied.Value.Construction.Materials[0].Fulfilled)
	assert.Equal(t, "Supplied 20 FAB_MATS to X1-DF55-JG.", supplied.Message)

	req, _ := fake.LastRequest()
	assert.Equal(t, "POST", req.Method)
	assert.JSONEq(t, `{"shipSymbol":"TEST-AGENT-1","tradeSymbol":"FAB_MATS","units":20}`, string(req.Body))
}

func TestSystems_SupplyConstruction_RejectsZeroUnits(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()

	// Act
	_, err := c.Systems.SupplyConstruction(context.Background(), helpers.TestSystem, "X1-DF55-JG", models.SupplyConstructionRequest{
		ShipSymbol:  helpers.TestShipSymbol,
		TradeSymbol: models.TradeSymbolFabMats,
	})

	// Assert
	var perr *client.ParamError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "units", perr.Fields[0].Field)
	assert.Equal(t, 0, fake.Hits())
}

func TestSystems_RejectsBadSymbols(t *testing.T) {
	// Arrange
	fake := helpers.NewFakeAPI(t)
	c := fake.Client()
	ctx := context.Background()

	// Act
	_, errGet := c.Systems.Get(ctx, "")
	_, errWaypoint := c.Systems.Waypoint(ctx, helpers.TestSystem, "X1/DF55")
	_, errMarket := c.Systems.Market(ctx, "X1 DF55", helpers.TestHomeWaypoint)

	// Assert
	assert.ErrorIs(t, errGet, client.ErrInvalidParams)
	assert.ErrorIs(t, errWaypoint, client.ErrInvalidParams)
	assert.ErrorIs(t, errMarket, client.ErrInvalidParams)
	assert.Equal(t, 0, fake.Hits())
}
