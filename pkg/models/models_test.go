package models_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

// roundTrip decodes a fixture into a fresh T and marshals it back.
func roundTrip[T any](t *testing.T, data []byte) []byte {
	t.Helper()
	var v T
	require.NoError(t, models.Decode(data, &v))
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return out
}

func TestFixtures_RoundTrip(t *testing.T) {
	tests := []struct {
		fixture string
		trip    func(*testing.T, []byte) []byte
	}{
		{"agent.json", roundTrip[models.Agent]},
		{"contract.json", roundTrip[models.Contract]},
		{"faction.json", roundTrip[models.Faction]},
		{"ship.json", roundTrip[models.Ship]},
		{"system.json", roundTrip[models.System]},
		{"waypoint.json", roundTrip[models.Waypoint]},
		{"market.json", roundTrip[models.Market]},
		{"status.json", roundTrip[models.Status]},
		{"survey.json", roundTrip[models.Survey]},
		{"waypoint_bare.json", roundTrip[models.Waypoint]},
		{"shipyard.json", roundTrip[models.Shipyard]},
		{"jump_gate.json", roundTrip[models.JumpGate]},
		{"construction.json", roundTrip[models.Construction]},
		{"construction_supply.json", roundTrip[models.ConstructionSupply]},
		{"page_agents.json", roundTrip[models.Page[models.Agent]]},
		{"page_empty.json", roundTrip[models.Page[models.Ship]]},
		{"navigation.json", roundTrip[models.Navigation]},
		{"refuel.json", roundTrip[models.Refuel]},
		{"cargo_trade.json", roundTrip[models.CargoTrade]},
		{"extraction.json", roundTrip[models.ExtractionResult]},
		{"survey_result.json", roundTrip[models.SurveyResult]},
		{"contract_agent.json", roundTrip[models.ContractAgent]},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			// Arrange
			data := readFixture(t, tt.fixture)

			// Act
			out := tt.trip(t, data)

			// Assert
			assert.JSONEq(t, string(data), string(out))
		})
	}
}

// Lists and counts the API sends empty or zero must be written back as sent,
// and fields it leaves out must stay out.
func TestRoundTrip_PreservesEmptyListsAndZeroCounts(t *testing.T) {
	tests := []struct {
		name string
		data string
		trip func(*testing.T, []byte) []byte
	}{
		{
			name: "waypoint without modifiers",
			data: `{"symbol":"X1-MS9-A9","type":"ASTEROID","systemSymbol":"X1-MS9","x":1,"y":2,
				"orbitals":[],"traits":[],"modifiers":[],"isUnderConstruction":false}`,
			trip: roundTrip[models.Waypoint],
		},
		{
			name: "requirements with zero crew",
			data: `{"power":1,"crew":0,"slots":1}`,
			trip: roundTrip[models.ShipRequirements],
		},
		{
			name: "requirements with nothing sent",
			data: `{}`,
			trip: roundTrip[models.ShipRequirements],
		},
		{
			name: "mount with zero strength and no deposits",
			data: `{"symbol":"MOUNT_SURVEYOR_I","name":"Surveyor I","strength":0,"deposits":[],"requirements":{"crew":0}}`,
			trip: roundTrip[models.ShipMount],
		},
		{
			name: "module with zero capacity and range",
			data: `{"symbol":"MODULE_CREW_QUARTERS_I","capacity":0,"range":0,"name":"Crew Quarters","description":"","requirements":{"power":1,"crew":2,"slots":1}}`,
			trip: roundTrip[models.ShipModule],
		},
		{
			name: "market with empty prices",
			data: `{"symbol":"X1-MS9-A2","exports":[],"imports":[],"exchange":[],"transactions":[],"tradeGoods":[]}`,
			trip: roundTrip[models.Market],
		},
		{
			name: "market seen from afar",
			data: `{"symbol":"X1-MS9-A2","exports":[],"imports":[],"exchange":[]}`,
			trip: roundTrip[models.Market],
		},
		{
			name: "shipyard with no ships",
			data: `{"symbol":"X1-MS9-A2","shipTypes":[],"transactions":[],"ships":[],"modificationsFee":0}`,
			trip: roundTrip[models.Shipyard],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			out := tt.trip(t, []byte(tt.data))

			// Assert
			assert.JSONEq(t, tt.data, string(out))
		})
	}
}

func TestShipRequirements_DistinguishesZeroFromAbsent(t *testing.T) {
	// Arrange
	var req models.ShipRequirements

	// Act
	err := models.Decode([]byte(`{"power":3,"crew":0}`), &req)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, req.Crew)
	assert.Equal(t, 0, *req.Crew)
	assert.Equal(t, 3, *req.Power)
	assert.Nil(t, req.Slots)
}

func TestShip_DecodesNestedState(t *testing.T) {
	// Arrange
	data := readFixture(t, "ship.json")

	// Act
	var ship models.Ship
	err := models.Decode(data, &ship)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.NavStatusInTransit, ship.Nav.Status)
	assert.Equal(t, 49.0, ship.Nav.Route.Duration().Seconds())
	assert.Equal(t, 28, ship.Cargo.Available())
	assert.Equal(t, 12, ship.Cargo.UnitsOf(models.TradeSymbolIronOre))
	assert.Equal(t, 0, ship.Cargo.UnitsOf(models.TradeSymbolFuel))
	assert.True(t, ship.Cooldown.Active())
	require.NotNil(t, ship.Fuel.Consumed)
	assert.Equal(t, 50, ship.Fuel.Consumed.Amount)
	assert.Equal(t, []models.DepositSymbol{models.DepositIronOre, models.DepositCopperOre}, ship.Mounts[1].Deposits)
}

func TestShipNav_DefaultsFlightModeToCruise(t *testing.T) {
	// Arrange
	data := []byte(`{"systemSymbol":"X1-MS9","waypointSymbol":"X1-MS9-A1","status":"DOCKED",
		"route":{"destination":{"symbol":"X1-MS9-A1","type":"PLANET","systemSymbol":"X1-MS9","x":0,"y":0},
		"origin":{"symbol":"X1-MS9-A1","type":"PLANET","systemSymbol":"X1-MS9","x":0,"y":0},
		"departureTime":"2025-06-01T12:00:00Z","arrival":"2025-06-01T12:00:00Z"}}`)

	// Act
	var nav models.ShipNav
	err := models.Decode(data, &nav)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.FlightModeCruise, nav.FlightMode)
}

func TestShipCrew_DefaultsRotationToStrict(t *testing.T) {
	// Arrange
	data := []byte(`{"current":0,"required":0,"capacity":0,"morale":50,"wages":0}`)

	// Act
	var crew models.ShipCrew
	err := models.Decode(data, &crew)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.CrewRotationStrict, crew.Rotation)
}

func TestMarket_TradeGood(t *testing.T) {
	// Arrange
	var market models.Market
	require.NoError(t, models.Decode(readFixture(t, "market.json"), &market))

	// Act
	ore, found := market.TradeGood(models.TradeSymbolIronOre)
	_, missing := market.TradeGood(models.TradeSymbolDiamonds)

	// Assert
	assert.True(t, found)
	assert.Equal(t, models.ActivityWeak, ore.Activity)
	assert.Equal(t, 60, ore.TradeVolume)
	assert.False(t, missing)
}

func TestMarket_WithoutLivePricesIsValid(t *testing.T) {
	// Arrange
	data := []byte(`{"symbol":"X1-MS9-A2","exports":[],"imports":[],"exchange":[]}`)

	// Act
	var market models.Market
	err := models.Decode(data, &market)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, market.TradeGoods)
	assert.Nil(t, market.Transactions)
}

func TestWaypoint_HasTrait(t *testing.T) {
	// Arrange
	var wp models.Waypoint
	require.NoError(t, models.Decode(readFixture(t, "waypoint.json"), &wp))

	// Act & Assert
	assert.True(t, wp.HasTrait(models.WaypointTraitShipyard))
	assert.False(t, wp.HasTrait(models.WaypointTraitUncharted))
	require.NotNil(t, wp.Orbits)
	assert.Equal(t, "X1-MS9-A1", *wp.Orbits)
}

func TestContractDeliver_Remaining(t *testing.T) {
	// Arrange
	var contract models.Contract
	require.NoError(t, models.Decode(readFixture(t, "contract.json"), &contract))

	// Act
	remaining := contract.Terms.Deliver[0].Remaining()

	// Assert
	assert.Equal(t, 28, remaining)
}

func TestSurvey_Expired(t *testing.T) {
	// Arrange
	var survey models.Survey
	require.NoError(t, models.Decode(readFixture(t, "survey.json"), &survey))

	// Act & Assert
	assert.False(t, survey.Expired(survey.Expiration.Add(-1)))
	assert.True(t, survey.Expired(survey.Expiration))
	assert.True(t, survey.Expired(survey.Expiration.Add(1)))
}

func TestParseAPIError(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *models.APIError
	}{
		{
			name: "error object",
			body: `{"error":{"message":"Ship is on cooldown","code":4000,"data":{"cooldown":{"remainingSeconds":12}}}}`,
			want: &models.APIError{
				Message: "Ship is on cooldown",
				Code:    4000,
				Data:    json.RawMessage(`{"cooldown":{"remainingSeconds":12}}`),
			},
		},
		{name: "no error key", body: `{"data":{}}`},
		{name: "empty error", body: `{"error":{}}`},
		{name: "not json", body: `<html>Bad Gateway</html>`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got := models.ParseAPIError([]byte(tt.body))

			// Assert
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSystemSymbolOf(t *testing.T) {
	tests := []struct {
		waypoint string
		want     string
	}{
		{"X1-DF55-A1", "X1-DF55"},
		{"X1-DF55-JG", "X1-DF55"},
		{"X1-DF55", "X1-DF55"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.waypoint, func(t *testing.T) {
			assert.Equal(t, tt.want, models.SystemSymbolOf(tt.waypoint))
		})
	}
}
