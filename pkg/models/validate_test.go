package models_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

// patch decodes a fixture into a generic map, applies edit and re-encodes it.
func patch(t *testing.T, fixture string, edit func(map[string]interface{})) []byte {
	t.Helper()
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(readFixture(t, fixture), &doc))
	edit(doc)
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return data
}

func nested(doc map[string]interface{}, keys ...string) map[string]interface{} {
	for _, k := range keys {
		doc = doc[k].(map[string]interface{})
	}
	return doc
}

func TestDecode_RejectsConstraintViolations(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		target  func() interface{}
		edit    func(map[string]interface{})
		field   string
	}{
		{
			name:    "credits above safe integer",
			fixture: "agent.json",
			target:  func() interface{} { return new(models.Agent) },
			edit:    func(d map[string]interface{}) { d["credits"] = json.Number("9007199254740992") },
			field:   "credits",
		},
		{
			name:    "credits below negative safe integer",
			fixture: "agent.json",
			target:  func() interface{} { return new(models.Agent) },
			edit:    func(d map[string]interface{}) { d["credits"] = json.Number("-9007199254740992") },
			field:   "credits",
		},
		{
			name:    "symbol with spaces",
			fixture: "agent.json",
			target:  func() interface{} { return new(models.Agent) },
			edit:    func(d map[string]interface{}) { d["symbol"] = "FEBA 66" },
			field:   "symbol",
		},
		{
			name:    "unknown contract type",
			fixture: "contract.json",
			target:  func() interface{} { return new(models.Contract) },
			edit:    func(d map[string]interface{}) { d["type"] = "BOUNTY" },
			field:   "type",
		},
		{
			name:    "unknown nav status",
			fixture: "ship.json",
			target:  func() interface{} { return new(models.Ship) },
			edit:    func(d map[string]interface{}) { nested(d, "nav")["status"] = "FLYING" },
			field:   "nav.status",
		},
		{
			name:    "frame condition above one",
			fixture: "ship.json",
			target:  func() interface{} { return new(models.Ship) },
			edit:    func(d map[string]interface{}) { nested(d, "frame")["condition"] = 1.5 },
			field:   "frame.condition",
		},
		{
			name:    "negative integrity",
			fixture: "ship.json",
			target:  func() interface{} { return new(models.Ship) },
			edit:    func(d map[string]interface{}) { nested(d, "engine")["integrity"] = -0.1 },
			field:   "engine.integrity",
		},
		{
			name:    "morale above hundred",
			fixture: "ship.json",
			target:  func() interface{} { return new(models.Ship) },
			edit:    func(d map[string]interface{}) { nested(d, "crew")["morale"] = 101 },
			field:   "crew.morale",
		},
		{
			name:    "missing arrival",
			fixture: "ship.json",
			target:  func() interface{} { return new(models.Ship) },
			edit:    func(d map[string]interface{}) { delete(nested(d, "nav", "route"), "arrival") },
			field:   "nav.route.arrival",
		},
		{
			name:    "survey without deposits",
			fixture: "survey.json",
			target:  func() interface{} { return new(models.Survey) },
			edit:    func(d map[string]interface{}) { d["deposits"] = []interface{}{} },
			field:   "deposits",
		},
		{
			name:    "unknown supply level",
			fixture: "market.json",
			target:  func() interface{} { return new(models.Market) },
			edit: func(d map[string]interface{}) {
				d["tradeGoods"].([]interface{})[0].(map[string]interface{})["supply"] = "PLENTY"
			},
			field: "tradeGoods[0].supply",
		},
		{
			name:    "zero trade volume",
			fixture: "market.json",
			target:  func() interface{} { return new(models.Market) },
			edit: func(d map[string]interface{}) {
				d["tradeGoods"].([]interface{})[1].(map[string]interface{})["tradeVolume"] = 0
			},
			field: "tradeGoods[1].tradeVolume",
		},
		{
			name:    "reset date not a date",
			fixture: "status.json",
			target:  func() interface{} { return new(models.Status) },
			edit:    func(d map[string]interface{}) { d["resetDate"] = "25/05/2025" },
			field:   "resetDate",
		},
		{
			name:    "link without url",
			fixture: "status.json",
			target:  func() interface{} { return new(models.Status) },
			edit: func(d map[string]interface{}) {
				d["links"].([]interface{})[0].(map[string]interface{})["url"] = "spacetraders"
			},
			field: "links[0].url",
		},
		{
			name:    "unknown faction trait",
			fixture: "faction.json",
			target:  func() interface{} { return new(models.Faction) },
			edit: func(d map[string]interface{}) {
				d["traits"].([]interface{})[0].(map[string]interface{})["symbol"] = "LAZY"
			},
			field: "traits[0].symbol",
		},
		{
			name:    "orbits a bad symbol",
			fixture: "waypoint.json",
			target:  func() interface{} { return new(models.Waypoint) },
			edit:    func(d map[string]interface{}) { d["orbits"] = "X1 MS9" },
			field:   "orbits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			data := patch(t, tt.fixture, tt.edit)

			// Act
			err := models.Decode(data, tt.target())

			// Assert
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(tt.field), "fields: %v", verr.Fields)
			assert.True(t, models.IsSchemaError(err))
		})
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated", `{"symbol":"FEBA66"`},
		{"wrong type", `{"symbol":"FEBA66","credits":"lots"}`},
		{"not an object", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := models.Decode([]byte(tt.data), new(models.Agent))

			// Assert
			var derr *models.DecodeError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, "Agent", derr.Type)
			assert.True(t, models.IsSchemaError(err))
		})
	}
}

func TestIsSchemaError_OtherErrors(t *testing.T) {
	assert.False(t, models.IsSchemaError(nil))
	assert.False(t, models.IsSchemaError(errors.New("connection reset")))
	assert.True(t, models.IsSchemaError(fmt.Errorf("failed to fetch agent: %w", &models.DecodeError{Type: "Agent", Err: errors.New("x")})))
}

func TestValidationError_Message(t *testing.T) {
	// Arrange
	data := patch(t, "agent.json", func(d map[string]interface{}) {
		d["symbol"] = ""
		d["shipCount"] = -1
	})

	// Act
	err := models.Decode(data, new(models.Agent))

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Agent: ")
	assert.Contains(t, err.Error(), "symbol failed required")
	assert.Contains(t, err.Error(), "shipCount failed gte=0")
}

func TestPage_Check(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		ok    bool
	}{
		{
			name: "within limit",
			body: `{"data":[{"symbol":"COSMIC","name":"Cosmic","description":"","headquarters":"","traits":[],"isRecruiting":true}],
				"meta":{"total":19,"page":1,"limit":1}}`,
			ok: true,
		},
		{
			name: "empty last page",
			body: `{"data":[],"meta":{"total":19,"page":5,"limit":10}}`,
			ok:   true,
		},
		{
			name: "more items than limit",
			body: `{"data":[
				{"symbol":"COSMIC","name":"Cosmic","description":"","headquarters":"","traits":[],"isRecruiting":true},
				{"symbol":"VOID","name":"Void","description":"","headquarters":"","traits":[],"isRecruiting":true}],
				"meta":{"total":19,"page":1,"limit":1}}`,
			field: "",
		},
		{
			name:  "limit above twenty",
			body:  `{"data":[],"meta":{"total":0,"page":1,"limit":21}}`,
			field: "meta.limit",
		},
		{
			name:  "page zero",
			body:  `{"data":[],"meta":{"total":0,"page":0,"limit":10}}`,
			field: "meta.page",
		},
		{
			name:  "invalid item",
			body:  `{"data":[{"symbol":"NOBODY","name":"Nobody","description":"","headquarters":"","traits":[],"isRecruiting":false}],"meta":{"total":1,"page":1,"limit":10}}`,
			field: "data[0].symbol",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			var page models.Page[models.Faction]
			err := models.Decode([]byte(tt.body), &page)

			// Assert
			if tt.ok {
				require.NoError(t, err)
				assert.LessOrEqual(t, len(page.Data), page.Meta.Limit)
				return
			}
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "Page", verr.Type)
			assert.True(t, verr.Has(tt.field), "fields: %v", verr.Fields)
		})
	}
}

func TestCheckSymbol(t *testing.T) {
	valid := []string{"X1-DF55", "X1-DF55-A1", "FEBA66-1", "clx_contract_1", "abc"}
	invalid := []string{"", "X1 DF55", "X1/DF55", "X1.DF55", "ship!", "ünïcode"}

	for _, s := range valid {
		assert.NoError(t, models.CheckSymbol(s), s)
	}
	for _, s := range invalid {
		assert.Error(t, models.CheckSymbol(s), s)
	}
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, models.FlightModeBurn.Valid())
	assert.False(t, models.FlightMode("WARP").Valid())
	assert.True(t, models.NavStatusDocked.Valid())
	assert.False(t, models.NavStatus("").Valid())
	assert.True(t, models.ShipTypeMiningDrone.Valid())
	assert.True(t, models.TradeSymbolFabMats.Valid())
	assert.False(t, models.TradeSymbol("iron_ore").Valid())
	assert.True(t, models.WaypointTraitMarketplace.Valid())
	assert.True(t, models.FactionEthereal.Valid())
}

func TestValidate_Requests(t *testing.T) {
	tests := []struct {
		name string
		req  interface{}
		ok   bool
	}{
		{"navigate", models.NavigateRequest{WaypointSymbol: "X1-DF55-B2"}, true},
		{"navigate without waypoint", models.NavigateRequest{}, false},
		{"refuel fill", models.RefuelRequest{}, true},
		{"refuel negative", models.RefuelRequest{Units: -1}, false},
		{"cargo", models.CargoRequest{Symbol: models.TradeSymbolIronOre, Units: 1}, true},
		{"cargo zero units", models.CargoRequest{Symbol: models.TradeSymbolIronOre}, false},
		{"cargo unknown good", models.CargoRequest{Symbol: "SPICE", Units: 1}, false},
		{"pagination", models.Pagination{Page: 1, Limit: 20}, true},
		{"pagination limit 21", models.Pagination{Page: 1, Limit: 21}, false},
		{"pagination page 0", models.Pagination{Page: 0, Limit: 10}, false},
		{"filter", models.WaypointFilter{Type: models.WaypointTypeMoon}, true},
		{"filter unknown type", models.WaypointFilter{Type: "COMET"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := models.Validate(tt.req)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
