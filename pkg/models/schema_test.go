package models_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
	"github.com/andrescamacho/spacetraders-sdk/test/helpers"
)

const schemaBase = "https://spacetraders.schemas.local/"

// compileSchemas loads every schema under testdata/schema so relative
// references between them resolve.
func compileSchemas(t *testing.T) map[string]*jsonschema.Schema {
	t.Helper()
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	c.AssertFormat = true

	files, err := filepath.Glob(filepath.Join("testdata", "schema", "*.schema.json"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, file := range files {
		data, err := os.ReadFile(file)
		require.NoError(t, err)
		require.NoError(t, c.AddResource(schemaBase+filepath.Base(file), bytes.NewReader(data)))
	}

	schemas := map[string]*jsonschema.Schema{}
	for _, name := range []string{"agent", "contract", "ship", "survey", "page"} {
		schema, err := c.Compile(schemaBase + name + ".schema.json")
		require.NoError(t, err, name)
		schemas[name] = schema
	}
	return schemas
}

// document decodes data the way the validator expects it: numbers stay
// json.Number so large integers are compared exactly.
func document(t *testing.T, data []byte) interface{} {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	require.NoError(t, dec.Decode(&doc))
	return doc
}

func toDocument(t *testing.T, v interface{}) interface{} {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return document(t, data)
}

func TestWireContract_EncodedModelsMatchSchema(t *testing.T) {
	schemas := compileSchemas(t)

	decodeFixture := func(name string, v interface{}) interface{} {
		require.NoError(t, models.Decode(readFixture(t, name), v))
		return v
	}

	tests := []struct {
		name   string
		schema string
		value  interface{}
	}{
		{"agent fixture", "agent", decodeFixture("agent.json", new(models.Agent))},
		{"contract fixture", "contract", decodeFixture("contract.json", new(models.Contract))},
		{"ship fixture", "ship", decodeFixture("ship.json", new(models.Ship))},
		{"survey fixture", "survey", decodeFixture("survey.json", new(models.Survey))},
		{"agent page fixture", "page", decodeFixture("page_agents.json", new(models.Page[models.Agent]))},
		{"test agent", "agent", helpers.CreateTestAgent("TEST-AGENT", 175000)},
		{"test contract", "contract", helpers.CreateTestContract("clx-contract-9")},
		{"test ship", "ship", helpers.CreateTestShip("TEST-AGENT-3", "X1-DF55-B2", models.NavStatusInOrbit)},
		{"page", "page", models.Page[models.Agent]{
			Data: []models.Agent{helpers.CreateTestAgent("A", 1), helpers.CreateTestAgent("B", 2)},
			Meta: models.Meta{Total: 2, Page: 1, Limit: 20},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := schemas[tt.schema].Validate(toDocument(t, tt.value))

			// Assert
			assert.NoError(t, err)
		})
	}
}

// Documents the schema rejects must also be rejected by Decode.
func TestWireContract_SchemaAndValidatorAgree(t *testing.T) {
	schemas := compileSchemas(t)

	tests := []struct {
		name    string
		schema  string
		fixture string
		target  func() interface{}
		edit    func(map[string]interface{})
	}{
		{
			name:    "credits overflow",
			schema:  "agent",
			fixture: "agent.json",
			target:  func() interface{} { return new(models.Agent) },
			edit:    func(d map[string]interface{}) { d["credits"] = json.Number("9007199254740992") },
		},
		{
			name:    "symbol pattern",
			schema:  "agent",
			fixture: "agent.json",
			target:  func() interface{} { return new(models.Agent) },
			edit:    func(d map[string]interface{}) { d["headquarters"] = "X1 MS9" },
		},
		{
			name:    "contract type",
			schema:  "contract",
			fixture: "contract.json",
			target:  func() interface{} { return new(models.Contract) },
			edit:    func(d map[string]interface{}) { d["type"] = "BOUNTY" },
		},
		{
			name:    "morale",
			schema:  "ship",
			fixture: "ship.json",
			target:  func() interface{} { return new(models.Ship) },
			edit:    func(d map[string]interface{}) { nested(d, "crew")["morale"] = 150 },
		},
		{
			name:    "condition",
			schema:  "ship",
			fixture: "ship.json",
			target:  func() interface{} { return new(models.Ship) },
			edit:    func(d map[string]interface{}) { nested(d, "reactor")["condition"] = 2 },
		},
		{
			name:    "empty survey",
			schema:  "survey",
			fixture: "survey.json",
			target:  func() interface{} { return new(models.Survey) },
			edit:    func(d map[string]interface{}) { d["deposits"] = []interface{}{} },
		},
		{
			name:    "survey size",
			schema:  "survey",
			fixture: "survey.json",
			target:  func() interface{} { return new(models.Survey) },
			edit:    func(d map[string]interface{}) { d["size"] = "HUGE" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			data := patch(t, tt.fixture, tt.edit)
			doc := document(t, data)

			// Act
			schemaErr := schemas[tt.schema].Validate(doc)
			decodeErr := models.Decode(data, tt.target())

			// Assert
			assert.Error(t, schemaErr)
			assert.Error(t, decodeErr)
			assert.True(t, models.IsSchemaError(decodeErr))
		})
	}
}
