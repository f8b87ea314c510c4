package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/andrescamacho/spacetraders-sdk/pkg/client"
	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

const (
	TestToken         = "test-token"
	TestAgentSymbol   = "TEST-AGENT"
	TestShipSymbol    = "TEST-AGENT-1"
	TestContractID    = "clx-contract-1"
	TestSystem        = "X1-DF55"
	TestHomeWaypoint  = "X1-DF55-A1"
	TestMoonWaypoint  = "X1-DF55-B2"
	TestAsteroidField = "X1-DF55-C3"
)

const (
	shipPrice        = 50000
	cooldownSeconds  = 70
	extractionYield  = 10
	fuelPerCargoUnit = 100
)

// RecordedRequest is one request received by a FakeAPI
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type cannedResponse struct {
	status int
	body   string
}

// FakeAPI is an in-memory SpaceTraders API served over httptest. It keeps
// enough game state for agent, contract, ship and market round trips; other
// responses can be scripted with Respond.
type FakeAPI struct {
	t      *testing.T
	server *httptest.Server
	mux    *http.ServeMux

	mu sync.Mutex
	now       func() time.Time
	status    models.Status
	agent     models.Agent
	agents    map[string]models.Agent
	ships     map[string]*models.Ship
	contracts map[string]*models.Contract
	factions  map[models.FactionSymbol]models.Faction
	systems   map[string]models.System
	waypoints map[string]models.Waypoint
	markets   map[string]models.Market
	canned    map[string]cannedResponse
	requests  []RecordedRequest
	surveys   int
}

// NewFakeAPI starts a fake API seeded with one agent, one docked ship at its
// headquarters, one open contract and a three-waypoint system. The server is
// closed when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := StartFakeAPI()
	f.t = t
	t.Cleanup(f.Close)
	return f
}

// StartFakeAPI starts a seeded fake API outside of a *testing.T, for godog
// scenarios. Callers must Close it.
func StartFakeAPI() *FakeAPI {
	home := CreateTestWaypoint(TestHomeWaypoint, models.WaypointTypePlanet, 0, 0,
		models.WaypointTraitMarketplace, models.WaypointTraitShipyard)
	moon := CreateTestWaypoint(TestMoonWaypoint, models.WaypointTypeMoon, 30, 40,
		models.WaypointTraitMarketplace)
	field := CreateTestWaypoint(TestAsteroidField, models.WaypointTypeAsteroidField, -60, 80)

	ship := CreateTestShip(TestShipSymbol, TestHomeWaypoint, models.NavStatusDocked)
	contract := CreateTestContract(TestContractID)
	agent := CreateTestAgent(TestAgentSymbol, 100000)

	f := &FakeAPI{
		mux:       http.NewServeMux(),
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Second) },
		status:    CreateTestStatus(),
		agent:     agent,
		agents:    map[string]models.Agent{},
		ships:     map[string]*models.Ship{ship.Symbol: &ship},
		contracts: map[string]*models.Contract{contract.ID: &contract},
		factions:  map[models.FactionSymbol]models.Faction{
			models.FactionCosmic: CreateTestFaction(models.FactionCosmic),
			models.FactionVoid:   CreateTestFaction(models.FactionVoid),
		},
		systems:   map[string]models.System{TestSystem: CreateTestSystem(TestSystem, home, moon, field)},
		waypoints: map[string]models.Waypoint{
			home.Symbol:  home,
			moon.Symbol:  moon,
			field.Symbol: field,
		},
		markets: map[string]models.Market{
			home.Symbol: CreateTestMarket(home.Symbol),
			moon.Symbol: CreateTestMarket(moon.Symbol),
		},
		canned: map[string]cannedResponse{},
	}
	f.routes()
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

// Close shuts the server down
func (f *FakeAPI) Close() {
	f.server.Close()
}

// URL is the base URL clients should use
func (f *FakeAPI) URL() string {
	return f.server.URL
}

// Client builds a client for this fake authenticated with TestToken.
// It must only be used on fakes created with NewFakeAPI.
func (f *FakeAPI) Client(opts ...client.Option) *client.Client {
	f.t.Helper()
	c, err := f.NewClient(opts...)
	if err != nil {
		f.t.Fatalf("failed to create client: %v", err)
	}
	return c
}

// NewClient builds a client for this fake authenticated with TestToken
func (f *FakeAPI) NewClient(opts ...client.Option) (*client.Client, error) {
	return client.New(f.URL(), TestToken, opts...)
}

// Respond scripts the response to every request for method and path,
// bypassing the simulated game state.
func (f *FakeAPI) Respond(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.canned[method+" "+path] = cannedResponse{status: status, body: body}
}

// Hits is the number of requests received so far
func (f *FakeAPI) Hits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// Requests returns a copy of every request received so far
func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordedRequest(nil), f.requests...)
}

// LastRequest returns the most recent request
func (f *FakeAPI) LastRequest() (RecordedRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return RecordedRequest{}, false
	}
	return f.requests[len(f.requests)-1], true
}

// SetNow fixes the fake's clock
func (f *FakeAPI) SetNow(now func() time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = now
}

// SetAgent replaces the caller's agent
func (f *FakeAPI) SetAgent(agent models.Agent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.agent = agent
}

// Agent returns the caller's agent
func (f *FakeAPI) Agent() models.Agent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.agent
}

// AddAgent registers another public agent
func (f *FakeAPI) AddAgent(agent models.Agent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.agents[agent.Symbol] = agent
}

// AddShip adds or replaces one of the caller's ships
func (f *FakeAPI) AddShip(ship models.Ship) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ships[ship.Symbol] = &ship
}

// Ship returns a copy of the ship's current state
func (f *FakeAPI) Ship(symbol string) (models.Ship, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ship, ok := f.ships[symbol]
	if !ok {
		return models.Ship{}, false
	}
	return *ship, true
}

// Arrive completes the ship's current route
func (f *FakeAPI) Arrive(symbol string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ship, ok := f.ships[symbol]; ok && ship.Nav.Status == models.NavStatusInTransit {
		ship.Nav.Status = models.NavStatusInOrbit
	}
}

// AddContract adds or replaces a contract
func (f *FakeAPI) AddContract(contract models.Contract) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contracts[contract.ID] = &contract
}

// Contract returns a copy of the contract's current state
func (f *FakeAPI) Contract(id string) (models.Contract, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contracts[id]
	if !ok {
		return models.Contract{}, false
	}
	return *c, true
}

// AddWaypoint adds a waypoint to its system
func (f *FakeAPI) AddWaypoint(wp models.Waypoint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waypoints[wp.Symbol] = wp
	system, ok := f.systems[wp.SystemSymbol]
	if !ok {
		system = CreateTestSystem(wp.SystemSymbol)
	}
	system.Waypoints = append(system.Waypoints, models.SystemWaypoint{
		Symbol: wp.Symbol, Type: wp.Type, X: wp.X, Y: wp.Y, Orbitals: wp.Orbitals,
	})
	f.systems[wp.SystemSymbol] = system
}

// SetMarket adds or replaces the market at a waypoint
func (f *FakeAPI) SetMarket(market models.Market) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markets[market.Symbol] = market
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body.Close()

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	canned, ok := f.canned[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(canned.status)
		_, _ = io.WriteString(w, canned.body)
		return
	}

	if r.URL.Path != "/" && r.Header.Get("Authorization") != "Bearer "+TestToken {
		writeError(w, http.StatusUnauthorized, 4100, "Missing or invalid bearer token")
		return
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	f.mux.ServeHTTP(w, r)
}

func (f *FakeAPI) routes() {
	f.mux.HandleFunc("GET /{$}", f.getStatus)

	f.mux.HandleFunc("GET /my/agent", f.getMyAgent)
	f.mux.HandleFunc("GET /agents", f.listAgents)
	f.mux.HandleFunc("GET /agents/{agentSymbol}", f.getAgent)

	f.mux.HandleFunc("GET /my/contracts", f.listContracts)
	f.mux.HandleFunc("GET /my/contracts/{contractID}", f.getContract)
	f.mux.HandleFunc("POST /my/contracts/{contractID}/accept", f.acceptContract)
	f.mux.HandleFunc("POST /my/contracts/{contractID}/deliver", f.deliverContract)
	f.mux.HandleFunc("POST /my/contracts/{contractID}/fulfill", f.fulfillContract)

	f.mux.HandleFunc("GET /factions", f.listFactions)
	f.mux.HandleFunc("GET /factions/{factionSymbol}", f.getFaction)

	f.mux.HandleFunc("GET /my/ships", f.listShips)
	f.mux.HandleFunc("POST /my/ships", f.purchaseShip)
	f.mux.HandleFunc("GET /my/ships/{shipSymbol}", f.getShip)
	f.mux.HandleFunc("GET /my/ships/{shipSymbol}/cargo", f.getCargo)
	f.mux.HandleFunc("POST /my/ships/{shipSymbol}/orbit", f.orbit)
	f.mux.HandleFunc("POST /my/ships/{shipSymbol}/dock", f.dock)
	f.mux.HandleFunc("POST /my/ships/{shipSymbol}/navigate", f.navigate)
	f.mux.HandleFunc("PATCH /my/ships/{shipSymbol}/nav", f.setFlightMode)
	f.mux.HandleFunc("POST /my/ships/{shipSymbol}/refuel", f.refuel)
	f.mux.HandleFunc("POST /my/ships/{shipSymbol}/extract", f.extract)
	f.mux.HandleFunc("POST /my/ships/{shipSymbol}/extract/survey", f.extractWithSurvey)
	f.mux.HandleFunc("POST /my/ships/{shipSymbol}/survey", f.survey)
	f.mux.HandleFunc("POST /my/ships/{shipSymbol}/sell", f.sell)
	f.mux.HandleFunc("POST /my/ships/{shipSymbol}/purchase", f.purchase)
	f.mux.HandleFunc("POST /my/ships/{shipSymbol}/jettison", f.jettison)
	f.mux.HandleFunc("POST /my/ships/{shipSymbol}/negotiate/contract", f.negotiateContract)

	f.mux.HandleFunc("GET /systems", f.listSystems)
	f.mux.HandleFunc("GET /systems/{systemSymbol}", f.getSystem)
	f.mux.HandleFunc("GET /systems/{systemSymbol}/waypoints", f.listWaypoints)
	f.mux.HandleFunc("GET /systems/{systemSymbol}/waypoints/{waypointSymbol}", f.getWaypoint)
	f.mux.HandleFunc("GET /systems/{systemSymbol}/waypoints/{waypointSymbol}/market", f.getMarket)
	f.mux.HandleFunc("GET /systems/{systemSymbol}/waypoints/{waypointSymbol}/shipyard", f.getShipyard)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, map[string]interface{}{"data": data})
}

func writeError(w http.ResponseWriter, status, code int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": models.APIError{Message: message, Code: code},
	})
}

// writePage slices items by the page and limit query parameters
func writePage[T any](w http.ResponseWriter, r *http.Request, items []T) {
	page, limit := client.DefaultPage, client.DefaultLimit
	if v := r.URL.Query().Get("page"); v != "" {
		page = atoi(v)
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit = atoi(v)
	}
	if page < 1 || limit < 1 || limit > 20 {
		writeError(w, http.StatusUnprocessableEntity, 422, "Invalid pagination parameters")
		return
	}

	start := (page - 1) * limit
	if start > len(items) {
		start = len(items)
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": append([]T{}, items[start:end]...),
		"meta": models.Meta{Total: len(items), Page: page, Limit: limit},
	})
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusUnprocessableEntity, 422, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
