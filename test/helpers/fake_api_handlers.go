package helpers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

// Error codes follow the public API where the fake models the same failure.
const (
	codeNotFound           = 404
	codeShipInTransit      = 4214
	codeShipNotInOrbit     = 4236
	codeShipNotDocked      = 4244
	codeAlreadyAtWaypoint  = 4204
	codeInsufficientFuel   = 4203
	codeCooldown           = 4000
	codeCargoFull          = 4228
	codeInsufficientCargo  = 4219
	codeSurveyMismatch     = 4221
	codeInsufficientFunds  = 4600
	codeMarketMissingGood  = 4602
	codeContractAccepted   = 4501
	codeContractIncomplete = 4502
	codeContractNotOpen    = 4503
)

func (f *FakeAPI) getStatus(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeData(w, http.StatusOK, f.status)
}

// Agents

func (f *FakeAPI) getMyAgent(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeData(w, http.StatusOK, f.agent)
}

func (f *FakeAPI) publicAgents() map[string]models.Agent {
	all := map[string]models.Agent{}
	for symbol, agent := range f.agents {
		all[symbol] = agent
	}
	own := f.agent
	own.AccountID = nil
	all[own.Symbol] = own
	return all
}

func (f *FakeAPI) listAgents(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.publicAgents()
	items := make([]models.Agent, 0, len(all))
	for _, symbol := range sortedKeys(all) {
		items = append(items, all[symbol])
	}
	writePage(w, r, items)
}

func (f *FakeAPI) getAgent(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	agent, ok := f.publicAgents()[r.PathValue("agentSymbol")]
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "Agent not found")
		return
	}
	writeData(w, http.StatusOK, agent)
}

// Contracts

func (f *FakeAPI) contractOr404(w http.ResponseWriter, r *http.Request) (*models.Contract, bool) {
	contract, ok := f.contracts[r.PathValue("contractID")]
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "Contract not found")
	}
	return contract, ok
}

func (f *FakeAPI) listContracts(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]models.Contract, 0, len(f.contracts))
	for _, id := range sortedKeys(f.contracts) {
		items = append(items, *f.contracts[id])
	}
	writePage(w, r, items)
}

func (f *FakeAPI) getContract(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if contract, ok := f.contractOr404(w, r); ok {
		writeData(w, http.StatusOK, contract)
	}
}

func (f *FakeAPI) acceptContract(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	contract, ok := f.contractOr404(w, r)
	if !ok {
		return
	}
	if contract.Accepted {
		writeError(w, http.StatusBadRequest, codeContractAccepted, "Contract has already been accepted")
		return
	}
	contract.Accepted = true
	f.agent.Credits += int64(contract.Terms.Payment.OnAccepted)
	writeData(w, http.StatusOK, models.ContractAgent{Agent: f.agent, Contract: *contract})
}

func (f *FakeAPI) deliverContract(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	contract, ok := f.contractOr404(w, r)
	if !ok {
		return
	}
	var req models.DeliverContractRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !contract.Accepted || contract.Fulfilled {
		writeError(w, http.StatusBadRequest, codeContractNotOpen, "Contract is not accepted or already fulfilled")
		return
	}
	ship, ok := f.ships[req.ShipSymbol]
	if !ok {
		writeError(w, http.StatusBadRequest, codeNotFound, "Ship not found")
		return
	}

	for i := range contract.Terms.Deliver {
		term := &contract.Terms.Deliver[i]
		if term.TradeSymbol != string(req.TradeSymbol) {
			continue
		}
		if ship.Nav.WaypointSymbol != term.DestinationSymbol || ship.Nav.Status != models.NavStatusDocked {
			writeError(w, http.StatusBadRequest, codeShipNotDocked, "Ship must be docked at the delivery destination")
			return
		}
		units := req.Units
		if units > term.Remaining() {
			units = term.Remaining()
		}
		if !removeCargo(&ship.Cargo, req.TradeSymbol, units) {
			writeError(w, http.StatusBadRequest, codeInsufficientCargo, "Ship does not have enough cargo to deliver")
			return
		}
		term.UnitsFulfilled += units
		writeData(w, http.StatusOK, models.ContractDelivery{Contract: *contract, Cargo: ship.Cargo})
		return
	}
	writeError(w, http.StatusBadRequest, codeMarketMissingGood, "Contract does not require "+string(req.TradeSymbol))
}

func (f *FakeAPI) fulfillContract(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	contract, ok := f.contractOr404(w, r)
	if !ok {
		return
	}
	if !contract.Accepted || contract.Fulfilled {
		writeError(w, http.StatusBadRequest, codeContractNotOpen, "Contract is not accepted or already fulfilled")
		return
	}
	for _, term := range contract.Terms.Deliver {
		if term.Remaining() > 0 {
			writeError(w, http.StatusBadRequest, codeContractIncomplete, "Contract delivery terms have not been met")
			return
		}
	}
	contract.Fulfilled = true
	f.agent.Credits += int64(contract.Terms.Payment.OnFulfilled)
	writeData(w, http.StatusOK, models.ContractAgent{Agent: f.agent, Contract: *contract})
}

func (f *FakeAPI) negotiateContract(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ship, ok := f.shipOr404(w, r)
	if !ok {
		return
	}
	if ship.Nav.Status != models.NavStatusDocked {
		writeError(w, http.StatusBadRequest, codeShipNotDocked, "Ship must be docked to negotiate a contract")
		return
	}
	contract := CreateTestContract(fmt.Sprintf("negotiated-%d", len(f.contracts)+1))
	contract.DeadlineToAccept = f.now().Add(24 * time.Hour)
	f.contracts[contract.ID] = &contract
	writeData(w, http.StatusCreated, models.ContractNegotiation{Contract: contract})
}

// Factions

func (f *FakeAPI) listFactions(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]models.Faction, 0, len(f.factions))
	for _, symbol := range sortedKeys(f.factions) {
		items = append(items, f.factions[symbol])
	}
	writePage(w, r, items)
}

func (f *FakeAPI) getFaction(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	faction, ok := f.factions[models.FactionSymbol(r.PathValue("factionSymbol"))]
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "Faction not found")
		return
	}
	writeData(w, http.StatusOK, faction)
}

// Systems

func (f *FakeAPI) listSystems(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]models.System, 0, len(f.systems))
	for _, symbol := range sortedKeys(f.systems) {
		items = append(items, f.systems[symbol])
	}
	writePage(w, r, items)
}

func (f *FakeAPI) getSystem(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	system, ok := f.systems[r.PathValue("systemSymbol")]
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "System not found")
		return
	}
	writeData(w, http.StatusOK, system)
}

func (f *FakeAPI) listWaypoints(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	systemSymbol := r.PathValue("systemSymbol")
	if _, ok := f.systems[systemSymbol]; !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "System not found")
		return
	}

	query := r.URL.Query()
	items := []models.Waypoint{}
	for _, symbol := range sortedKeys(f.waypoints) {
		wp := f.waypoints[symbol]
		if wp.SystemSymbol != systemSymbol {
			continue
		}
		if typ := query.Get("type"); typ != "" && string(wp.Type) != typ {
			continue
		}
		matches := true
		for _, trait := range query["traits"] {
			if !wp.HasTrait(models.WaypointTraitSymbol(trait)) {
				matches = false
			}
		}
		if matches {
			items = append(items, wp)
		}
	}
	writePage(w, r, items)
}

func (f *FakeAPI) waypointOr404(w http.ResponseWriter, r *http.Request) (models.Waypoint, bool) {
	wp, ok := f.waypoints[r.PathValue("waypointSymbol")]
	if !ok || wp.SystemSymbol != r.PathValue("systemSymbol") {
		writeError(w, http.StatusNotFound, codeNotFound, "Waypoint not found")
		return models.Waypoint{}, false
	}
	return wp, true
}

func (f *FakeAPI) getWaypoint(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if wp, ok := f.waypointOr404(w, r); ok {
		writeData(w, http.StatusOK, wp)
	}
}

// getMarket hides live prices unless one of the caller's ships is present.
func (f *FakeAPI) getMarket(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wp, ok := f.waypointOr404(w, r)
	if !ok {
		return
	}
	market, ok := f.markets[wp.Symbol]
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "Market not found")
		return
	}
	if !f.shipPresent(wp.Symbol) {
		market.TradeGoods = nil
		market.Transactions = nil
	}
	writeData(w, http.StatusOK, market)
}

func (f *FakeAPI) getShipyard(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wp, ok := f.waypointOr404(w, r)
	if !ok {
		return
	}
	if !wp.HasTrait(models.WaypointTraitShipyard) {
		writeError(w, http.StatusNotFound, codeNotFound, "Shipyard not found")
		return
	}
	writeData(w, http.StatusOK, models.Shipyard{
		Symbol: wp.Symbol,
		ShipTypes: []models.ShipyardShipType{
			{Type: models.ShipTypeProbe},
			{Type: models.ShipTypeMiningDrone},
		},
	})
}

func (f *FakeAPI) shipPresent(waypointSymbol string) bool {
	for _, ship := range f.ships {
		if ship.Nav.WaypointSymbol == waypointSymbol && ship.Nav.Status != models.NavStatusInTransit {
			return true
		}
	}
	return false
}

// distance is the rounded euclidean distance between two waypoints
func distance(a, b models.Waypoint) int {
	return int(math.Round(math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))))
}
