package helpers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

func (f *FakeAPI) shipOr404(w http.ResponseWriter, r *http.Request) (*models.Ship, bool) {
	ship, ok := f.ships[r.PathValue("shipSymbol")]
	if !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "Ship not found")
	}
	return ship, ok
}

// requireStatus writes an error and returns false unless the ship is in want
func requireStatus(w http.ResponseWriter, ship *models.Ship, want models.NavStatus) bool {
	switch {
	case ship.Nav.Status == want:
		return true
	case ship.Nav.Status == models.NavStatusInTransit:
		writeError(w, http.StatusBadRequest, codeShipInTransit, "Ship is currently in transit")
	case want == models.NavStatusInOrbit:
		writeError(w, http.StatusBadRequest, codeShipNotInOrbit, "Ship must be in orbit")
	default:
		writeError(w, http.StatusBadRequest, codeShipNotDocked, "Ship must be docked")
	}
	return false
}

func (f *FakeAPI) listShips(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]models.Ship, 0, len(f.ships))
	for _, symbol := range sortedKeys(f.ships) {
		items = append(items, *f.ships[symbol])
	}
	writePage(w, r, items)
}

func (f *FakeAPI) getShip(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ship, ok := f.shipOr404(w, r); ok {
		writeData(w, http.StatusOK, ship)
	}
}

func (f *FakeAPI) getCargo(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ship, ok := f.shipOr404(w, r); ok {
		writeData(w, http.StatusOK, ship.Cargo)
	}
}

// orbit and dock leave a ship that is already in the target state untouched
func (f *FakeAPI) orbit(w http.ResponseWriter, r *http.Request) {
	f.changeStatus(w, r, models.NavStatusInOrbit)
}

func (f *FakeAPI) dock(w http.ResponseWriter, r *http.Request) {
	f.changeStatus(w, r, models.NavStatusDocked)
}

func (f *FakeAPI) changeStatus(w http.ResponseWriter, r *http.Request, status models.NavStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ship, ok := f.shipOr404(w, r)
	if !ok {
		return
	}
	if ship.Nav.Status == models.NavStatusInTransit {
		writeError(w, http.StatusBadRequest, codeShipInTransit, "Ship is currently in transit")
		return
	}
	ship.Nav.Status = status
	writeData(w, http.StatusOK, models.NavUpdate{Nav: ship.Nav})
}

func (f *FakeAPI) setFlightMode(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ship, ok := f.shipOr404(w, r)
	if !ok {
		return
	}
	var req models.FlightModeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.FlightMode.Valid() {
		writeError(w, http.StatusUnprocessableEntity, 422, "Invalid flight mode")
		return
	}
	ship.Nav.FlightMode = req.FlightMode
	writeData(w, http.StatusOK, models.NavUpdate{Nav: ship.Nav})
}

// fuelCost is the fuel burned over dist in mode
func fuelCost(dist int, mode models.FlightMode) int {
	switch mode {
	case models.FlightModeDrift:
		return 1
	case models.FlightModeBurn:
		return max(2, 2*dist)
	default:
		return max(1, dist)
	}
}

// travelTime is the duration of a trip over dist at speed in mode
func travelTime(dist, speed int, mode models.FlightMode) time.Duration {
	multiplier := 25
	switch mode {
	case models.FlightModeDrift:
		multiplier = 250
	case models.FlightModeBurn:
		multiplier = 12
	case models.FlightModeStealth:
		multiplier = 30
	}
	return time.Duration(15+dist*multiplier/speed) * time.Second
}

func (f *FakeAPI) navigate(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ship, ok := f.shipOr404(w, r)
	if !ok {
		return
	}
	var req models.NavigateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireStatus(w, ship, models.NavStatusInOrbit) {
		return
	}
	origin, ok := f.waypoints[ship.Nav.WaypointSymbol]
	if !ok {
		writeError(w, http.StatusBadRequest, codeNotFound, "Origin waypoint not found")
		return
	}
	dest, ok := f.waypoints[req.WaypointSymbol]
	if !ok || dest.SystemSymbol != ship.Nav.SystemSymbol {
		writeError(w, http.StatusBadRequest, codeNotFound, "Destination waypoint not found in the ship's system")
		return
	}
	if dest.Symbol == origin.Symbol {
		writeError(w, http.StatusBadRequest, codeAlreadyAtWaypoint, "Ship is already at the destination")
		return
	}

	dist := distance(origin, dest)
	cost := fuelCost(dist, ship.Nav.FlightMode)
	if ship.Fuel.Current < cost {
		writeError(w, http.StatusBadRequest, codeInsufficientFuel,
			fmt.Sprintf("Navigate request failed. Ship requires %d more fuel for navigation", cost-ship.Fuel.Current))
		return
	}

	now := f.now()
	ship.Fuel.Current -= cost
	ship.Fuel.Consumed = &models.FuelConsumed{Amount: cost, Timestamp: now}
	ship.Nav.Route = models.ShipNavRoute{
		Origin:        routeWaypoint(origin),
		Destination:   routeWaypoint(dest),
		DepartureTime: now,
		Arrival:       now.Add(travelTime(dist, ship.Engine.Speed, ship.Nav.FlightMode)),
	}
	ship.Nav.WaypointSymbol = dest.Symbol
	ship.Nav.Status = models.NavStatusInTransit

	writeData(w, http.StatusOK, models.Navigation{Fuel: ship.Fuel, Nav: ship.Nav, Events: []models.ShipConditionEvent{}})
}

func routeWaypoint(wp models.Waypoint) models.ShipNavRouteWaypoint {
	return models.ShipNavRouteWaypoint{
		Symbol:       wp.Symbol,
		Type:         wp.Type,
		SystemSymbol: wp.SystemSymbol,
		X:            wp.X,
		Y:            wp.Y,
	}
}

// refuel fills the tank, buying whole market units of 100 fuel each
func (f *FakeAPI) refuel(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ship, ok := f.shipOr404(w, r)
	if !ok {
		return
	}
	var req models.RefuelRequest
	if r.ContentLength != 0 && !decodeBody(w, r, &req) {
		return
	}
	if !requireStatus(w, ship, models.NavStatusDocked) {
		return
	}

	missing := ship.Fuel.Capacity - ship.Fuel.Current
	units := missing
	if req.Units > 0 && req.Units < missing {
		units = req.Units
	}
	marketUnits := (units + fuelPerCargoUnit - 1) / fuelPerCargoUnit

	var price int
	if req.FromCargo {
		if !removeCargo(&ship.Cargo, models.TradeSymbolFuel, marketUnits) {
			writeError(w, http.StatusBadRequest, codeInsufficientCargo, "Ship does not carry enough fuel")
			return
		}
	} else {
		good, ok := f.markets[ship.Nav.WaypointSymbol].TradeGood(models.TradeSymbolFuel)
		if !ok {
			writeError(w, http.StatusBadRequest, codeMarketMissingGood, "Market does not sell fuel")
			return
		}
		price = good.PurchasePrice
		if f.agent.Credits < int64(marketUnits*price) {
			writeError(w, http.StatusBadRequest, codeInsufficientFunds, "Agent does not have sufficient credits")
			return
		}
		f.agent.Credits -= int64(marketUnits * price)
	}

	ship.Fuel.Current += units
	writeData(w, http.StatusOK, models.Refuel{
		Agent:       f.agent,
		Fuel:        ship.Fuel,
		Transaction: f.transaction(ship, models.TradeSymbolFuel, models.TransactionPurchase, marketUnits, price),
	})
}

func (f *FakeAPI) transaction(ship *models.Ship, good models.TradeSymbol, typ models.TransactionType, units, price int) models.MarketTransaction {
	return models.MarketTransaction{
		WaypointSymbol: ship.Nav.WaypointSymbol,
		ShipSymbol:     ship.Symbol,
		TradeSymbol:    string(good),
		Type:           typ,
		Units:          units,
		PricePerUnit:   price,
		TotalPrice:     units * price,
		Timestamp:      f.now(),
	}
}

// checkCooldown writes a conflict and returns false while the ship is cooling down
func (f *FakeAPI) checkCooldown(w http.ResponseWriter, ship *models.Ship) bool {
	if exp := ship.Cooldown.Expiration; exp != nil && f.now().Before(*exp) {
		writeError(w, http.StatusConflict, codeCooldown,
			fmt.Sprintf("Ship action is still on cooldown for %d second(s)", int(exp.Sub(f.now()).Seconds())))
		return false
	}
	return true
}

func (f *FakeAPI) startCooldown(ship *models.Ship) {
	exp := f.now().Add(cooldownSeconds * time.Second)
	ship.Cooldown = models.Cooldown{
		ShipSymbol:       ship.Symbol,
		TotalSeconds:     cooldownSeconds,
		RemainingSeconds: cooldownSeconds,
		Expiration:       &exp,
	}
}

func (f *FakeAPI) extract(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ship, ok := f.shipOr404(w, r)
	if !ok {
		return
	}
	f.doExtract(w, ship, models.TradeSymbolIronOre)
}

func (f *FakeAPI) extractWithSurvey(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ship, ok := f.shipOr404(w, r)
	if !ok {
		return
	}
	var survey models.Survey
	if !decodeBody(w, r, &survey) {
		return
	}
	if survey.Symbol != ship.Nav.WaypointSymbol || len(survey.Deposits) == 0 {
		writeError(w, http.StatusBadRequest, codeSurveyMismatch, "Survey does not match the ship's waypoint")
		return
	}
	if survey.Expired(f.now()) {
		writeError(w, http.StatusBadRequest, codeSurveyMismatch, "Survey has expired")
		return
	}
	f.doExtract(w, ship, survey.Deposits[0].Symbol)
}

func (f *FakeAPI) doExtract(w http.ResponseWriter, ship *models.Ship, good models.TradeSymbol) {
	if !requireStatus(w, ship, models.NavStatusInOrbit) || !f.checkCooldown(w, ship) {
		return
	}
	units := min(extractionYield, ship.Cargo.Available())
	if units == 0 {
		writeError(w, http.StatusBadRequest, codeCargoFull, "Ship cargo hold is full")
		return
	}
	addCargo(&ship.Cargo, good, units)
	f.startCooldown(ship)
	writeData(w, http.StatusCreated, models.ExtractionResult{
		Cooldown: ship.Cooldown,
		Extraction: models.Extraction{
			ShipSymbol: ship.Symbol,
			Yield:      models.ExtractionYield{Symbol: good, Units: units},
		},
		Cargo:  ship.Cargo,
		Events: []models.ShipConditionEvent{},
	})
}

func (f *FakeAPI) survey(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ship, ok := f.shipOr404(w, r)
	if !ok {
		return
	}
	if !requireStatus(w, ship, models.NavStatusInOrbit) || !f.checkCooldown(w, ship) {
		return
	}
	f.surveys++
	f.startCooldown(ship)
	writeData(w, http.StatusCreated, models.SurveyResult{
		Cooldown: ship.Cooldown,
		Surveys: []models.Survey{{
			Signature: fmt.Sprintf("%s-%04d", ship.Nav.WaypointSymbol, f.surveys),
			Symbol:    ship.Nav.WaypointSymbol,
			Deposits: []models.SurveyDeposit{
				{Symbol: models.TradeSymbolCopperOre},
				{Symbol: models.TradeSymbolIronOre},
				{Symbol: models.TradeSymbolIronOre},
			},
			Expiration: f.now().Add(15 * time.Minute),
			Size:       models.SurveySizeModerate,
		}},
	})
}

func (f *FakeAPI) trade(w http.ResponseWriter, r *http.Request, typ models.TransactionType) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ship, ok := f.shipOr404(w, r)
	if !ok {
		return
	}
	var req models.CargoRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !requireStatus(w, ship, models.NavStatusDocked) {
		return
	}
	good, ok := f.markets[ship.Nav.WaypointSymbol].TradeGood(req.Symbol)
	if !ok {
		writeError(w, http.StatusBadRequest, codeMarketMissingGood, "Market does not trade "+string(req.Symbol))
		return
	}

	var price int
	if typ == models.TransactionSell {
		price = good.SellPrice
		if !removeCargo(&ship.Cargo, req.Symbol, req.Units) {
			writeError(w, http.StatusBadRequest, codeInsufficientCargo, "Ship does not have enough cargo to sell")
			return
		}
		f.agent.Credits += int64(req.Units * price)
	} else {
		price = good.PurchasePrice
		if req.Units > ship.Cargo.Available() {
			writeError(w, http.StatusBadRequest, codeCargoFull, "Ship cargo hold does not have enough space")
			return
		}
		if f.agent.Credits < int64(req.Units*price) {
			writeError(w, http.StatusBadRequest, codeInsufficientFunds, "Agent does not have sufficient credits")
			return
		}
		addCargo(&ship.Cargo, req.Symbol, req.Units)
		f.agent.Credits -= int64(req.Units * price)
	}

	writeData(w, http.StatusCreated, models.CargoTrade{
		Agent:       f.agent,
		Cargo:       ship.Cargo,
		Transaction: f.transaction(ship, req.Symbol, typ, req.Units, price),
	})
}

func (f *FakeAPI) sell(w http.ResponseWriter, r *http.Request) {
	f.trade(w, r, models.TransactionSell)
}

func (f *FakeAPI) purchase(w http.ResponseWriter, r *http.Request) {
	f.trade(w, r, models.TransactionPurchase)
}

func (f *FakeAPI) jettison(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ship, ok := f.shipOr404(w, r)
	if !ok {
		return
	}
	var req models.CargoRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !removeCargo(&ship.Cargo, req.Symbol, req.Units) {
		writeError(w, http.StatusBadRequest, codeInsufficientCargo, "Ship does not have enough cargo to jettison")
		return
	}
	writeData(w, http.StatusOK, models.CargoUpdate{Cargo: ship.Cargo})
}

func (f *FakeAPI) purchaseShip(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var req models.PurchaseShipRequest
	if !decodeBody(w, r, &req) {
		return
	}
	wp, ok := f.waypoints[req.WaypointSymbol]
	if !ok || !wp.HasTrait(models.WaypointTraitShipyard) {
		writeError(w, http.StatusNotFound, codeNotFound, "Shipyard not found")
		return
	}
	if !f.shipPresent(wp.Symbol) {
		writeError(w, http.StatusBadRequest, codeShipNotDocked, "A ship must be present at the shipyard")
		return
	}
	if f.agent.Credits < shipPrice {
		writeError(w, http.StatusBadRequest, codeInsufficientFunds, "Agent does not have sufficient credits")
		return
	}

	ship := CreateTestShip(fmt.Sprintf("%s-%X", f.agent.Symbol, len(f.ships)+1), wp.Symbol, models.NavStatusDocked)
	f.ships[ship.Symbol] = &ship
	f.agent.Credits -= shipPrice
	f.agent.ShipCount = len(f.ships)

	writeData(w, http.StatusCreated, models.ShipPurchase{
		Agent: f.agent,
		Ship:  ship,
		Transaction: models.ShipyardTransaction{
			WaypointSymbol: wp.Symbol,
			ShipSymbol:     ship.Symbol,
			ShipType:       req.ShipType,
			Price:          shipPrice,
			AgentSymbol:    f.agent.Symbol,
			Timestamp:      f.now(),
		},
	})
}

func addCargo(cargo *models.ShipCargo, good models.TradeSymbol, units int) {
	cargo.Units += units
	for i := range cargo.Inventory {
		if cargo.Inventory[i].Symbol == good {
			cargo.Inventory[i].Units += units
			return
		}
	}
	cargo.Inventory = append(cargo.Inventory, models.ShipCargoItem{Symbol: good, Name: string(good), Units: units})
}

// removeCargo takes units of good out of the hold. It returns false and
// leaves the hold unchanged when there is not enough.
func removeCargo(cargo *models.ShipCargo, good models.TradeSymbol, units int) bool {
	for i, item := range cargo.Inventory {
		if item.Symbol != good {
			continue
		}
		if item.Units < units {
			return false
		}
		cargo.Units -= units
		if item.Units == units {
			cargo.Inventory = append(cargo.Inventory[:i], cargo.Inventory[i+1:]...)
		} else {
			cargo.Inventory[i].Units -= units
		}
		return true
	}
	return units == 0
}
