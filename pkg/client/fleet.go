package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
	"github.com/andrescamacho/spacetraders-sdk/pkg/transport"
)

// Fleet covers the caller's ships. Apart from List, Get and Cargo every
// operation is a game action with side effects such as fuel use, movement
// or a cooldown.
type Fleet struct {
	session *transport.Session
}

func NewFleet(session *transport.Session) *Fleet {
	return &Fleet{session: session}
}

func (f *Fleet) List(ctx context.Context, page, limit int) (*Outcome[models.Page[models.Ship]], error) {
	return fetchPage[models.Ship](ctx, f.session, call{
		op:       "list ships",
		method:   http.MethodGet,
		path:     "/my/ships",
		endpoint: "/my/ships",
		entity:   "Ships",
		success:  "Listed ships.",
	}, page, limit)
}

func (f *Fleet) Get(ctx context.Context, shipSymbol string) (*Outcome[models.Ship], error) {
	const op = "fetch ship"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	return fetch[models.Ship](ctx, f.session, f.shipCall(op, http.MethodGet, shipSymbol, "", nil,
		fmt.Sprintf("Fetched ship %s.", shipSymbol)))
}

func (f *Fleet) Cargo(ctx context.Context, shipSymbol string) (*Outcome[models.ShipCargo], error) {
	const op = "fetch ship cargo"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	return fetch[models.ShipCargo](ctx, f.session, f.shipCall(op, http.MethodGet, shipSymbol, "/cargo", nil,
		fmt.Sprintf("Fetched cargo of %s.", shipSymbol)))
}

// Orbit moves a docked ship into orbit. Orbiting a ship that is already in
// orbit succeeds and leaves it in orbit.
func (f *Fleet) Orbit(ctx context.Context, shipSymbol string) (*Outcome[models.NavUpdate], error) {
	const op = "orbit ship"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	return fetch[models.NavUpdate](ctx, f.session, f.shipCall(op, http.MethodPost, shipSymbol, "/orbit", nil,
		fmt.Sprintf("Ship %s is in orbit.", shipSymbol)))
}

// Dock docks an orbiting ship. Docking a ship that is already docked
// succeeds and leaves it docked.
func (f *Fleet) Dock(ctx context.Context, shipSymbol string) (*Outcome[models.NavUpdate], error) {
	const op = "dock ship"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	return fetch[models.NavUpdate](ctx, f.session, f.shipCall(op, http.MethodPost, shipSymbol, "/dock", nil,
		fmt.Sprintf("Ship %s is docked.", shipSymbol)))
}

// Navigate sends an orbiting ship to a waypoint in its current system and
// returns the new route and remaining fuel.
func (f *Fleet) Navigate(ctx context.Context, shipSymbol, waypointSymbol string) (*Outcome[models.Navigation], error) {
	const op = "navigate ship"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	req := models.NavigateRequest{WaypointSymbol: waypointSymbol}
	if err := checkParams(op, req); err != nil {
		return nil, err
	}
	return fetch[models.Navigation](ctx, f.session, f.shipCall(op, http.MethodPost, shipSymbol, "/navigate", req,
		fmt.Sprintf("Ship %s is navigating to %s.", shipSymbol, waypointSymbol)))
}

// SetFlightMode changes how the ship travels on its next or current route.
func (f *Fleet) SetFlightMode(ctx context.Context, shipSymbol string, mode models.FlightMode) (*Outcome[models.NavUpdate], error) {
	const op = "set flight mode"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	req := models.FlightModeRequest{FlightMode: mode}
	if err := checkParams(op, req); err != nil {
		return nil, err
	}
	return fetch[models.NavUpdate](ctx, f.session, f.shipCall(op, http.MethodPatch, shipSymbol, "/nav", req,
		fmt.Sprintf("Ship %s flight mode set to %s.", shipSymbol, mode)))
}

// Refuel buys fuel at the ship's market, or takes it from cargo when
// req.FromCargo is set.
func (f *Fleet) Refuel(ctx context.Context, shipSymbol string, req models.RefuelRequest) (*Outcome[models.Refuel], error) {
	const op = "refuel ship"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	if err := checkParams(op, req); err != nil {
		return nil, err
	}
	return fetch[models.Refuel](ctx, f.session, f.shipCall(op, http.MethodPost, shipSymbol, "/refuel", req,
		fmt.Sprintf("Refueled ship %s.", shipSymbol)))
}

// Extract mines the ship's current waypoint without targeting any deposit.
// Prefer ExtractWithSurvey when a survey is available.
func (f *Fleet) Extract(ctx context.Context, shipSymbol string) (*Outcome[models.ExtractionResult], error) {
	const op = "extract resources"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	return fetch[models.ExtractionResult](ctx, f.session, f.shipCall(op, http.MethodPost, shipSymbol, "/extract", nil,
		fmt.Sprintf("Ship %s extracted resources.", shipSymbol)))
}

// ExtractWithSurvey mines the deposits described by survey.
func (f *Fleet) ExtractWithSurvey(ctx context.Context, shipSymbol string, survey models.Survey) (*Outcome[models.ExtractionResult], error) {
	const op = "extract resources with survey"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	if err := checkParams(op, survey); err != nil {
		return nil, err
	}
	return fetch[models.ExtractionResult](ctx, f.session, f.shipCall(op, http.MethodPost, shipSymbol, "/extract/survey", survey,
		fmt.Sprintf("Ship %s extracted resources using survey %s.", shipSymbol, survey.Signature)))
}

// Survey scans the ship's waypoint and returns surveys of its deposits.
func (f *Fleet) Survey(ctx context.Context, shipSymbol string) (*Outcome[models.SurveyResult], error) {
	const op = "create survey"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	return fetch[models.SurveyResult](ctx, f.session, f.shipCall(op, http.MethodPost, shipSymbol, "/survey", nil,
		fmt.Sprintf("Ship %s surveyed its waypoint.", shipSymbol)))
}

// Sell sells cargo to the market at the ship's waypoint.
func (f *Fleet) Sell(ctx context.Context, shipSymbol string, req models.CargoRequest) (*Outcome[models.CargoTrade], error) {
	const op = "sell cargo"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	if err := checkParams(op, req); err != nil {
		return nil, err
	}
	return fetch[models.CargoTrade](ctx, f.session, f.shipCall(op, http.MethodPost, shipSymbol, "/sell", req,
		fmt.Sprintf("Ship %s sold %d %s.", shipSymbol, req.Units, req.Symbol)))
}

// Purchase buys cargo from the market at the ship's waypoint.
func (f *Fleet) Purchase(ctx context.Context, shipSymbol string, req models.CargoRequest) (*Outcome[models.CargoTrade], error) {
	const op = "purchase cargo"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	if err := checkParams(op, req); err != nil {
		return nil, err
	}
	return fetch[models.CargoTrade](ctx, f.session, f.shipCall(op, http.MethodPost, shipSymbol, "/purchase", req,
		fmt.Sprintf("Ship %s purchased %d %s.", shipSymbol, req.Units, req.Symbol)))
}

// Jettison dumps cargo into space.
func (f *Fleet) Jettison(ctx context.Context, shipSymbol string, req models.CargoRequest) (*Outcome[models.CargoUpdate], error) {
	const op = "jettison cargo"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	if err := checkParams(op, req); err != nil {
		return nil, err
	}
	return fetch[models.CargoUpdate](ctx, f.session, f.shipCall(op, http.MethodPost, shipSymbol, "/jettison", req,
		fmt.Sprintf("Ship %s jettisoned %d %s.", shipSymbol, req.Units, req.Symbol)))
}

// PurchaseShip buys a ship at a shipyard where one of the caller's ships is present.
func (f *Fleet) PurchaseShip(ctx context.Context, req models.PurchaseShipRequest) (*Outcome[models.ShipPurchase], error) {
	const op = "purchase ship"
	if err := checkParams(op, req); err != nil {
		return nil, err
	}
	return fetch[models.ShipPurchase](ctx, f.session, call{
		op:       op,
		method:   http.MethodPost,
		path:     "/my/ships",
		endpoint: "/my/ships",
		body:     req,
		entity:   "Shipyard",
		success:  fmt.Sprintf("Purchased a %s at %s.", req.ShipType, req.WaypointSymbol),
	})
}

func (f *Fleet) shipCall(op, method, shipSymbol, action string, body interface{}, success string) call {
	return call{
		op:       op,
		method:   method,
		path:     "/my/ships/" + shipSymbol + action,
		endpoint: "/my/ships/{shipSymbol}" + action,
		body:     body,
		entity:   "Ship",
		success:  success,
	}
}
