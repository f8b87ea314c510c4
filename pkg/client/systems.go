package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
	"github.com/andrescamacho/spacetraders-sdk/pkg/transport"
)

// Systems covers the universe: systems, their waypoints and the facilities
// found at waypoints.
type Systems struct {
	session *transport.Session
}

func NewSystems(session *transport.Session) *Systems {
	return &Systems{session: session}
}

func (s *Systems) List(ctx context.Context, page, limit int) (*Outcome[models.Page[models.System]], error) {
	return fetchPage[models.System](ctx, s.session, call{
		op:       "list systems",
		method:   http.MethodGet,
		path:     "/systems",
		endpoint: "/systems",
		entity:   "Systems",
		success:  "Listed systems.",
	}, page, limit)
}

func (s *Systems) Get(ctx context.Context, systemSymbol string) (*Outcome[models.System], error) {
	const op = "fetch system"
	if err := checkSymbols(op, "systemSymbol", systemSymbol); err != nil {
		return nil, err
	}
	return fetch[models.System](ctx, s.session, call{
		op:       op,
		method:   http.MethodGet,
		path:     "/systems/" + systemSymbol,
		endpoint: "/systems/{systemSymbol}",
		entity:   "System",
		success:  fmt.Sprintf("Fetched system %s.", systemSymbol),
	})
}

// ListWaypoints lists the waypoints of a system, optionally narrowed by
// trait and type. Each trait is sent as its own query parameter.
func (s *Systems) ListWaypoints(ctx context.Context, systemSymbol string, filter models.WaypointFilter, page, limit int) (*Outcome[models.Page[models.Waypoint]], error) {
	const op = "list waypoints"
	if err := checkSymbols(op, "systemSymbol", systemSymbol); err != nil {
		return nil, err
	}
	if err := checkParams(op, filter); err != nil {
		return nil, err
	}

	query := url.Values{}
	for _, trait := range filter.Traits {
		query.Add("traits", string(trait))
	}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}

	return fetchPage[models.Waypoint](ctx, s.session, call{
		op:       op,
		method:   http.MethodGet,
		path:     "/systems/" + systemSymbol + "/waypoints",
		endpoint: "/systems/{systemSymbol}/waypoints",
		query:    query,
		entity:   "System",
		success:  fmt.Sprintf("Listed waypoints in %s.", systemSymbol),
	}, page, limit)
}

func (s *Systems) Waypoint(ctx context.Context, systemSymbol, waypointSymbol string) (*Outcome[models.Waypoint], error) {
	const op = "fetch waypoint"
	if err := checkSymbols(op, "systemSymbol", systemSymbol, "waypointSymbol", waypointSymbol); err != nil {
		return nil, err
	}
	return fetch[models.Waypoint](ctx, s.session, s.waypointCall(op, http.MethodGet, systemSymbol, waypointSymbol, "", nil,
		"Waypoint", fmt.Sprintf("Fetched waypoint %s.", waypointSymbol)))
}

// Market returns the market at a waypoint. Live prices are only included
// while one of the caller's ships is present.
func (s *Systems) Market(ctx context.Context, systemSymbol, waypointSymbol string) (*Outcome[models.Market], error) {
	const op = "fetch market"
	if err := checkSymbols(op, "systemSymbol", systemSymbol, "waypointSymbol", waypointSymbol); err != nil {
		return nil, err
	}
	return fetch[models.Market](ctx, s.session, s.waypointCall(op, http.MethodGet, systemSymbol, waypointSymbol, "/market", nil,
		"Market", fmt.Sprintf("Fetched market at %s.", waypointSymbol)))
}

func (s *Systems) Shipyard(ctx context.Context, systemSymbol, waypointSymbol string) (*Outcome[models.Shipyard], error) {
	const op = "fetch shipyard"
	if err := checkSymbols(op, "systemSymbol", systemSymbol, "waypointSymbol", waypointSymbol); err != nil {
		return nil, err
	}
	return fetch[models.Shipyard](ctx, s.session, s.waypointCall(op, http.MethodGet, systemSymbol, waypointSymbol, "/shipyard", nil,
		"Shipyard", fmt.Sprintf("Fetched shipyard at %s.", waypointSymbol)))
}

func (s *Systems) JumpGate(ctx context.Context, systemSymbol, waypointSymbol string) (*Outcome[models.JumpGate], error) {
	const op = "fetch jump gate"
	if err := checkSymbols(op, "systemSymbol", systemSymbol, "waypointSymbol", waypointSymbol); err != nil {
		return nil, err
	}
	return fetch[models.JumpGate](ctx, s.session, s.waypointCall(op, http.MethodGet, systemSymbol, waypointSymbol, "/jump-gate", nil,
		"Jump gate", fmt.Sprintf("Fetched jump gate at %s.", waypointSymbol)))
}

func (s *Systems) Construction(ctx context.Context, systemSymbol, waypointSymbol string) (*Outcome[models.Construction], error) {
	const op = "fetch construction site"
	if err := checkSymbols(op, "systemSymbol", systemSymbol, "waypointSymbol", waypointSymbol); err != nil {
		return nil, err
	}
	return fetch[models.Construction](ctx, s.session, s.waypointCall(op, http.MethodGet, systemSymbol, waypointSymbol, "/construction", nil,
		"Construction site", fmt.Sprintf("Fetched construction site at %s.", waypointSymbol)))
}

// SupplyConstruction delivers materials from a docked ship to a construction site.
func (s *Systems) SupplyConstruction(ctx context.Context, systemSymbol, waypointSymbol string, req models.SupplyConstructionRequest) (*Outcome[models.ConstructionSupply], error) {
	const op = "supply construction site"
	if err := checkSymbols(op, "systemSymbol", systemSymbol, "waypointSymbol", waypointSymbol); err != nil {
		return nil, err
	}
	if err := checkParams(op, req); err != nil {
		return nil, err
	}
	return fetch[models.ConstructionSupply](ctx, s.session, s.waypointCall(op, http.MethodPost, systemSymbol, waypointSymbol, "/construction/supply", req,
		"Construction site", fmt.Sprintf("Supplied %d %s to %s.", req.Units, req.TradeSymbol, waypointSymbol)))
}

func (s *Systems) waypointCall(op, method, systemSymbol, waypointSymbol, facility string, body interface{}, entity, success string) call {
	return call{
		op:       op,
		method:   method,
		path:     "/systems/" + systemSymbol + "/waypoints/" + waypointSymbol + facility,
		endpoint: "/systems/{systemSymbol}/waypoints/{waypointSymbol}" + facility,
		body:     body,
		entity:   entity,
		success:  success,
	}
}
