package models

// NavigateRequest moves a ship to a waypoint in its current system.
type NavigateRequest struct {
	WaypointSymbol string `json:"waypointSymbol" validate:"required,symbol"`
}

// RefuelRequest buys fuel. Units are ship fuel units, not market units, and
// are capped at the tank's free space. A zero Units is omitted and the API
// fills the tank.
type RefuelRequest struct {
	Units     int  `json:"units,omitempty" validate:"omitempty,gte=1"`
	FromCargo bool `json:"fromCargo"`
}

// CargoRequest is the body shared by sell, purchase and jettison.
type CargoRequest struct {
	Symbol TradeSymbol `json:"symbol" validate:"enum"`
	Units  int         `json:"units" validate:"gte=1"`
}

type DeliverContractRequest struct {
	ShipSymbol  string      `json:"shipSymbol" validate:"required,symbol"`
	TradeSymbol TradeSymbol `json:"tradeSymbol" validate:"enum"`
	Units       int         `json:"units" validate:"gte=1"`
}

type SupplyConstructionRequest struct {
	ShipSymbol  string      `json:"shipSymbol" validate:"required,symbol"`
	TradeSymbol TradeSymbol `json:"tradeSymbol" validate:"enum"`
	Units       int         `json:"units" validate:"gte=1"`
}

type FlightModeRequest struct {
	FlightMode FlightMode `json:"flightMode" validate:"enum"`
}

type PurchaseShipRequest struct {
	ShipType       ShipType `json:"shipType" validate:"enum"`
	WaypointSymbol string   `json:"waypointSymbol" validate:"required,symbol"`
}

// WaypointFilter narrows a waypoint listing. Zero fields are not sent.
type WaypointFilter struct {
	Traits []WaypointTraitSymbol `validate:"omitempty,dive,enum"`
	Type   WaypointType          `validate:"omitempty,enum"`
}
