package models

import (
	"encoding/json"
	"time"
)

// Ship is a ship owned by the caller's agent.
type Ship struct {
	Symbol       string           `json:"symbol" validate:"required,symbol"`
	Registration ShipRegistration `json:"registration"`
	Nav          ShipNav          `json:"nav"`
	Crew         ShipCrew         `json:"crew"`
	Frame        ShipFrame        `json:"frame"`
	Reactor      ShipReactor      `json:"reactor"`
	Engine       ShipEngine       `json:"engine"`
	Cooldown     Cooldown         `json:"cooldown"`
	Modules      []ShipModule     `json:"modules" validate:"dive"`
	Mounts       []ShipMount      `json:"mounts" validate:"dive"`
	Cargo        ShipCargo        `json:"cargo"`
	Fuel         ShipFuel         `json:"fuel"`
}

type ShipRegistration struct {
	Name          string   `json:"name" validate:"required"`
	FactionSymbol string   `json:"factionSymbol" validate:"required,symbol"`
	Role          ShipRole `json:"role" validate:"enum"`
}

// ShipNav is the navigation state of a ship. FlightMode defaults to CRUISE
// when the payload omits it.
type ShipNav struct {
	SystemSymbol   string       `json:"systemSymbol" validate:"required,symbol"`
	WaypointSymbol string       `json:"waypointSymbol" validate:"required,symbol"`
	Route          ShipNavRoute `json:"route"`
	Status         NavStatus    `json:"status" validate:"enum"`
	FlightMode     FlightMode   `json:"flightMode" validate:"enum"`
}

func (n *ShipNav) UnmarshalJSON(data []byte) error {
	type plain ShipNav
	decoded := plain{FlightMode: FlightModeCruise}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*n = ShipNav(decoded)
	return nil
}

type ShipNavRoute struct {
	Destination   ShipNavRouteWaypoint `json:"destination"`
	Origin        ShipNavRouteWaypoint `json:"origin"`
	DepartureTime time.Time            `json:"departureTime" validate:"required"`
	Arrival       time.Time            `json:"arrival" validate:"required"`
}

// Duration is the scheduled travel time of the route.
func (r ShipNavRoute) Duration() time.Duration {
	return r.Arrival.Sub(r.DepartureTime)
}

type ShipNavRouteWaypoint struct {
	Symbol       string       `json:"symbol" validate:"required,symbol"`
	Type         WaypointType `json:"type" validate:"enum"`
	SystemSymbol string       `json:"systemSymbol" validate:"required,symbol"`
	X            int          `json:"x"`
	Y            int          `json:"y"`
}

// ShipCrew describes the crew aboard. Rotation defaults to STRICT.
type ShipCrew struct {
	Current  int          `json:"current" validate:"gte=0"`
	Required int          `json:"required" validate:"gte=0"`
	Capacity int          `json:"capacity" validate:"gte=0"`
	Rotation CrewRotation `json:"rotation" validate:"enum"`
	Morale   int          `json:"morale" validate:"gte=0,lte=100"`
	Wages    int          `json:"wages" validate:"gte=0"`
}

func (c *ShipCrew) UnmarshalJSON(data []byte) error {
	type plain ShipCrew
	decoded := plain{Rotation: CrewRotationStrict}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*c = ShipCrew(decoded)
	return nil
}

// ShipRequirements is what a component needs to be installed and run.
// A nil field was not sent; zero is a real requirement.
type ShipRequirements struct {
	Power *int `json:"power,omitempty" validate:"omitempty,gte=0"`
	Crew  *int `json:"crew,omitempty"`
	Slots *int `json:"slots,omitempty" validate:"omitempty,gte=0"`
}

// Condition is repairable wear in [0,1]. Integrity is permanent wear in [0,1]
// and is never restored.
type ShipFrame struct {
	Symbol         FrameSymbol      `json:"symbol" validate:"enum"`
	Name           string           `json:"name" validate:"required"`
	Description    string           `json:"description"`
	Condition      float64          `json:"condition" validate:"gte=0,lte=1"`
	Integrity      float64          `json:"integrity" validate:"gte=0,lte=1"`
	ModuleSlots    int              `json:"moduleSlots" validate:"gte=0"`
	MountingPoints int              `json:"mountingPoints" validate:"gte=0"`
	FuelCapacity   int              `json:"fuelCapacity" validate:"gte=0"`
	Requirements   ShipRequirements `json:"requirements"`
}

type ShipReactor struct {
	Symbol       ReactorSymbol    `json:"symbol" validate:"enum"`
	Name         string           `json:"name" validate:"required"`
	Description  string           `json:"description"`
	Condition    float64          `json:"condition" validate:"gte=0,lte=1"`
	Integrity    float64          `json:"integrity" validate:"gte=0,lte=1"`
	PowerOutput  int              `json:"powerOutput" validate:"gte=1"`
	Requirements ShipRequirements `json:"requirements"`
}

type ShipEngine struct {
	Symbol       EngineSymbol     `json:"symbol" validate:"enum"`
	Name         string           `json:"name" validate:"required"`
	Description  string           `json:"description"`
	Condition    float64          `json:"condition" validate:"gte=0,lte=1"`
	Integrity    float64          `json:"integrity" validate:"gte=0,lte=1"`
	Speed        int              `json:"speed" validate:"gte=1"`
	Requirements ShipRequirements `json:"requirements"`
}

type ShipModule struct {
	Symbol       ModuleSymbol     `json:"symbol" validate:"enum"`
	Capacity     *int             `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Range        *int             `json:"range,omitempty" validate:"omitempty,gte=0"`
	Name         string           `json:"name" validate:"required"`
	Description  string           `json:"description"`
	Requirements ShipRequirements `json:"requirements"`
}

type ShipMount struct {
	Symbol       MountSymbol      `json:"symbol" validate:"enum"`
	Name         string           `json:"name" validate:"required"`
	Description  *string          `json:"description,omitempty"`
	Strength     *int             `json:"strength,omitempty" validate:"omitempty,gte=0"`
	Deposits     []DepositSymbol  `json:"deposits,omitzero" validate:"omitempty,dive,enum"`
	Requirements ShipRequirements `json:"requirements"`
}

// Cooldown is the delay imposed after extraction or surveying. Expiration is
// absent when no cooldown is running.
type Cooldown struct {
	ShipSymbol       string     `json:"shipSymbol" validate:"required,symbol"`
	TotalSeconds     int        `json:"totalSeconds" validate:"gte=0"`
	RemainingSeconds int        `json:"remainingSeconds" validate:"gte=0"`
	Expiration       *time.Time `json:"expiration,omitempty"`
}

// Active reports whether the cooldown still blocks ship actions.
func (c Cooldown) Active() bool {
	return c.RemainingSeconds > 0
}

type ShipCargo struct {
	Capacity  int             `json:"capacity" validate:"gte=0"`
	Units     int             `json:"units" validate:"gte=0"`
	Inventory []ShipCargoItem `json:"inventory" validate:"dive"`
}

// Available is the free space left in the hold.
func (c ShipCargo) Available() int {
	return c.Capacity - c.Units
}

// UnitsOf returns how many units of symbol are in the hold.
func (c ShipCargo) UnitsOf(symbol TradeSymbol) int {
	for _, item := range c.Inventory {
		if item.Symbol == symbol {
			return item.Units
		}
	}
	return 0
}

type ShipCargoItem struct {
	Symbol      TradeSymbol `json:"symbol" validate:"enum"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	Units       int         `json:"units" validate:"gte=1"`
}

// ShipFuel holds the fuel tank. Consumed describes the most recent burn and
// is absent until the ship has travelled.
type ShipFuel struct {
	Current  int           `json:"current" validate:"gte=0"`
	Capacity int           `json:"capacity" validate:"gte=0"`
	Consumed *FuelConsumed `json:"consumed,omitempty"`
}

type FuelConsumed struct {
	Amount    int       `json:"amount" validate:"gte=0"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// ShipConditionEvent reports wear applied to a component by an action.
type ShipConditionEvent struct {
	Symbol      ConditionEventSymbol `json:"symbol" validate:"enum"`
	Component   ShipComponent        `json:"component" validate:"enum"`
	Name        string               `json:"name" validate:"required"`
	Description string               `json:"description"`
}
