package models

import "time"

// Shipyard lists the ships for sale at a waypoint. Ships and Transactions are
// only sent while one of the caller's ships is present.
type Shipyard struct {
	Symbol           string                `json:"symbol" validate:"required,symbol"`
	ShipTypes        []ShipyardShipType    `json:"shipTypes" validate:"dive"`
	Transactions     []ShipyardTransaction `json:"transactions,omitzero" validate:"omitempty,dive"`
	Ships            []ShipyardShip        `json:"ships,omitzero" validate:"omitempty,dive"`
	ModificationsFee int                   `json:"modificationsFee" validate:"gte=0"`
}

type ShipyardShipType struct {
	Type ShipType `json:"type" validate:"enum"`
}

type ShipyardTransaction struct {
	WaypointSymbol string    `json:"waypointSymbol" validate:"required,symbol"`
	ShipSymbol     string    `json:"shipSymbol,omitempty" validate:"omitempty,symbol"`
	ShipType       ShipType  `json:"shipType" validate:"enum"`
	Price          int       `json:"price" validate:"gte=0"`
	AgentSymbol    string    `json:"agentSymbol" validate:"required,symbol"`
	Timestamp      time.Time `json:"timestamp" validate:"required"`
}

type ShipyardShip struct {
	Type          ShipType         `json:"type" validate:"enum"`
	Name          string           `json:"name" validate:"required"`
	Description   string           `json:"description"`
	Supply        SupplyLevel      `json:"supply" validate:"enum"`
	Activity      ActivityLevel    `json:"activity,omitempty" validate:"omitempty,enum"`
	PurchasePrice int              `json:"purchasePrice" validate:"gte=0"`
	Frame         ShipFrame        `json:"frame"`
	Reactor       ShipReactor      `json:"reactor"`
	Engine        ShipEngine       `json:"engine"`
	Modules       []ShipModule     `json:"modules" validate:"dive"`
	Mounts        []ShipMount      `json:"mounts" validate:"dive"`
	Crew          ShipyardShipCrew `json:"crew"`
}

type ShipyardShipCrew struct {
	Required int `json:"required" validate:"gte=0"`
	Capacity int `json:"capacity" validate:"gte=0"`
}

// ShipPurchase is returned after buying a ship.
type ShipPurchase struct {
	Agent       Agent               `json:"agent"`
	Ship        Ship                `json:"ship"`
	Transaction ShipyardTransaction `json:"transaction"`
}
