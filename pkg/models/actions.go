package models

// NavUpdate is returned by orbit, dock and flight mode changes.
type NavUpdate struct {
	Nav ShipNav `json:"nav"`
}

// Navigation is returned by navigate.
type Navigation struct {
	Fuel   ShipFuel             `json:"fuel"`
	Nav    ShipNav              `json:"nav"`
	Events []ShipConditionEvent `json:"events" validate:"dive"`
}

// Refuel is returned by refuel.
type Refuel struct {
	Agent       Agent             `json:"agent"`
	Fuel        ShipFuel          `json:"fuel"`
	Transaction MarketTransaction `json:"transaction"`
}

// CargoTrade is returned by sell and purchase.
type CargoTrade struct {
	Agent       Agent             `json:"agent"`
	Cargo       ShipCargo         `json:"cargo"`
	Transaction MarketTransaction `json:"transaction"`
}

// CargoUpdate is returned by jettison.
type CargoUpdate struct {
	Cargo ShipCargo `json:"cargo"`
}
