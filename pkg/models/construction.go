package models

// Construction tracks the materials still owed to a construction site.
type Construction struct {
	Symbol     string                 `json:"symbol" validate:"required,symbol"`
	Materials  []ConstructionMaterial `json:"materials" validate:"dive"`
	IsComplete bool                   `json:"isComplete"`
}

type ConstructionMaterial struct {
	TradeSymbol TradeSymbol `json:"tradeSymbol" validate:"enum"`
	Required    int         `json:"required" validate:"gte=0"`
	Fulfilled   int         `json:"fulfilled" validate:"gte=0"`
}

// ConstructionSupply is returned after supplying materials to a site.
type ConstructionSupply struct {
	Construction Construction `json:"construction"`
	Cargo        ShipCargo    `json:"cargo"`
}
