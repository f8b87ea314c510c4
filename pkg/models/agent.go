package models

// Agent is a player in the game. AccountID is only present on the caller's own agent.
type Agent struct {
	AccountID       *string `json:"accountId,omitempty" validate:"omitempty,symbol"`
	Symbol          string  `json:"symbol" validate:"required,symbol"`
	Headquarters    string  `json:"headquarters" validate:"required,symbol"`
	Credits         int64   `json:"credits" validate:"gte=-9007199254740991,lte=9007199254740991"`
	StartingFaction string  `json:"startingFaction" validate:"required,symbol"`
	ShipCount       int     `json:"shipCount" validate:"gte=0"`
}
