package models

type Faction struct {
	Symbol       FactionSymbol  `json:"symbol" validate:"enum"`
	Name         string         `json:"name" validate:"required"`
	Description  string         `json:"description"`
	Headquarters string         `json:"headquarters"`
	Traits       []FactionTrait `json:"traits" validate:"dive"`
	IsRecruiting bool           `json:"isRecruiting"`
}

type FactionTrait struct {
	Symbol      FactionTraitSymbol `json:"symbol" validate:"enum"`
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
}
