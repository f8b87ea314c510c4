package models

import "time"

// Survey targets extraction at a waypoint. A deposit symbol may repeat; each
// repeat raises the chance of extracting it. Surveys expire and are consumed
// by extraction at the API's discretion.
type Survey struct {
	Signature  string          `json:"signature" validate:"required,symbol"`
	Symbol     string          `json:"symbol" validate:"required,symbol"`
	Deposits   []SurveyDeposit `json:"deposits" validate:"min=1,dive"`
	Expiration time.Time       `json:"expiration" validate:"required"`
	Size       SurveySize      `json:"size" validate:"enum"`
}

type SurveyDeposit struct {
	Symbol TradeSymbol `json:"symbol" validate:"enum"`
}

// Expired reports whether the survey can no longer be used at now.
func (s Survey) Expired(now time.Time) bool {
	return !now.Before(s.Expiration)
}

// SurveyResult is returned by the survey action.
type SurveyResult struct {
	Cooldown Cooldown `json:"cooldown"`
	Surveys  []Survey `json:"surveys" validate:"dive"`
}

// Extraction is the yield of a single extract action.
type Extraction struct {
	ShipSymbol string          `json:"shipSymbol" validate:"required,symbol"`
	Yield      ExtractionYield `json:"yield"`
}

type ExtractionYield struct {
	Symbol TradeSymbol `json:"symbol" validate:"enum"`
	Units  int         `json:"units" validate:"gte=0"`
}

// ExtractionResult is returned by extract and extract-with-survey.
type ExtractionResult struct {
	Cooldown   Cooldown             `json:"cooldown"`
	Extraction Extraction           `json:"extraction"`
	Cargo      ShipCargo            `json:"cargo"`
	Events     []ShipConditionEvent `json:"events" validate:"dive"`
}
