package models

import "time"

type Contract struct {
	ID               string        `json:"id" validate:"required,symbol"`
	FactionSymbol    string        `json:"factionSymbol" validate:"required,symbol"`
	Type             ContractType  `json:"type" validate:"enum"`
	Terms            ContractTerms `json:"terms"`
	Accepted         bool          `json:"accepted"`
	Fulfilled        bool          `json:"fulfilled"`
	DeadlineToAccept time.Time     `json:"deadlineToAccept" validate:"required"`
}

type ContractTerms struct {
	Deadline time.Time         `json:"deadline" validate:"required"`
	Payment  ContractPayment   `json:"payment"`
	Deliver  []ContractDeliver `json:"deliver" validate:"dive"`
}

// ContractPayment splits the reward between acceptance and fulfillment.
type ContractPayment struct {
	OnAccepted  int `json:"onAccepted" validate:"gte=0"`
	OnFulfilled int `json:"onFulfilled" validate:"gte=0"`
}

// ContractDeliver is one delivery requirement. The API guarantees
// UnitsFulfilled never exceeds UnitsRequired.
type ContractDeliver struct {
	TradeSymbol       string `json:"tradeSymbol" validate:"required,symbol"`
	DestinationSymbol string `json:"destinationSymbol" validate:"required,symbol"`
	UnitsRequired     int    `json:"unitsRequired" validate:"gte=0"`
	UnitsFulfilled    int    `json:"unitsFulfilled" validate:"gte=0"`
}

// Remaining returns the units still to deliver for this term.
func (d ContractDeliver) Remaining() int {
	return d.UnitsRequired - d.UnitsFulfilled
}

// ContractAgent is returned by accept and fulfill: the updated contract and
// the agent after payment.
type ContractAgent struct {
	Agent    Agent    `json:"agent"`
	Contract Contract `json:"contract"`
}

// ContractDelivery is returned by deliver.
type ContractDelivery struct {
	Contract Contract  `json:"contract"`
	Cargo    ShipCargo `json:"cargo"`
}

// ContractNegotiation is returned when a ship negotiates a new contract.
type ContractNegotiation struct {
	Contract Contract `json:"contract"`
}
