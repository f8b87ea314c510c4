package models

import "time"

// Market lists the goods traded at a waypoint. Transactions and TradeGoods
// are only sent while one of the caller's ships is present; they are nil when
// absent and empty when the API sent an empty list.
type Market struct {
	Symbol       string              `json:"symbol" validate:"required,symbol"`
	Exports      []TradeGood         `json:"exports" validate:"dive"`
	Imports      []TradeGood         `json:"imports" validate:"dive"`
	Exchange     []TradeGood         `json:"exchange" validate:"dive"`
	Transactions []MarketTransaction `json:"transactions,omitzero" validate:"omitempty,dive"`
	TradeGoods   []MarketTradeGood   `json:"tradeGoods,omitzero" validate:"omitempty,dive"`
}

// TradeGood finds a priced good by symbol. It returns false when the market
// has no live prices for it.
func (m Market) TradeGood(symbol TradeSymbol) (MarketTradeGood, bool) {
	for _, g := range m.TradeGoods {
		if g.Symbol == symbol {
			return g, true
		}
	}
	return MarketTradeGood{}, false
}

type TradeGood struct {
	Symbol      TradeSymbol `json:"symbol" validate:"enum"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
}

// MarketTradeGood carries live prices. TradeVolume is the most units that can
// move in a single transaction.
type MarketTradeGood struct {
	Symbol        TradeSymbol   `json:"symbol" validate:"enum"`
	Type          TradeGoodType `json:"type" validate:"enum"`
	TradeVolume   int           `json:"tradeVolume" validate:"gte=1"`
	Supply        SupplyLevel   `json:"supply" validate:"enum"`
	Activity      ActivityLevel `json:"activity,omitempty" validate:"omitempty,enum"`
	PurchasePrice int           `json:"purchasePrice" validate:"gte=0"`
	SellPrice     int           `json:"sellPrice" validate:"gte=0"`
}

type MarketTransaction struct {
	WaypointSymbol string          `json:"waypointSymbol" validate:"required,symbol"`
	ShipSymbol     string          `json:"shipSymbol" validate:"required,symbol"`
	TradeSymbol    string          `json:"tradeSymbol" validate:"required,symbol"`
	Type           TransactionType `json:"type" validate:"enum"`
	Units          int             `json:"units" validate:"gte=0"`
	PricePerUnit   int             `json:"pricePerUnit" validate:"gte=0"`
	TotalPrice     int             `json:"totalPrice" validate:"gte=0"`
	Timestamp      time.Time       `json:"timestamp" validate:"required"`
}
