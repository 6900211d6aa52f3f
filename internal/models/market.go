package models

// Market is a simplified representation of a Polymarket binary market.
type Market struct {
	ID         string  `json:"id"`
	Question   string  `json:"question"`
	Status     string  `json:"status"`
	OutcomeYes *string `json:"outcome_yes"`
	OutcomeNo  *string `json:"outcome_no"`
}

// Orderbook is a point-in-time capture of a binary market's yes/no prices.
// A missing price stays nil all the way to persistence.
type Orderbook struct {
	MarketID string   `json:"market_id"`
	YesPrice *float64 `json:"yes_price"`
	NoPrice  *float64 `json:"no_price"`
}

// ImpliedYesProbability treats the yes price as a direct probability estimate.
func (o *Orderbook) ImpliedYesProbability() *float64 {
	return o.YesPrice
}

// ImpliedNoProbability treats the no price as a direct probability estimate.
func (o *Orderbook) ImpliedNoProbability() *float64 {
	return o.NoPrice
}
