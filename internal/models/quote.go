package models

import "time"

// PriceQuote is a single timestamped price observation as delivered by the price feed.
type PriceQuote struct {
	Currency string    `json:"currency"` // Instrument symbol, e.g. "ETH"
	Date     time.Time `json:"date"`     // Observation time (ISO-8601)
	Price    float64   `json:"price"`    // Observed unit price, zero when unknown
}
