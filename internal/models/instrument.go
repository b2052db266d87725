package models

// Instrument represents a tradable symbol with its current unit price.
// swagger:model Instrument
type Instrument struct {
	// Unique symbol
	// example: ETH
	Symbol string `json:"symbol"`

	// Latest positive unit price
	// example: 1645.93
	Price float64 `json:"price"`

	// Icon reference resolved by the presentation layer
	// example: https://raw.githubusercontent.com/Switcheo/token-icons/main/tokens/ETH.svg
	IconRef string `json:"icon_ref"`
}

// InstrumentsResponse represents the list of available instruments
// swagger:model InstrumentsResponse
type InstrumentsResponse struct {
	Instruments []Instrument `json:"instruments"`
}
