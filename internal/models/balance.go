package models

// HolderBalance is the available amount of one instrument held by a wallet.
type HolderBalance struct {
	Symbol string  `json:"symbol" db:"symbol"` // Instrument symbol
	Amount float64 `json:"amount" db:"amount"` // Available amount, never negative
}

// BalancesResponse represents the balances of a holder after a refresh
// swagger:model BalancesResponse
type BalancesResponse struct {
	// Holder identifier
	// example: wallet-1
	Holder string `json:"holder"`

	Balances []HolderBalance `json:"balances"`
}
