package models

// SwapTransaction is the settlement record published for a confirmed swap.
type SwapTransaction struct {
	TransactionID string  `json:"transaction_id"` // TransactionID is a unique identifier for the settlement.
	Timestamp     int64   `json:"timestamp"`      // Timestamp is the Unix time (seconds) the swap was confirmed.
	Holder        string  `json:"holder"`         // Holder is the wallet the swap is settled for.
	SourceSymbol  string  `json:"source_symbol"`  // SourceSymbol is the instrument being sold.
	TargetSymbol  string  `json:"target_symbol"`  // TargetSymbol is the instrument being bought.
	SourceAmount  float64 `json:"source_amount"`  // SourceAmount is the confirmed amount of SourceSymbol.
	TargetAmount  string  `json:"target_amount"`  // TargetAmount is the displayed converted amount.
	Rate          float64 `json:"rate"`           // Rate is the exchange rate frozen at preview time.
	Operation     string  `json:"operation"`      // Operation is always "swap".
}
