package models

import "time"

// Field identifies a validated field of the swap form.
type Field string

// Validated form fields
const (
	FieldSourceAmount     Field = "source_amount"
	FieldSourceInstrument Field = "source_instrument"
	FieldTargetInstrument Field = "target_instrument"
)

// SwapRequest is the editable state of the swap form.
type SwapRequest struct {
	SourceSymbol     string `json:"source_symbol"`
	TargetSymbol     string `json:"target_symbol"`
	SourceAmountText string `json:"source_amount"`
}

// ValidationError describes why a single form field is invalid.
type ValidationError struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds at most one error per field.
type ValidationErrors map[Field]ValidationError

// Has reports whether the field currently carries an error.
func (e ValidationErrors) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

// FormState is a read-only view of the swap form and everything derived from it.
// swagger:model FormState
type FormState struct {
	Request          SwapRequest      `json:"request"`
	Source           *Instrument      `json:"source,omitempty"`
	Target           *Instrument      `json:"target,omitempty"`
	TargetAmountText string           `json:"target_amount"`
	ExchangeRate     float64          `json:"exchange_rate"`
	ExchangeRateText string           `json:"exchange_rate_text,omitempty"`
	SourceBalance    float64          `json:"source_balance"`
	Errors           ValidationErrors `json:"errors"`
	Submittable      bool             `json:"submittable"`
}

// SwapPreview is the frozen snapshot a user confirms. It is never re-derived.
// swagger:model SwapPreview
type SwapPreview struct {
	Request          SwapRequest `json:"request"`
	Source           Instrument  `json:"source"`
	Target           Instrument  `json:"target"`
	SourceAmount     float64     `json:"source_amount"`
	TargetAmountText string      `json:"target_amount"`
	ExchangeRate     float64     `json:"exchange_rate"`
	ExchangeRateText string      `json:"exchange_rate_text"`
	SourceBalance    float64     `json:"source_balance"`
	CreatedAt        time.Time   `json:"created_at"`
}

// SubmissionStatus is the state of the submission lifecycle.
type SubmissionStatus string

// Submission lifecycle states
const (
	StatusIdle       SubmissionStatus = "idle"
	StatusPreviewing SubmissionStatus = "previewing"
	StatusConfirming SubmissionStatus = "confirming"
	StatusSettled    SubmissionStatus = "settled"
)

// SwapSubmission is the current submission as seen by callers.
// swagger:model SwapSubmission
type SwapSubmission struct {
	ID        string           `json:"id,omitempty"`
	Status    SubmissionStatus `json:"status"`
	Preview   *SwapPreview     `json:"preview,omitempty"`
	StartedAt time.Time        `json:"started_at,omitempty"`
	SettledAt time.Time        `json:"settled_at,omitempty"`
	LastError string           `json:"last_error,omitempty"`
}

// SwapStateResponse combines the form and the submission for one holder
// swagger:model SwapStateResponse
type SwapStateResponse struct {
	Holder     string         `json:"holder"`
	Form       FormState      `json:"form"`
	Submission SwapSubmission `json:"submission"`
}

// UpdateFormRequest represents a partial edit of the swap form
// swagger:model UpdateFormRequest
type UpdateFormRequest struct {
	// Source instrument symbol
	// example: USD
	SourceSymbol *string `json:"source_symbol,omitempty"`

	// Target instrument symbol
	// example: ETH
	TargetSymbol *string `json:"target_symbol,omitempty"`

	// Free-typed source amount
	// example: 1000
	SourceAmount *string `json:"source_amount,omitempty"`
}

// ErrorResponse represents an error response of the swap API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: swap is not submittable
	Error string `json:"error"`
}

// SwapActionErrorResponse is returned when a swap action is rejected. State
// carries the field errors that explain the rejection.
// swagger:model SwapActionErrorResponse
type SwapActionErrorResponse struct {
	// Error message
	// example: swap is not submittable
	Error string `json:"error"`

	State SwapStateResponse `json:"state"`
}
