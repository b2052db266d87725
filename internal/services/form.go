package services

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-currency-swap/internal/models"
)

var (
	// ErrInvalidAmount is returned when typed amount text is not a plain decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Validation messages
const (
	MsgSelectSource      = "Please select a token to swap from"
	MsgSelectTarget      = "Please select a token to swap to"
	MsgTokenUnavailable  = "Token %s is not available"
	MsgSameToken         = "Cannot swap to the same token"
	MsgEnterAmount       = "Please enter an amount"
	MsgInvalidAmount     = "Please enter a valid amount"
	MsgInsufficientFunds = "Insufficient balance. You have %s %s"
)

// digits, an optional single decimal point, digits
var amountPattern = regexp.MustCompile(`^\d*\.?\d*$`)

// InstrumentLookup resolves symbols against the current price catalog.
type InstrumentLookup interface {
	Lookup(symbol string) (models.Instrument, bool)
}

// BalanceLookup answers available balance queries.
type BalanceLookup interface {
	BalanceOf(holder, symbol string) float64
}

// Validate derives the full set of field errors from req. It keeps no memory of
// earlier results; each field is checked independently and gets at most one error.
func Validate(req models.SwapRequest, holder string, catalog InstrumentLookup, ledger BalanceLookup) models.ValidationErrors {
	return resolve(req, holder, catalog, ledger).validate()
}

// resolution is one consistent read of the catalog and ledger for a request.
type resolution struct {
	req      models.SwapRequest
	source   models.Instrument
	sourceOK bool
	target   models.Instrument
	targetOK bool
	balance  float64
}

func resolve(req models.SwapRequest, holder string, catalog InstrumentLookup, ledger BalanceLookup) resolution {
	res := resolution{req: req}
	res.source, res.sourceOK = lookup(catalog, req.SourceSymbol)
	res.target, res.targetOK = lookup(catalog, req.TargetSymbol)
	if res.sourceOK {
		res.balance = ledger.BalanceOf(holder, res.source.Symbol)
	}
	return res
}

func (res resolution) validate() models.ValidationErrors {
	req := res.req
	errs := models.ValidationErrors{}
	add := func(field models.Field, msg string) {
		errs[field] = models.ValidationError{Field: field, Message: msg}
	}

	switch {
	case req.SourceSymbol == "":
		add(models.FieldSourceInstrument, MsgSelectSource)
	case !res.sourceOK:
		add(models.FieldSourceInstrument, fmt.Sprintf(MsgTokenUnavailable, req.SourceSymbol))
	}

	switch {
	case req.TargetSymbol == "":
		add(models.FieldTargetInstrument, MsgSelectTarget)
	case req.TargetSymbol == req.SourceSymbol:
		add(models.FieldTargetInstrument, MsgSameToken)
	case !res.targetOK:
		add(models.FieldTargetInstrument, fmt.Sprintf(MsgTokenUnavailable, req.TargetSymbol))
	}

	// An unparsable amount is reported by the required rule only, so the
	// sufficiency rule never stacks a second message on top of it.
	amount, parsed := parseAmount(req.SourceAmountText)
	switch {
	case req.SourceAmountText == "":
		add(models.FieldSourceAmount, MsgEnterAmount)
	case !parsed:
		add(models.FieldSourceAmount, MsgInvalidAmount)
	case res.sourceOK:
		if res.balance == 0 || amount > res.balance {
			add(models.FieldSourceAmount, fmt.Sprintf(MsgInsufficientFunds, FormatBalance(res.balance), res.source.Symbol))
		}
	}

	return errs
}

// targetAmount converts the typed amount with the resolved prices.
func (res resolution) targetAmount() string {
	amount, ok := parseAmount(res.req.SourceAmountText)
	if !ok || amount <= 0 || math.IsInf(amount, 0) || !res.sourceOK || !res.targetOK {
		return ""
	}
	return FormatDisplay(Convert(amount, &res.source, &res.target))
}

// SwapFormController owns the editable swap form of one holder and everything derived from it.
type SwapFormController struct {
	mu      sync.Mutex
	holder  string
	catalog InstrumentLookup
	ledger  BalanceLookup

	req              models.SwapRequest
	resolved         resolution
	targetAmountText string
	errors           models.ValidationErrors
	valid            bool

	amountErrorHidden bool
}

// NewSwapFormController creates a controller with the given initial selection.
// Amount text that does not match the amount grammar is dropped.
func NewSwapFormController(holder string, catalog InstrumentLookup, ledger BalanceLookup, initial models.SwapRequest) *SwapFormController {
	if !amountPattern.MatchString(initial.SourceAmountText) {
		initial.SourceAmountText = ""
	}
	c := &SwapFormController{
		holder:  holder,
		catalog: catalog,
		ledger:  ledger,
		req:     initial,
	}
	c.recompute(initial.SourceAmountText == "")
	return c
}

// State returns the form as of the last edit or revalidation. Every derived
// field comes from the same catalog and ledger read.
func (c *SwapFormController) State() models.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state()
}

// Apply performs a partial edit. Amount text must match the amount grammar,
// otherwise nothing changes and ErrInvalidAmount is returned.
func (c *SwapFormController) Apply(edit models.UpdateFormRequest) (models.FormState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if edit.SourceAmount != nil && !amountPattern.MatchString(*edit.SourceAmount) {
		return c.state(), fmt.Errorf("%w: %q", ErrInvalidAmount, *edit.SourceAmount)
	}

	if edit.SourceSymbol != nil {
		c.req.SourceSymbol = *edit.SourceSymbol
	}
	if edit.TargetSymbol != nil {
		c.req.TargetSymbol = *edit.TargetSymbol
	}
	if edit.SourceAmount != nil {
		c.req.SourceAmountText = *edit.SourceAmount
	}
	c.recompute(false)
	return c.state(), nil
}

// SetSourceSymbol selects the instrument to sell.
func (c *SwapFormController) SetSourceSymbol(symbol string) models.FormState {
	st, _ := c.Apply(models.UpdateFormRequest{SourceSymbol: &symbol})
	return st
}

// SetTargetSymbol selects the instrument to buy.
func (c *SwapFormController) SetTargetSymbol(symbol string) models.FormState {
	st, _ := c.Apply(models.UpdateFormRequest{TargetSymbol: &symbol})
	return st
}

// SetSourceAmountText sets the typed amount.
func (c *SwapFormController) SetSourceAmountText(text string) (models.FormState, error) {
	return c.Apply(models.UpdateFormRequest{SourceAmount: &text})
}

// SwapDirection exchanges source and target and carries the computed target
// amount over as the new source amount.
func (c *SwapFormController) SwapDirection() models.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.req.SourceSymbol, c.req.TargetSymbol = c.req.TargetSymbol, c.req.SourceSymbol
	c.req.SourceAmountText = c.targetAmountText
	c.recompute(false)
	return c.state()
}

// UseMaxBalance fills in the whole source balance and clears the amount error
// until the next full validation pass.
func (c *SwapFormController) UseMaxBalance() models.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := resolve(c.req, c.holder, c.catalog, c.ledger)
	if !res.sourceOK {
		return c.state()
	}
	c.req.SourceAmountText = strconv.FormatFloat(res.balance, 'f', -1, 64)
	c.recompute(true)
	return c.state()
}

// ClearAmount empties the source and target amounts.
func (c *SwapFormController) ClearAmount() models.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.req.SourceAmountText = ""
	c.recompute(true)
	return c.state()
}

// Revalidate re-runs derivation and validation against the current catalog and
// balances. An empty amount whose error is hidden stays hidden.
func (c *SwapFormController) Revalidate() models.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recompute(c.amountErrorHidden && c.req.SourceAmountText == "")
	return c.state()
}

// Submittable runs a full validation pass and reports whether the form can be submitted.
func (c *SwapFormController) Submittable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recompute(false)
	return c.state().Submittable
}

// Preview validates the form and, if submittable, freezes the figures the user confirms.
func (c *SwapFormController) Preview(now time.Time) (models.SwapPreview, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recompute(false)
	st := c.state()
	if !st.Submittable {
		return models.SwapPreview{}, ErrNotSubmittable
	}

	amount, _ := parseAmount(c.req.SourceAmountText)
	return models.SwapPreview{
		Request:          c.req,
		Source:           *st.Source,
		Target:           *st.Target,
		SourceAmount:     amount,
		TargetAmountText: st.TargetAmountText,
		ExchangeRate:     st.ExchangeRate,
		ExchangeRateText: st.ExchangeRateText,
		SourceBalance:    st.SourceBalance,
		CreatedAt:        now,
	}, nil
}

func (c *SwapFormController) recompute(clearAmountError bool) {
	c.resolved = resolve(c.req, c.holder, c.catalog, c.ledger)
	c.errors = c.resolved.validate()
	c.valid = len(c.errors) == 0
	c.amountErrorHidden = clearAmountError
	if clearAmountError {
		delete(c.errors, models.FieldSourceAmount)
	}
	c.targetAmountText = c.resolved.targetAmount()
}

func (c *SwapFormController) state() models.FormState {
	res := c.resolved
	st := models.FormState{
		Request:          c.req,
		TargetAmountText: c.targetAmountText,
		Errors:           maps.Clone(c.errors),
	}
	if res.sourceOK {
		source := res.source
		st.Source = &source
		st.SourceBalance = res.balance
	}
	if res.targetOK {
		target := res.target
		st.Target = &target
	}
	if res.sourceOK && res.targetOK {
		st.ExchangeRate = ExchangeRate(&res.source, &res.target)
		st.ExchangeRateText = FormatRate(&res.source, &res.target, st.ExchangeRate)
	}
	st.Submittable = c.valid && res.sourceOK && res.targetOK
	return st
}

func lookup(catalog InstrumentLookup, symbol string) (models.Instrument, bool) {
	if symbol == "" {
		return models.Instrument{}, false
	}
	return catalog.Lookup(symbol)
}

// parseAmount accepts out-of-range digit strings as ±Inf or 0, so an
// oversized amount reads as more than any balance.
func parseAmount(text string) (float64, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
