package services

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-currency-swap/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// DefaultMaxDecimals is the number of decimals shown for regular values.
	DefaultMaxDecimals = 6

	smallValueThreshold = 0.01
	smallValueDecimals  = 8
	balanceDecimals     = 3

	// a float64 has at most 1074 binary fraction digits, so this many decimal
	// digits hold its exact value
	exactDecimals = 1074
)

// ExchangeRate returns how many units of to one unit of from buys.
// Missing instruments or a zero price yield 0.
func ExchangeRate(from, to *models.Instrument) float64 {
	if from == nil || to == nil || from.Price == 0 || to.Price == 0 {
		return 0
	}
	return from.Price / to.Price
}

// Convert converts amount of from into to.
func Convert(amount float64, from, to *models.Instrument) float64 {
	return amount * ExchangeRate(from, to)
}

// FormatDisplay formats value with up to DefaultMaxDecimals decimals.
func FormatDisplay(value float64) string {
	return FormatDisplayN(value, DefaultMaxDecimals)
}

// FormatDisplayN formats a numeric value for display.
// Zero is "0", values below 0.01 always get 8 decimals so small conversions never
// read as zero, everything else gets up to maxDecimals with trailing zeros removed.
func FormatDisplayN(value float64, maxDecimals int) string {
	if value == 0 {
		return "0"
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	d := exactDecimal(value)
	if value < smallValueThreshold {
		return d.StringFixed(smallValueDecimals)
	}

	s := d.StringFixed(int32(maxDecimals))
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// exactDecimal converts value without first shortening it to its round-trip
// form, so rounding sees the binary value (0.1234565 is just below the half step).
func exactDecimal(value float64) decimal.Decimal {
	return decimal.RequireFromString(new(big.Float).SetFloat64(value).Text('f', exactDecimals))
}

// FormatRate renders a rate as "1 FROM = <rate> TO".
func FormatRate(from, to *models.Instrument, rate float64) string {
	if from == nil || to == nil {
		return ""
	}
	return fmt.Sprintf("1 %s = %s %s", from.Symbol, FormatDisplay(rate), to.Symbol)
}

// FormatBalance renders a balance with digit grouping and at most three decimals.
func FormatBalance(value float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(balanceDecimals)))
}
