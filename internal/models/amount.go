package models

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// amountScale is the number of minor units per major unit (centavos per peso).
const amountScale = 2

// Amount is a monetary value in minor units.
type Amount int64

// ParseAmount parses a decimal string such as "30" or "30.50" into minor units.
// More than two fractional digits, non-numeric input and values that do not fit
// into int64 minor units are rejected with ErrInvalidAmount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	return AmountFromDecimal(d)
}

// AmountFromDecimal converts a decimal major-unit value into minor units.
func AmountFromDecimal(d decimal.Decimal) (Amount, error) {
	minor := d.Shift(amountScale)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("%w: at most %d decimal places are allowed", ErrInvalidAmount, amountScale)
	}
	if minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || minor.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, fmt.Errorf("%w: value out of range", ErrInvalidAmount)
	}
	return Amount(minor.IntPart()), nil
}

// Decimal returns the amount in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -amountScale)
}

// String renders the amount with two fractional digits.
func (a Amount) String() string {
	return a.Decimal().StringFixed(amountScale)
}

// IsPositive reports whether the amount is greater than zero.
func (a Amount) IsPositive() bool {
	return a > 0
}

// Add returns a+b, failing with ErrInvalidAmount when the sum leaves the int64 range.
func (a Amount) Add(b Amount) (Amount, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %s + %s is out of range", ErrInvalidAmount, a, b)
	}
	return a + b, nil
}

// MarshalJSON renders the amount as a JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}
	raw = bytes.Trim(raw, `"`)
	parsed, err := ParseAmount(string(raw))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
