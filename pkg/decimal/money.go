package decimal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// groupPrinter renders integers with comma thousands separators.
var groupPrinter = message.NewPrinter(language.English)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64.
// The shortest decimal representation of the float is used, so 1.005 is
// held as exactly 1.005 rather than its binary approximation.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundHalfUp rounds to places decimal places, halves away from zero.
func (m Money) RoundHalfUp(places int32) Money {
	return Money{m.Decimal.Round(places)}
}

// StringFixed renders exactly places decimal places, padding with zeros.
func (m Money) StringFixed(places int32) string {
	return m.Decimal.StringFixed(places)
}

// Grouped rounds to a whole number and renders it with comma separators.
func (m Money) Grouped() string {
	return groupPrinter.Sprintf("%d", m.Decimal.Round(0).IntPart())
}

// GreaterThanOrEqual checks if this amount is greater than or equal to another
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if b.LessThan(a) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the two decimal representation.
func (m Money) String() string {
	return m.StringFixed(2)
}

// Format formats the amount as dollars with two decimals.
func (m Money) Format() string {
	return "$" + m.String()
}
