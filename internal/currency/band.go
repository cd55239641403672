package currency

import (
	"github.com/rpgo/usdfmt/internal/localization"
	"github.com/rpgo/usdfmt/pkg/decimal"
)

// Band names.
const (
	BandZero     = "zero"
	BandDust     = "dust"
	BandMicro    = "micro"
	BandStandard = "standard"
	BandLarge    = "large"
)

// Band is one row of the magnitude decision table. Bands are checked in
// order and the first one whose upper bound admits the value is used.
type Band struct {
	Name string
	// Upper is the exclusive upper bound, or inclusive when Inclusive is set.
	Upper     decimal.Money
	Inclusive bool
	Unbounded bool
	// Precision is the number of decimal places rendered.
	Precision int32
	Grouping  bool
	// Literal replaces the rounded amount when set.
	Literal string
	// Phrase is a localization key rendered before the amount.
	Phrase string
}

func mustMoney(s string) decimal.Money {
	m, err := decimal.NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// defaultBands covers every value in [0, MaxValue].
var defaultBands = []Band{
	{Name: BandZero, Upper: decimal.Zero(), Inclusive: true, Precision: 6, Literal: "0.000000"},
	{Name: BandDust, Upper: mustMoney("0.000001"), Precision: 6, Literal: "0.000001", Phrase: localization.LessThan},
	{Name: BandMicro, Upper: mustMoney("1"), Precision: 6},
	{Name: BandStandard, Upper: mustMoney("1000"), Precision: 2},
	{Name: BandLarge, Unbounded: true, Precision: 0, Grouping: true},
}

// Bands returns a copy of the decision table.
func Bands() []Band {
	return append([]Band(nil), defaultBands...)
}

func (b Band) admits(m decimal.Money) bool {
	switch {
	case b.Unbounded:
		return true
	case b.Inclusive:
		return !b.Upper.LessThan(m)
	default:
		return m.LessThan(b.Upper)
	}
}

// overflows reports whether rounding pushes m to or past the upper bound.
func (b Band) overflows(m decimal.Money) bool {
	if b.Unbounded || b.Literal != "" {
		return false
	}
	return m.RoundHalfUp(b.Precision).GreaterThanOrEqual(b.Upper)
}

func (b Band) amount(m decimal.Money) string {
	switch {
	case b.Literal != "":
		return b.Literal
	case b.Grouping:
		return m.Grouped()
	default:
		return m.StringFixed(b.Precision)
	}
}

// UpperString renders the bound for display.
func (b Band) UpperString() string {
	switch {
	case b.Unbounded:
		return "+inf"
	case b.Inclusive:
		return "<= " + b.Upper.Decimal.String()
	default:
		return "< " + b.Upper.Decimal.String()
	}
}

// selectBand picks the band for m, promoting past bands whose rounding
// would reach their own upper bound.
func selectBand(bands []Band, m decimal.Money) Band {
	for i, b := range bands {
		if !b.admits(m) {
			continue
		}
		if b.overflows(m) && i+1 < len(bands) {
			continue
		}
		return b
	}
	return bands[len(bands)-1]
}
