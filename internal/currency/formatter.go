// Package currency renders USD magnitudes as display strings with
// magnitude-dependent precision.
package currency

import (
	"fmt"
	"math"

	"github.com/rpgo/usdfmt/internal/localization"
	"github.com/rpgo/usdfmt/pkg/decimal"
)

const (
	DefaultSymbol      = "$"
	DefaultSuffix      = " ₫"
	DefaultPlaceholder = "N/A"

	// MaxValue is the largest value accepted.
	MaxValue = 1e18
)

// Formatter formats values against an injected localization table.
// It holds no mutable state and is safe for concurrent use.
type Formatter struct {
	table       localization.Table
	symbol      string
	suffix      string
	placeholder string
	logger      Logger
	bands       []Band
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithSymbol sets the prefix placed before the amount.
func WithSymbol(s string) Option { return func(f *Formatter) { f.symbol = s } }

// WithSuffix sets the text appended after the amount, including any leading space.
func WithSuffix(s string) Option { return func(f *Formatter) { f.suffix = s } }

// WithPlaceholder sets what Display renders for invalid input.
func WithPlaceholder(s string) Option { return func(f *Formatter) { f.placeholder = s } }

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l Logger) Option {
	return func(f *Formatter) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFormatter creates a formatter. Tables implementing localization.Requirer
// are checked for every phrase the bands use.
func NewFormatter(table localization.Table, opts ...Option) (*Formatter, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: localization table is required", ErrInvalidArgument)
	}
	f := &Formatter{
		table:       table,
		symbol:      DefaultSymbol,
		suffix:      DefaultSuffix,
		placeholder: DefaultPlaceholder,
		logger:      NopLogger{},
		bands:       defaultBands,
	}
	for _, opt := range opts {
		opt(f)
	}
	if r, ok := table.(localization.Requirer); ok {
		var keys []string
		for _, b := range f.bands {
			if b.Phrase != "" {
				keys = append(keys, b.Phrase)
			}
		}
		if err := r.Require(keys...); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func validate(value float64) error {
	switch {
	case math.IsNaN(value):
		return fmt.Errorf("%w: NaN", ErrInvalidArgument)
	case math.IsInf(value, 0):
		return fmt.Errorf("%w: %v", ErrInvalidArgument, value)
	case value < 0:
		return fmt.Errorf("%w: negative value %v", ErrInvalidArgument, value)
	case value > MaxValue:
		return fmt.Errorf("%w: %v exceeds %v", ErrOutOfRange, value, MaxValue)
	}
	return nil
}

func (f *Formatter) resolve(value float64) (Band, decimal.Money, error) {
	if err := validate(value); err != nil {
		return Band{}, decimal.Money{}, err
	}
	if value == 0 {
		// folds negative zero
		value = 0
	}
	m := decimal.NewMoney(value)
	return selectBand(f.bands, m), m, nil
}

// BandOf reports which band value is rendered in.
func (f *Formatter) BandOf(value float64) (Band, error) {
	b, _, err := f.resolve(value)
	return b, err
}

// FormatUSDValue renders value, e.g. 0.1234 as "$0.123400 ₫" and
// 123456.789 as "$123,457 ₫".
func (f *Formatter) FormatUSDValue(value float64) (string, error) {
	b, m, err := f.resolve(value)
	if err != nil {
		return "", err
	}
	out := f.symbol + b.amount(m) + f.suffix
	if b.Phrase != "" {
		out = f.table.Lookup(b.Phrase) + " " + out
	}
	f.logger.Debugf("formatted %v in band %s as %q", value, b.Name, out)
	return out, nil
}

// Display is FormatUSDValue with the placeholder rendered for invalid input.
func (f *Formatter) Display(value float64) string {
	s, err := f.FormatUSDValue(value)
	if err != nil {
		f.logger.Warnf("cannot format %v: %v", value, err)
		return f.placeholder
	}
	return s
}

// Placeholder returns the text Display renders for invalid input.
func (f *Formatter) Placeholder() string { return f.placeholder }

// FormatUSDValue formats value with the default options.
func FormatUSDValue(table localization.Table, value float64) (string, error) {
	f, err := NewFormatter(table)
	if err != nil {
		return "", err
	}
	return f.FormatUSDValue(value)
}
