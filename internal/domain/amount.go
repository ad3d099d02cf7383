package domain

import (
	"fmt"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
)

const (
	// MaxDollars is the exclusive upper bound of the dollar part (one quadrillion).
	MaxDollars uint64 = 1_000_000_000_000_000
	// CentsScale is the number of fractional digits an Amount carries.
	CentsScale = 2
)

// CurrencyCode is the only currency the converter words.
const CurrencyCode = "USD"

// Amount is a validated, exact currency amount split into whole dollars and cents.
// The zero value is 0.00.
type Amount struct {
	dollars uint64
	cents   uint8
}

// NewAmount validates d and splits it into dollars and cents.
// It fails with an *InvalidAmountError when d is negative, has more than
// two significant fractional digits, or its dollar part is not below MaxDollars.
func NewAmount(d decimal.Decimal) (Amount, error) {
	if d.IsNeg() {
		return Amount{}, newInvalidAmountError(d.String(), ReasonNegative)
	}
	if d.MinScale() > CentsScale {
		return Amount{}, newInvalidAmountError(d.String(), ReasonPrecision)
	}
	whole, frac, ok := d.Int64(CentsScale)
	if !ok || uint64(whole) >= MaxDollars {
		return Amount{}, newInvalidAmountError(d.String(), ReasonTooLarge)
	}
	return Amount{dollars: uint64(whole), cents: uint8(frac)}, nil
}

// ParseAmount parses s as an exact decimal and validates it.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount %q: %w", s, ErrMalformedInput)
	}
	return NewAmount(d)
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", s, err))
	}
	return a
}

// NewAmountFromMoney validates a monetary amount. Only US dollars are accepted.
func NewAmountFromMoney(m money.Amount) (Amount, error) {
	if code := m.Curr().Code(); code != CurrencyCode {
		return Amount{}, newInvalidAmountError(m.String(), fmt.Sprintf("unsupported currency %s", code))
	}
	return NewAmount(m.Decimal())
}

// Dollars returns the whole dollar part.
func (a Amount) Dollars() uint64 {
	return a.dollars
}

// Cents returns the fractional part in the range [0, 99].
func (a Amount) Cents() uint8 {
	return a.cents
}

// IsZero reports whether the amount is 0.00.
func (a Amount) IsZero() bool {
	return a.dollars == 0 && a.cents == 0
}

// String returns the amount with exactly two fractional digits, e.g. "2523.04".
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", a.dollars, a.cents)
}
