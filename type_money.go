package passbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in minor units (e.g. paise, cents).
// Keeping an integer representation makes additions exact: repeated small
// transactions can never drift the balance away from the sum of the history.
type Money struct {
	cents int64
}

// Cents returns a Money holding the given amount of minor units.
func Cents(v int64) Money { return Money{cents: v} }

// ParseAmount parses a decimal string with at most two fraction digits into
// a Money. Anything else (bad syntax, three or more fraction digits) is an
// ErrInvalidAmount: amounts are converted to minor units on entry, never
// accumulated as floats.
func ParseAmount(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	shifted := d.Shift(2)
	if !shifted.IsInteger() {
		return Money{}, ErrInvalidAmount
	}
	if !shifted.BigInt().IsInt64() {
		return Money{}, ErrInvalidAmount
	}
	return Money{cents: shifted.IntPart()}, nil
}

// Cents returns the value in minor units.
func (m Money) Cents() int64 { return m.cents }

// Decimal returns the value in major units as an exact decimal.
func (m Money) Decimal() decimal.Decimal { return decimal.New(m.cents, -2) }

// String returns the plain decimal representation in major units.
func (m Money) String() string { return m.Decimal().StringFixed(2) }

// Display formats the value for the given ISO currency code, with symbol
// and thousand separators.
func (m Money) Display(currency string) string {
	return money.New(m.cents, currency).Display()
}

// SignedDisplay is like Display but keeps an explicit "+" on inflows, the
// way history entries are rendered.
func (m Money) SignedDisplay(currency string) string {
	if m.cents > 0 {
		return "+" + m.Display(currency)
	}
	return m.Display(currency)
}

func (m Money) IsZero() bool     { return m.cents == 0 }
func (m Money) IsPositive() bool { return m.cents > 0 }
func (m Money) IsNegative() bool { return m.cents < 0 }

func (m Money) Equal(n Money) bool       { return m.cents == n.cents }
func (m Money) LessThan(n Money) bool    { return m.cents < n.cents }
func (m Money) GreaterThan(n Money) bool { return m.cents > n.cents }

func (m Money) Add(n Money) Money { return Money{cents: m.cents + n.cents} }
func (m Money) Sub(n Money) Money { return Money{cents: m.cents - n.cents} }
func (m Money) Neg() Money        { return Money{cents: -m.cents} }

// MarshalJSON encodes the value as a plain decimal number in major units,
// the shape the accounts document has always used.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.Decimal().MarshalJSON()
}

// UnmarshalJSON decodes a decimal number in major units. Values written by
// the historical float-based implementation may carry binary noise beyond
// two fraction digits; those are rounded to the nearest minor unit rather
// than rejected, so old documents keep loading.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.cents = d.Round(2).Shift(2).IntPart()
	return nil
}
