// Package numeric supplies Amount, an arbitrary-precision alternative to
// book.Ticks for embedders pricing in fiat or crypto pairs that need
// sub-tick precision rather than an integer tick count.
package numeric

import "github.com/shopspring/decimal"

// Amount wraps decimal.Decimal and satisfies book.Number[Amount]. The zero
// value is a valid zero amount, matching decimal.Decimal's own zero-value
// contract.
type Amount struct {
	d decimal.Decimal
}

// NewAmount builds an Amount from a decimal.Decimal.
func NewAmount(d decimal.Decimal) Amount { return Amount{d: d} }

// NewAmountFromFloat builds an Amount from a float64, for tests and
// examples; production callers should prefer NewAmountFromString or
// NewAmount to avoid float imprecision.
func NewAmountFromFloat(f float64) Amount { return Amount{d: decimal.NewFromFloat(f)} }

// NewAmountFromString parses a decimal string into an Amount.
func NewAmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d: d}, nil
}

// Decimal returns the underlying decimal.Decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.d }

func (a Amount) Add(other Amount) Amount { return Amount{d: a.d.Add(other.d)} }

func (a Amount) Sub(other Amount) Amount { return Amount{d: a.d.Sub(other.d)} }

func (a Amount) Compare(other Amount) int { return a.d.Cmp(other.d) }

func (a Amount) IsZero() bool { return a.d.IsZero() }

func (a Amount) String() string { return a.d.String() }
