// Package pricing implements the commercial quotation cost engine: line-item
// arithmetic, panel quantity derivation from target power, and the layered
// markup summary. Everything here is pure computation over decimals — no I/O,
// no persistence, no clock.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Fraction is a percentage stored as a value in [0, 1] (0.19 = 19%).
// The engine and the database only ever deal in fractions.
type Fraction struct{ decimal.Decimal }

// DisplayPercent is the 0–100 representation the UI edits.
// Crossing the boundary in either direction goes through exactly one of the
// two conversions below; no call site multiplies or divides by 100 inline.
type DisplayPercent struct{ decimal.Decimal }

// NewFraction wraps a raw decimal already expressed in [0, 1].
func NewFraction(d decimal.Decimal) Fraction { return Fraction{d} }

// FractionFromFloat builds a Fraction from a literal rate such as 0.19.
func FractionFromFloat(f float64) Fraction { return Fraction{decimal.NewFromFloat(f)} }

// ToDisplay converts a stored fraction to its 0–100 form.
func (f Fraction) ToDisplay() DisplayPercent { return DisplayPercent{f.Mul(hundred)} }

// ToFraction converts a user-facing 0–100 percentage to storage form.
func (p DisplayPercent) ToFraction() Fraction { return Fraction{p.Div(hundred)} }

// Of returns base scaled by the fraction.
func (f Fraction) Of(base decimal.Decimal) decimal.Decimal { return base.Mul(f.Decimal) }

// clampNonNegative floors negative numeric entry to zero. This is a UI
// ergonomics rule, not a validation failure: nothing is raised or logged.
func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
