package pricing

import "github.com/shopspring/decimal"

var wattsPerKw = decimal.NewFromInt(1000)

// DeriveProductQuantity returns the smallest integer count of units such that
// count × unitPowerWatts covers targetPowerKwp. It always rounds UP — partial
// panels cannot be purchased, so 5.5 kWp on 415 W panels needs 14, never 13.
// Non-positive input yields 0: this is a convenience computation for a line
// that stays editable, not a validation gate.
func DeriveProductQuantity(targetPowerKwp, unitPowerWatts decimal.Decimal) int64 {
	if targetPowerKwp.Sign() <= 0 || unitPowerWatts.Sign() <= 0 {
		return 0
	}
	return targetPowerKwp.Mul(wattsPerKw).Div(unitPowerWatts).Ceil().IntPart()
}

// Parameters holds the layered markup rates of a quotation, all fractions.
type Parameters struct {
	CommercialManagement Fraction
	Administration       Fraction
	Contingency          Fraction
	Profit               Fraction
	ProfitIVA            Fraction
	Withholding          Fraction
}

// DefaultParameters returns the company-standard rates used when a stored
// quotation omits a percentage. They only fill missing values at load time;
// a stored non-null rate is never overwritten.
func DefaultParameters() Parameters {
	return Parameters{
		CommercialManagement: FractionFromFloat(0.03),
		Administration:       FractionFromFloat(0.08),
		Contingency:          FractionFromFloat(0.02),
		Profit:               FractionFromFloat(0.05),
		ProfitIVA:            FractionFromFloat(0.19),
		Withholding:          FractionFromFloat(0.035),
	}
}

// CostSummary is the fully resolved layered breakdown. Every field is derived;
// none is stored independently of a recomputation.
type CostSummary struct {
	Subtotal             decimal.Decimal
	CommercialManagement decimal.Decimal
	Subtotal2            decimal.Decimal
	Administration       decimal.Decimal
	Contingency          decimal.Decimal
	Profit               decimal.Decimal
	ProfitIVA            decimal.Decimal
	Subtotal3            decimal.Decimal
	Withholdings         decimal.Decimal
	FinalPrice           decimal.Decimal
}

// ComputeCostSummary runs the layered markup over the complete item list.
//
// Invariants that must not be "improved":
//   - administration, contingency and profit are each a percentage of
//     subtotal2 — three independent rates on the same base, summed afterward.
//     They do not chain on each other's running total.
//   - the IVA layer applies to the profit amount alone.
//   - withholdings are a pass-through surcharge: computed on subtotal3 and
//     ADDED to reach the final price. This was an audited business correction;
//     it is additive, not a deduction.
//
// The function is total over clamped non-negative inputs and pure: identical
// inputs produce bit-identical output.
func ComputeCostSummary(products, ancillary []LineItem, p Parameters) CostSummary {
	subtotal := decimal.Zero
	for _, li := range products {
		subtotal = subtotal.Add(li.Total)
	}
	for _, li := range ancillary {
		subtotal = subtotal.Add(li.Total)
	}

	commercial := p.CommercialManagement.Of(subtotal)
	subtotal2 := subtotal.Add(commercial)

	administration := p.Administration.Of(subtotal2)
	contingency := p.Contingency.Of(subtotal2)
	profit := p.Profit.Of(subtotal2)
	profitIVA := p.ProfitIVA.Of(profit)

	subtotal3 := subtotal2.Add(administration).Add(contingency).Add(profit).Add(profitIVA)

	withholdings := p.Withholding.Of(subtotal3)
	finalPrice := subtotal3.Add(withholdings)

	return CostSummary{
		Subtotal:             subtotal,
		CommercialManagement: commercial,
		Subtotal2:            subtotal2,
		Administration:       administration,
		Contingency:          contingency,
		Profit:               profit,
		ProfitIVA:            profitIVA,
		Subtotal3:            subtotal3,
		Withholdings:         withholdings,
		FinalPrice:           finalPrice,
	}
}
