package pricing

// creationProfitByCategory fixes the per-line profit rate applied when a
// quotation is first assembled: every catalog product line opens at 25% and
// the permits/procedures line at 5%. Only the creation path consults this
// table — once the quotation exists, per-line rates are freely editable.
var creationProfitByCategory = map[Category]Fraction{
	CategoryProduct: FractionFromFloat(0.25),
	CategoryPermits: FractionFromFloat(0.05),
}

// CreationProfitRate returns the fixed creation-time profit rate for a
// category, if the policy defines one.
func CreationProfitRate(c Category) (Fraction, bool) {
	f, ok := creationProfitByCategory[c]
	return f, ok
}

// ApplyCreationPolicy overrides the profit rate of a freshly built line when
// the policy covers its category, then re-derives the computed fields.
func ApplyCreationPolicy(li LineItem) LineItem {
	if rate, ok := CreationProfitRate(li.Category); ok {
		li.ProfitRate = rate
	}
	return li.Recalculated()
}
