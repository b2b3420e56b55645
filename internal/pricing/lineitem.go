package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind distinguishes catalog products from ancillary cost lines.
type Kind int

const (
	KindProduct Kind = iota
	KindAncillary
)

// ProductType identifies which catalog a product line references.
type ProductType string

const (
	ProductPanel    ProductType = "panel"
	ProductInverter ProductType = "inverter"
	ProductBattery  ProductType = "battery"
)

// Category tags ancillary lines; product lines use CategoryProduct.
type Category string

const (
	CategoryProduct   Category = "product"
	CategoryLabor     Category = "labor"
	CategoryMaterials Category = "materials"
	CategoryPermits   Category = "permits"
	CategoryStructure Category = "structure"
	CategoryTransport Category = "transport"
)

// ProductRef points a product line at its catalog entry.
type ProductRef struct {
	Type  ProductType
	ID    uuid.UUID
	Brand string
	Model string
}

// LineItem is one row of a quotation. PartialValue, Profit and Total are
// always derived from Quantity, UnitPrice and ProfitRate — they are never
// edited independently.
type LineItem struct {
	Kind        Kind
	Product     *ProductRef // nil for ancillary lines
	Description string
	Category    Category
	Unit        string // display unit for ancillary lines (kW, panel, global)
	// PersistedID carries the backend row id for lines that already exist.
	// nil marks a new line; the distinction drives insert-vs-update on save.
	PersistedID *uuid.UUID

	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	ProfitRate Fraction

	PartialValue decimal.Decimal
	Profit       decimal.Decimal
	Total        decimal.Decimal
}

// Field names the three editable inputs of a line item.
type Field int

const (
	FieldQuantity Field = iota
	FieldUnitPrice
	FieldProfitPercent // edited as 0–100, stored as a fraction
)

// RecomputeLineItem applies a single field edit and re-derives the three
// computed values. Negative input is floored to zero rather than rejected.
// Derivation order is partial → profit → total so repeated recomputation is
// bit-stable.
func RecomputeLineItem(item LineItem, field Field, value decimal.Decimal) LineItem {
	value = clampNonNegative(value)
	switch field {
	case FieldQuantity:
		item.Quantity = value
	case FieldUnitPrice:
		item.UnitPrice = value
	case FieldProfitPercent:
		item.ProfitRate = DisplayPercent{value}.ToFraction()
	}
	return item.Recalculated()
}

// Recalculated returns a copy with the derived fields recomputed from the
// three inputs (clamped non-negative first).
func (li LineItem) Recalculated() LineItem {
	li.Quantity = clampNonNegative(li.Quantity)
	li.UnitPrice = clampNonNegative(li.UnitPrice)
	li.ProfitRate = Fraction{clampNonNegative(li.ProfitRate.Decimal)}

	li.PartialValue = li.Quantity.Mul(li.UnitPrice)
	li.Profit = li.ProfitRate.Of(li.PartialValue)
	li.Total = li.PartialValue.Add(li.Profit)
	return li
}

// clone deep-copies the line, including its pointer fields, so edit sessions
// never alias rows between the committed and working copies.
func (li LineItem) clone() LineItem {
	if li.Product != nil {
		ref := *li.Product
		li.Product = &ref
	}
	if li.PersistedID != nil {
		id := *li.PersistedID
		li.PersistedID = &id
	}
	return li
}
