package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuotationStatus is the fixed id→name status catalog. Status transitions are
// driven externally; the service only validates the target id against this
// table before writing.
type QuotationStatus struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(30);uniqueIndex;not null"`
}

// Seeded status ids.
const (
	StatusDraft      = 1
	StatusSent       = 2
	StatusPending    = 3
	StatusAccepted   = 4
	StatusRejected   = 5
	StatusContracted = 6
)

var statusNames = map[int]string{
	StatusDraft:      "Draft",
	StatusSent:       "Sent",
	StatusPending:    "Pending",
	StatusAccepted:   "Accepted",
	StatusRejected:   "Rejected",
	StatusContracted: "Contracted",
}

// StatusName resolves a status id against the fixed catalog. The catalog is
// mirrored in the database for reporting joins, but validation happens here
// so a bad id is rejected without a round trip.
func StatusName(id int) (string, bool) {
	name, ok := statusNames[id]
	return name, ok
}

// Quotation is the aggregate root of a commercial solar quotation.
//
// The six *Pct columns store markup rates as 0–1 fractions and are nullable on
// purpose: a NULL means "use the company default at display time", while a
// stored value (including zero) is never overwritten by a default.
//
// The summary block (Subtotal … TotalValue) is a persisted snapshot of the
// last computed breakdown, so the backend never recomputes independently of
// what the commercial user approved on screen.
type Quotation struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Number int       `gorm:"uniqueIndex;not null"`

	ClientID uuid.UUID `gorm:"type:uuid;index;not null"`

	ProjectName    string          `gorm:"not null"`
	TargetPowerKwp decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	SystemType     string          `gorm:"type:varchar(20);not null"` // on-grid | off-grid | hybrid
	GridType       string          `gorm:"type:varchar(20);not null"` // single-phase | two-phase | three-phase

	StatusID int `gorm:"index;not null;default:1"`

	CommercialManagementPct *decimal.Decimal `gorm:"type:decimal(6,5)"`
	AdministrationPct       *decimal.Decimal `gorm:"type:decimal(6,5)"`
	ContingencyPct          *decimal.Decimal `gorm:"type:decimal(6,5)"`
	ProfitPct               *decimal.Decimal `gorm:"type:decimal(6,5)"`
	ProfitIVAPct            *decimal.Decimal `gorm:"type:decimal(6,5)"`
	WithholdingPct          *decimal.Decimal `gorm:"type:decimal(6,5)"`

	Subtotal             decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CommercialManagement decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Subtotal2            decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Administration       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Contingency          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Profit               decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ProfitIVA            decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0;column:profit_iva"`
	Subtotal3            decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Withholdings         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalValue           decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Client       *Client         `gorm:"foreignKey:ClientID"`
	Status       *QuotationStatus `gorm:"foreignKey:StatusID"`
	UsedProducts []UsedProduct   `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
	Items        []QuotationItem `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
}

// UsedProduct is a catalog product line (panel, inverter or battery) of a
// quotation. Brand/model/price are snapshotted at quoting time so later
// catalog edits don't rewrite history.
type UsedProduct struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuotationID uuid.UUID `gorm:"type:uuid;index;not null"`

	ProductType string    `gorm:"type:varchar(20);not null"` // panel | inverter | battery
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	Brand       string    `gorm:"not null"`
	Model       string    `gorm:"not null"`

	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	// ProfitPct is a 0–1 fraction, never the 0–100 display form.
	ProfitPct    decimal.Decimal `gorm:"type:decimal(6,5);not null"`
	PartialValue decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Profit       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TotalValue   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// QuotationItem is an ancillary cost line (labor, materials, permits,
// structure, transport …) of a quotation. Quantities may be fractional —
// installation labor is quoted per kW, structure per panel.
type QuotationItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuotationID uuid.UUID `gorm:"type:uuid;index;not null"`

	Description string `gorm:"not null"`
	Category    string `gorm:"type:varchar(30);index;not null"`
	Unit        string `gorm:"type:varchar(20)"` // kW | panel | global …

	Quantity     decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	ProfitPct    decimal.Decimal `gorm:"type:decimal(6,5);not null"`
	PartialValue decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Profit       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	TotalValue   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}
