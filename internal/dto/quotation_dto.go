package dto

import "github.com/shopspring/decimal"

// ─── Line payloads ───────────────────────────────────────────────────────────
// profit_percentage travels over the wire as a 0–1 fraction, never the 0–100
// display form — the UI converts once at its own boundary.

// ProductLineRequest is one catalog product row of a quotation payload.
// used_product_id present means "update this row"; absent means "insert".
type ProductLineRequest struct {
	UsedProductID *string `json:"used_product_id,omitempty" validate:"omitempty,uuid"`
	ProductType   string  `json:"product_type"              validate:"required,oneof=panel inverter battery"`
	ProductID     string  `json:"product_id"                validate:"required,uuid"`
	// Quantity is ignored for panel lines: the panel count is always derived
	// from the target power and overwrites whatever was sent.
	Quantity         *int             `json:"quantity"           validate:"omitempty,min=0"`
	UnitPrice        *decimal.Decimal `json:"unit_price"         validate:"omitempty"` // nil = catalog price
	ProfitPercentage *decimal.Decimal `json:"profit_percentage"  validate:"omitempty,min=0,max=1"`
}

// ItemLineRequest is one ancillary row (labor, materials, permits …).
type ItemLineRequest struct {
	ItemID           *string          `json:"item_id,omitempty" validate:"omitempty,uuid"`
	Description      string           `json:"description"       validate:"required"`
	Category         string           `json:"category"          validate:"required,oneof=labor materials permits structure transport"`
	Unit             string           `json:"unit"              validate:"omitempty,max=20"`
	Quantity         decimal.Decimal  `json:"quantity"          validate:"min=0"`
	UnitPrice        decimal.Decimal  `json:"unit_price"        validate:"min=0"`
	ProfitPercentage *decimal.Decimal `json:"profit_percentage" validate:"omitempty,min=0,max=1"`
}

// ParametersRequest carries the markup rates, all 0–1 fractions. A nil rate
// keeps the stored value (or the company default on a new quotation).
type ParametersRequest struct {
	CommercialManagementPercentage *decimal.Decimal `json:"commercial_management_percentage" validate:"omitempty,min=0,max=1"`
	AdministrationPercentage       *decimal.Decimal `json:"administration_percentage"        validate:"omitempty,min=0,max=1"`
	ContingencyPercentage          *decimal.Decimal `json:"contingency_percentage"           validate:"omitempty,min=0,max=1"`
	ProfitPercentage               *decimal.Decimal `json:"profit_percentage"                validate:"omitempty,min=0,max=1"`
	ProfitIVAPercentage            *decimal.Decimal `json:"profit_iva_percentage"            validate:"omitempty,min=0,max=1"`
	WithholdingPercentage          *decimal.Decimal `json:"withholding_percentage"           validate:"omitempty,min=0,max=1"`
}

// ─── Requests ────────────────────────────────────────────────────────────────

type CreateQuotationRequest struct {
	ClientID       string               `json:"client_id"        validate:"required,uuid"`
	ProjectName    string               `json:"project_name"     validate:"required"`
	TargetPowerKwp decimal.Decimal      `json:"target_power_kwp" validate:"required"`
	SystemType     string               `json:"system_type"      validate:"required,oneof=on-grid off-grid hybrid"`
	GridType       string               `json:"grid_type"        validate:"required,oneof=single-phase two-phase three-phase"`
	UsedProducts   []ProductLineRequest `json:"used_products"    validate:"required,min=1,dive"`
	Items          []ItemLineRequest    `json:"items"            validate:"dive"`
	Parameters     ParametersRequest    `json:"parameters"`
}

// UpdateQuotationRequest replaces the aggregate whole-item: rows with ids
// update in place, rows without ids insert, stored rows not listed delete.
// Totals are never patched directly — everything derived is recomputed.
type UpdateQuotationRequest struct {
	ProjectName    string               `json:"project_name"     validate:"required"`
	TargetPowerKwp decimal.Decimal      `json:"target_power_kwp" validate:"required"`
	SystemType     string               `json:"system_type"      validate:"required,oneof=on-grid off-grid hybrid"`
	GridType       string               `json:"grid_type"        validate:"required,oneof=single-phase two-phase three-phase"`
	UsedProducts   []ProductLineRequest `json:"used_products"    validate:"required,min=1,dive"`
	Items          []ItemLineRequest    `json:"items"            validate:"dive"`
	Parameters     ParametersRequest    `json:"parameters"`
}

// RecalculateRequest is the stateless preview path: lines and parameters in,
// cost summary out, nothing persisted.
type RecalculateRequest struct {
	UsedProducts []ProductLineValue `json:"used_products" validate:"dive"`
	Items        []ItemLineRequest  `json:"items"         validate:"dive"`
	Parameters   ParametersRequest  `json:"parameters"`
}

// ProductLineValue is a fully specified product line for recalculation —
// no catalog resolution, the caller supplies the numbers on screen.
type ProductLineValue struct {
	Quantity         int              `json:"quantity"          validate:"min=0"`
	UnitPrice        decimal.Decimal  `json:"unit_price"        validate:"min=0"`
	ProfitPercentage *decimal.Decimal `json:"profit_percentage" validate:"omitempty,min=0,max=1"`
}

type ChangeStatusRequest struct {
	StatusID int `json:"status_id" validate:"required"`
}

type QuotationFilter struct {
	StatusID int    `form:"status_id"`
	ClientID string `form:"client_id"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type ProductLineResponse struct {
	UsedProductID    string          `json:"used_product_id"`
	ProductType      string          `json:"product_type"`
	ProductID        string          `json:"product_id"`
	Brand            string          `json:"brand"`
	Model            string          `json:"model"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	ProfitPercentage decimal.Decimal `json:"profit_percentage"`
	PartialValue     decimal.Decimal `json:"partial_value"`
	Profit           decimal.Decimal `json:"profit"`
	TotalValue       decimal.Decimal `json:"total_value"`
}

type ItemLineResponse struct {
	ItemID           string          `json:"item_id"`
	Description      string          `json:"description"`
	Category         string          `json:"category"`
	Unit             string          `json:"unit"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	ProfitPercentage decimal.Decimal `json:"profit_percentage"`
	PartialValue     decimal.Decimal `json:"partial_value"`
	Profit           decimal.Decimal `json:"profit"`
	TotalValue       decimal.Decimal `json:"total_value"`
}

// CostSummaryResponse is the layered breakdown snapshot.
type CostSummaryResponse struct {
	Subtotal             decimal.Decimal `json:"subtotal"`
	CommercialManagement decimal.Decimal `json:"commercial_management"`
	Subtotal2            decimal.Decimal `json:"subtotal2"`
	Administration       decimal.Decimal `json:"administration"`
	Contingency          decimal.Decimal `json:"contingency"`
	Profit               decimal.Decimal `json:"profit"`
	ProfitIVA            decimal.Decimal `json:"profit_iva"`
	Subtotal3            decimal.Decimal `json:"subtotal3"`
	Withholdings         decimal.Decimal `json:"withholdings"`
	TotalValue           decimal.Decimal `json:"total_value"`
}

// ParametersResponse always comes back fully resolved: stored rates where
// present, company defaults where the record held NULL.
type ParametersResponse struct {
	CommercialManagementPercentage decimal.Decimal `json:"commercial_management_percentage"`
	AdministrationPercentage       decimal.Decimal `json:"administration_percentage"`
	ContingencyPercentage          decimal.Decimal `json:"contingency_percentage"`
	ProfitPercentage               decimal.Decimal `json:"profit_percentage"`
	ProfitIVAPercentage            decimal.Decimal `json:"profit_iva_percentage"`
	WithholdingPercentage          decimal.Decimal `json:"withholding_percentage"`
}

type QuotationResponse struct {
	ID             string                `json:"id"`
	Number         int                   `json:"number"`
	ClientID       string                `json:"client_id"`
	ClientName     string                `json:"client_name,omitempty"`
	ProjectName    string                `json:"project_name"`
	TargetPowerKwp decimal.Decimal       `json:"target_power_kwp"`
	SystemType     string                `json:"system_type"`
	GridType       string                `json:"grid_type"`
	StatusID       int                   `json:"status_id"`
	StatusName     string                `json:"status_name,omitempty"`
	UsedProducts   []ProductLineResponse `json:"used_products"`
	Items          []ItemLineResponse    `json:"items"`
	Parameters     ParametersResponse    `json:"parameters"`
	Summary        CostSummaryResponse   `json:"summary"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

type QuotationListItem struct {
	ID             string          `json:"id"`
	Number         int             `json:"number"`
	ClientID       string          `json:"client_id"`
	ClientName     string          `json:"client_name,omitempty"`
	ProjectName    string          `json:"project_name"`
	TargetPowerKwp decimal.Decimal `json:"target_power_kwp"`
	StatusID       int             `json:"status_id"`
	StatusName     string          `json:"status_name,omitempty"`
	TotalValue     decimal.Decimal `json:"total_value"`
	CreatedAt      string          `json:"created_at"`
}

type QuotationListResponse struct {
	Data  []QuotationListItem `json:"data"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

type StatusResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
