package dto

import "github.com/shopspring/decimal"

// ─── Panels ──────────────────────────────────────────────────────────────────

type CreatePanelRequest struct {
	Brand      string          `json:"brand"        validate:"required"`
	Model      string          `json:"model"        validate:"required"`
	UnitPowerW decimal.Decimal `json:"unit_power_w" validate:"required"`
	Price      decimal.Decimal `json:"price"        validate:"required"`
}

type UpdatePanelRequest struct {
	Brand      string          `json:"brand"        validate:"required"`
	Model      string          `json:"model"        validate:"required"`
	UnitPowerW decimal.Decimal `json:"unit_power_w" validate:"required"`
	Price      decimal.Decimal `json:"price"        validate:"required"`
	Active     *bool           `json:"active"`
}

type PanelResponse struct {
	ID         string          `json:"id"`
	Brand      string          `json:"brand"`
	Model      string          `json:"model"`
	UnitPowerW decimal.Decimal `json:"unit_power_w"`
	Price      decimal.Decimal `json:"price"`
	Active     bool            `json:"active"`
}

// ─── Inverters ───────────────────────────────────────────────────────────────

type CreateInverterRequest struct {
	Brand    string          `json:"brand"     validate:"required"`
	Model    string          `json:"model"     validate:"required"`
	PowerKw  decimal.Decimal `json:"power_kw"  validate:"required"`
	GridType string          `json:"grid_type" validate:"omitempty,oneof=single-phase two-phase three-phase"`
	Price    decimal.Decimal `json:"price"     validate:"required"`
}

type UpdateInverterRequest struct {
	Brand    string          `json:"brand"     validate:"required"`
	Model    string          `json:"model"     validate:"required"`
	PowerKw  decimal.Decimal `json:"power_kw"  validate:"required"`
	GridType string          `json:"grid_type" validate:"omitempty,oneof=single-phase two-phase three-phase"`
	Price    decimal.Decimal `json:"price"     validate:"required"`
	Active   *bool           `json:"active"`
}

type InverterResponse struct {
	ID       string          `json:"id"`
	Brand    string          `json:"brand"`
	Model    string          `json:"model"`
	PowerKw  decimal.Decimal `json:"power_kw"`
	GridType string          `json:"grid_type,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Active   bool            `json:"active"`
}

// ─── Batteries ───────────────────────────────────────────────────────────────

type CreateBatteryRequest struct {
	Brand       string          `json:"brand"        validate:"required"`
	Model       string          `json:"model"        validate:"required"`
	CapacityKwh decimal.Decimal `json:"capacity_kwh" validate:"required"`
	VoltageV    decimal.Decimal `json:"voltage_v"`
	Price       decimal.Decimal `json:"price"        validate:"required"`
}

type UpdateBatteryRequest struct {
	Brand       string          `json:"brand"        validate:"required"`
	Model       string          `json:"model"        validate:"required"`
	CapacityKwh decimal.Decimal `json:"capacity_kwh" validate:"required"`
	VoltageV    decimal.Decimal `json:"voltage_v"`
	Price       decimal.Decimal `json:"price"        validate:"required"`
	Active      *bool           `json:"active"`
}

type BatteryResponse struct {
	ID          string          `json:"id"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	CapacityKwh decimal.Decimal `json:"capacity_kwh"`
	VoltageV    decimal.Decimal `json:"voltage_v"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
}
