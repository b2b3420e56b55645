package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Panel is a solar panel catalog entry. UnitPowerW feeds the automatic panel
// count derivation (ceil of target watts / unit watts).
type Panel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Brand      string          `gorm:"index;not null"`
	Model      string          `gorm:"not null"`
	UnitPowerW decimal.Decimal `gorm:"type:decimal(8,2);not null;column:unit_power_w"`
	Price      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Active     bool            `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Inverter is an inverter catalog entry. PowerKw is nominal output power.
type Inverter struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Brand     string          `gorm:"index;not null"`
	Model     string          `gorm:"not null"`
	PowerKw   decimal.Decimal `gorm:"type:decimal(8,2);not null;column:power_kw"`
	GridType  string          `gorm:"type:varchar(20)"`
	Price     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Battery is a storage battery catalog entry. CapacityKwh is usable capacity.
type Battery struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Brand       string          `gorm:"index;not null"`
	Model       string          `gorm:"not null"`
	CapacityKwh decimal.Decimal `gorm:"type:decimal(8,2);not null;column:capacity_kwh"`
	VoltageV    decimal.Decimal `gorm:"type:decimal(6,2);column:voltage_v"`
	Price       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Active      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
