package model

import (
	"time"

	"github.com/google/uuid"
)

// CostCenter groups project expenses for accounting. Quotation-driven
// projects reference a cost center once contracted.
type CostCenter struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code        string    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"not null"`
	Description *string
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
