package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is an equipment or services vendor.
type Supplier struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyName string    `gorm:"index;not null"`
	NIT         string    `gorm:"uniqueIndex;not null;column:nit"`
	ContactName *string
	Email       *string
	Phone       *string
	City        *string
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
