package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a quotation customer: a person or company identified by its
// Colombian tax document (NIT or cédula).
type Client struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"index;not null"`
	DocumentType string    `gorm:"type:varchar(10);not null;default:'NIT'"`
	Document     string    `gorm:"uniqueIndex;not null"`
	Email        *string
	Phone        *string
	City         *string
	Address      *string
	Active       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
