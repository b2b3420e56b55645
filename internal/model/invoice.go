package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ElectronicInvoice stores the fiscal record issued when a quotation is
// contracted.
// Status: "pending" | "issued" | "rejected" | "error"
type ElectronicInvoice struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuotationID uuid.UUID `gorm:"type:uuid;index;not null"`

	// CUFE is the unique fiscal code returned by the DIAN sidecar.
	CUFE         *string    `gorm:"type:varchar(100);column:cufe"`
	IssuedAt     *time.Time `gorm:"column:issued_at"`
	ClientNIT    *string    `gorm:"type:varchar(20);column:client_nit"`
	ClientName   *string
	NetAmount    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	IVAAmount    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0;column:iva_amount"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status       string          `gorm:"type:varchar(20);not null;default:'pending'"`
	// PDFPath is relative to PDF_STORAGE_PATH.
	PDFPath *string `gorm:"column:pdf_path"`
	Notes   *string

	// Retry bookkeeping consumed by the retry cron.
	RetryCount  int        `gorm:"not null;default:0"`
	NextRetryAt *time.Time `gorm:"column:next_retry_at"`
	LastError   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
