package dto

import "github.com/shopspring/decimal"

type InvoiceResponse struct {
	ID          string          `json:"id"`
	QuotationID string          `json:"quotation_id"`
	CUFE        *string         `json:"cufe,omitempty"`
	IssuedAt    *string         `json:"issued_at,omitempty"`
	ClientNIT   *string         `json:"client_nit,omitempty"`
	ClientName  *string         `json:"client_name,omitempty"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	IVAAmount   decimal.Decimal `json:"iva_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	PDFPath     *string         `json:"pdf_path,omitempty"`
	RetryCount  int             `json:"retry_count"`
	LastError   *string         `json:"last_error,omitempty"`
	CreatedAt   string          `json:"created_at"`
}
