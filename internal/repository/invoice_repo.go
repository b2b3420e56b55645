package repository

import (
	"context"
	"time"

	"github.com/Jhanky/Energy4Cero-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.ElectronicInvoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ElectronicInvoice, error)
	FindByQuotationID(ctx context.Context, quotationID uuid.UUID) (*model.ElectronicInvoice, error)
	Update(ctx context.Context, inv *model.ElectronicInvoice) error

	// ListPendingRetries returns invoices whose next_retry_at has passed,
	// oldest first, capped at limit. Consumed by the retry cron.
	ListPendingRetries(ctx context.Context, now time.Time, limit int) ([]model.ElectronicInvoice, error)
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

func (r *invoiceRepo) Create(ctx context.Context, inv *model.ElectronicInvoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ElectronicInvoice, error) {
	var inv model.ElectronicInvoice
	err := r.db.WithContext(ctx).First(&inv, id).Error
	return &inv, err
}

func (r *invoiceRepo) FindByQuotationID(ctx context.Context, quotationID uuid.UUID) (*model.ElectronicInvoice, error) {
	var inv model.ElectronicInvoice
	err := r.db.WithContext(ctx).Where("quotation_id = ?", quotationID).
		Order("created_at DESC").First(&inv).Error
	return &inv, err
}

func (r *invoiceRepo) Update(ctx context.Context, inv *model.ElectronicInvoice) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *invoiceRepo) ListPendingRetries(ctx context.Context, now time.Time, limit int) ([]model.ElectronicInvoice, error) {
	var invoices []model.ElectronicInvoice
	err := r.db.WithContext(ctx).
		Where("status IN ('pending', 'error') AND next_retry_at IS NOT NULL AND next_retry_at <= ?", now).
		Order("next_retry_at ASC").
		Limit(limit).
		Find(&invoices).Error
	return invoices, err
}
