package repository

import (
	"context"

	"github.com/Jhanky/Energy4Cero-sub001/internal/dto"
	"github.com/Jhanky/Energy4Cero-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuotationRepository defines the data access contract for quotations.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via mocks.
type QuotationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, q *model.Quotation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Quotation, error)
	List(ctx context.Context, filter dto.QuotationFilter) ([]model.Quotation, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, statusID int) error
	Delete(ctx context.Context, id uuid.UUID) error
	NextNumber(ctx context.Context, tx *gorm.DB) (int, error)
	ListStatuses(ctx context.Context) ([]model.QuotationStatus, error)

	// Used inside transactions — callers must pass the tx instance.
	SaveTx(tx *gorm.DB, q *model.Quotation) error
	UpsertProductTx(tx *gorm.DB, p *model.UsedProduct) error
	UpsertItemTx(tx *gorm.DB, it *model.QuotationItem) error
	DeleteProductsNotInTx(tx *gorm.DB, quotationID uuid.UUID, keep []uuid.UUID) error
	DeleteItemsNotInTx(tx *gorm.DB, quotationID uuid.UUID, keep []uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type quotationRepo struct{ db *gorm.DB }

func NewQuotationRepository(db *gorm.DB) QuotationRepository { return &quotationRepo{db: db} }

func (r *quotationRepo) DB() *gorm.DB { return r.db }

func (r *quotationRepo) Create(ctx context.Context, tx *gorm.DB, q *model.Quotation) error {
	return tx.WithContext(ctx).Create(q).Error
}

func (r *quotationRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Quotation, error) {
	var q model.Quotation
	err := r.db.WithContext(ctx).
		Preload("Client").Preload("Status").
		Preload("UsedProducts").Preload("Items").
		First(&q, id).Error
	return &q, err
}

func (r *quotationRepo) List(ctx context.Context, filter dto.QuotationFilter) ([]model.Quotation, int64, error) {
	var quotations []model.Quotation
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Quotation{})

	if filter.StatusID != 0 {
		q = q.Where("status_id = ?", filter.StatusID)
	}
	if filter.ClientID != "" {
		q = q.Where("client_id = ?", filter.ClientID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Client").Preload("Status").
		Order("number DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&quotations).Error

	return quotations, total, err
}

func (r *quotationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, statusID int) error {
	return r.db.WithContext(ctx).Model(&model.Quotation{}).Where("id = ?", id).Update("status_id", statusID).Error
}

func (r *quotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Child rows go with the parent via ON DELETE CASCADE.
	return r.db.WithContext(ctx).Delete(&model.Quotation{}, id).Error
}

func (r *quotationRepo) NextNumber(ctx context.Context, tx *gorm.DB) (int, error) {
	// Uses a PostgreSQL sequence for atomic quotation number generation
	var num int
	err := tx.WithContext(ctx).Raw("SELECT nextval('quotations_number_seq')").Scan(&num).Error
	return num, err
}

func (r *quotationRepo) ListStatuses(ctx context.Context) ([]model.QuotationStatus, error) {
	var statuses []model.QuotationStatus
	err := r.db.WithContext(ctx).Order("id ASC").Find(&statuses).Error
	return statuses, err
}

func (r *quotationRepo) SaveTx(tx *gorm.DB, q *model.Quotation) error {
	// Omit associations: child rows are written explicitly by the service so
	// the insert-vs-update decision stays in one place.
	return tx.Omit("UsedProducts", "Items", "Client", "Status").Save(q).Error
}

func (r *quotationRepo) UpsertProductTx(tx *gorm.DB, p *model.UsedProduct) error {
	if p.ID == uuid.Nil {
		return tx.Create(p).Error
	}
	return tx.Save(p).Error
}

func (r *quotationRepo) UpsertItemTx(tx *gorm.DB, it *model.QuotationItem) error {
	if it.ID == uuid.Nil {
		return tx.Create(it).Error
	}
	return tx.Save(it).Error
}

func (r *quotationRepo) DeleteProductsNotInTx(tx *gorm.DB, quotationID uuid.UUID, keep []uuid.UUID) error {
	q := tx.Where("quotation_id = ?", quotationID)
	if len(keep) > 0 {
		q = q.Where("id NOT IN ?", keep)
	}
	return q.Delete(&model.UsedProduct{}).Error
}

func (r *quotationRepo) DeleteItemsNotInTx(tx *gorm.DB, quotationID uuid.UUID, keep []uuid.UUID) error {
	q := tx.Where("quotation_id = ?", quotationID)
	if len(keep) > 0 {
		q = q.Where("id NOT IN ?", keep)
	}
	return q.Delete(&model.QuotationItem{}).Error
}
