package repository

import (
	"context"

	"github.com/Jhanky/Energy4Cero-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CostCenterRepository interface {
	Create(ctx context.Context, cc *model.CostCenter) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CostCenter, error)
	FindByCode(ctx context.Context, code string) (*model.CostCenter, error)
	List(ctx context.Context) ([]model.CostCenter, error)
	Update(ctx context.Context, cc *model.CostCenter) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type costCenterRepo struct{ db *gorm.DB }

func NewCostCenterRepository(db *gorm.DB) CostCenterRepository { return &costCenterRepo{db: db} }

func (r *costCenterRepo) Create(ctx context.Context, cc *model.CostCenter) error {
	return r.db.WithContext(ctx).Create(cc).Error
}

func (r *costCenterRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CostCenter, error) {
	var cc model.CostCenter
	err := r.db.WithContext(ctx).First(&cc, id).Error
	return &cc, err
}

func (r *costCenterRepo) FindByCode(ctx context.Context, code string) (*model.CostCenter, error) {
	var cc model.CostCenter
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&cc).Error
	return &cc, err
}

func (r *costCenterRepo) List(ctx context.Context) ([]model.CostCenter, error) {
	var centers []model.CostCenter
	err := r.db.WithContext(ctx).Where("active = true").Order("code ASC").Find(&centers).Error
	return centers, err
}

func (r *costCenterRepo) Update(ctx context.Context, cc *model.CostCenter) error {
	return r.db.WithContext(ctx).Save(cc).Error
}

func (r *costCenterRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.CostCenter{}).Where("id = ?", id).Update("active", false).Error
}
