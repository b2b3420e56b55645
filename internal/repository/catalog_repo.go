package repository

import (
	"context"

	"github.com/Jhanky/Energy4Cero-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository covers the three supply catalogs (panels, inverters,
// batteries). They share shape and lifecycle, so one contract serves all.
type CatalogRepository interface {
	CreatePanel(ctx context.Context, p *model.Panel) error
	FindPanelByID(ctx context.Context, id uuid.UUID) (*model.Panel, error)
	ListPanels(ctx context.Context, includeInactive bool) ([]model.Panel, error)
	UpdatePanel(ctx context.Context, p *model.Panel) error
	SoftDeletePanel(ctx context.Context, id uuid.UUID) error

	CreateInverter(ctx context.Context, inv *model.Inverter) error
	FindInverterByID(ctx context.Context, id uuid.UUID) (*model.Inverter, error)
	ListInverters(ctx context.Context, includeInactive bool) ([]model.Inverter, error)
	UpdateInverter(ctx context.Context, inv *model.Inverter) error
	SoftDeleteInverter(ctx context.Context, id uuid.UUID) error

	CreateBattery(ctx context.Context, b *model.Battery) error
	FindBatteryByID(ctx context.Context, id uuid.UUID) (*model.Battery, error)
	ListBatteries(ctx context.Context, includeInactive bool) ([]model.Battery, error)
	UpdateBattery(ctx context.Context, b *model.Battery) error
	SoftDeleteBattery(ctx context.Context, id uuid.UUID) error
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) CatalogRepository { return &catalogRepo{db: db} }

func (r *catalogRepo) CreatePanel(ctx context.Context, p *model.Panel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *catalogRepo) FindPanelByID(ctx context.Context, id uuid.UUID) (*model.Panel, error) {
	var p model.Panel
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *catalogRepo) ListPanels(ctx context.Context, includeInactive bool) ([]model.Panel, error) {
	var panels []model.Panel
	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("active = true")
	}
	err := q.Order("brand ASC, model ASC").Find(&panels).Error
	return panels, err
}

func (r *catalogRepo) UpdatePanel(ctx context.Context, p *model.Panel) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *catalogRepo) SoftDeletePanel(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Panel{}).Where("id = ?", id).Update("active", false).Error
}

func (r *catalogRepo) CreateInverter(ctx context.Context, inv *model.Inverter) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *catalogRepo) FindInverterByID(ctx context.Context, id uuid.UUID) (*model.Inverter, error) {
	var inv model.Inverter
	err := r.db.WithContext(ctx).First(&inv, id).Error
	return &inv, err
}

func (r *catalogRepo) ListInverters(ctx context.Context, includeInactive bool) ([]model.Inverter, error) {
	var inverters []model.Inverter
	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("active = true")
	}
	err := q.Order("brand ASC, model ASC").Find(&inverters).Error
	return inverters, err
}

func (r *catalogRepo) UpdateInverter(ctx context.Context, inv *model.Inverter) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *catalogRepo) SoftDeleteInverter(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Inverter{}).Where("id = ?", id).Update("active", false).Error
}

func (r *catalogRepo) CreateBattery(ctx context.Context, b *model.Battery) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *catalogRepo) FindBatteryByID(ctx context.Context, id uuid.UUID) (*model.Battery, error) {
	var b model.Battery
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

func (r *catalogRepo) ListBatteries(ctx context.Context, includeInactive bool) ([]model.Battery, error) {
	var batteries []model.Battery
	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("active = true")
	}
	err := q.Order("brand ASC, model ASC").Find(&batteries).Error
	return batteries, err
}

func (r *catalogRepo) UpdateBattery(ctx context.Context, b *model.Battery) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *catalogRepo) SoftDeleteBattery(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Battery{}).Where("id = ?", id).Update("active", false).Error
}
