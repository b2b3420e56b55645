package repository

import (
	"context"

	"github.com/Jhanky/Energy4Cero-sub001/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	FindByDocument(ctx context.Context, document string) (*model.Client, error)
	List(ctx context.Context, search string) ([]model.Client, error)
	Update(ctx context.Context, c *model.Client) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clientRepo) FindByDocument(ctx context.Context, document string) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).Where("document = ?", document).First(&c).Error
	return &c, err
}

func (r *clientRepo) List(ctx context.Context, search string) ([]model.Client, error) {
	var clients []model.Client
	q := r.db.WithContext(ctx).Where("active = true")
	if search != "" {
		q = q.Where("name ILIKE ? OR document ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	err := q.Order("name ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) Update(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clientRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Client{}).Where("id = ?", id).Update("active", false).Error
}
