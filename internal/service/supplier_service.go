package service

import (
	"context"
	"errors"
	"time"

	"github.com/Jhanky/Energy4Cero-sub001/internal/dto"
	"github.com/Jhanky/Energy4Cero-sub001/internal/model"
	"github.com/Jhanky/Energy4Cero-sub001/internal/repository"

	"github.com/google/uuid"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	List(ctx context.Context, search string) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if existing, err := s.repo.FindByNIT(ctx, req.NIT); err == nil && existing != nil {
		return nil, errors.New("a supplier with this NIT already exists")
	}
	sup := model.Supplier{
		CompanyName: req.CompanyName,
		NIT:         req.NIT,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		City:        req.City,
		Active:      true,
	}
	if err := s.repo.Create(ctx, &sup); err != nil {
		return nil, err
	}
	resp := supplierToResponse(&sup)
	return &resp, nil
}

func (s *supplierService) Get(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("supplier not found")
	}
	resp := supplierToResponse(sup)
	return &resp, nil
}

func (s *supplierService) List(ctx context.Context, search string) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, supplierToResponse(&suppliers[i]))
	}
	return out, nil
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("supplier not found")
	}
	sup.CompanyName = req.CompanyName
	sup.ContactName = req.ContactName
	sup.Email = req.Email
	sup.Phone = req.Phone
	sup.City = req.City
	if req.Active != nil {
		sup.Active = *req.Active
	}
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	resp := supplierToResponse(sup)
	return &resp, nil
}

func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("supplier not found")
	}
	return s.repo.SoftDelete(ctx, id)
}

func supplierToResponse(sup *model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:          sup.ID.String(),
		CompanyName: sup.CompanyName,
		NIT:         sup.NIT,
		ContactName: sup.ContactName,
		Email:       sup.Email,
		Phone:       sup.Phone,
		City:        sup.City,
		Active:      sup.Active,
		CreatedAt:   sup.CreatedAt.Format(time.RFC3339),
	}
}
