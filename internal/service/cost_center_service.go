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

type CostCenterService interface {
	Create(ctx context.Context, req dto.CreateCostCenterRequest) (*dto.CostCenterResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CostCenterResponse, error)
	List(ctx context.Context) ([]dto.CostCenterResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCostCenterRequest) (*dto.CostCenterResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type costCenterService struct {
	repo repository.CostCenterRepository
}

func NewCostCenterService(repo repository.CostCenterRepository) CostCenterService {
	return &costCenterService{repo: repo}
}

func (s *costCenterService) Create(ctx context.Context, req dto.CreateCostCenterRequest) (*dto.CostCenterResponse, error) {
	if existing, err := s.repo.FindByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, errors.New("a cost center with this code already exists")
	}
	cc := model.CostCenter{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Active:      true,
	}
	if err := s.repo.Create(ctx, &cc); err != nil {
		return nil, err
	}
	resp := costCenterToResponse(&cc)
	return &resp, nil
}

func (s *costCenterService) Get(ctx context.Context, id uuid.UUID) (*dto.CostCenterResponse, error) {
	cc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cost center not found")
	}
	resp := costCenterToResponse(cc)
	return &resp, nil
}

func (s *costCenterService) List(ctx context.Context) ([]dto.CostCenterResponse, error) {
	centers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CostCenterResponse, 0, len(centers))
	for i := range centers {
		out = append(out, costCenterToResponse(&centers[i]))
	}
	return out, nil
}

func (s *costCenterService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCostCenterRequest) (*dto.CostCenterResponse, error) {
	cc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cost center not found")
	}
	cc.Name = req.Name
	cc.Description = req.Description
	if req.Active != nil {
		cc.Active = *req.Active
	}
	if err := s.repo.Update(ctx, cc); err != nil {
		return nil, err
	}
	resp := costCenterToResponse(cc)
	return &resp, nil
}

func (s *costCenterService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("cost center not found")
	}
	return s.repo.SoftDelete(ctx, id)
}

func costCenterToResponse(cc *model.CostCenter) dto.CostCenterResponse {
	return dto.CostCenterResponse{
		ID:          cc.ID.String(),
		Code:        cc.Code,
		Name:        cc.Name,
		Description: cc.Description,
		Active:      cc.Active,
		CreatedAt:   cc.CreatedAt.Format(time.RFC3339),
	}
}
