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

type ClientService interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error)
	List(ctx context.Context, search string) ([]dto.ClientResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if existing, err := s.repo.FindByDocument(ctx, req.Document); err == nil && existing != nil {
		return nil, errors.New("a client with this document already exists")
	}
	c := model.Client{
		Name:         req.Name,
		DocumentType: req.DocumentType,
		Document:     req.Document,
		Email:        req.Email,
		Phone:        req.Phone,
		City:         req.City,
		Address:      req.Address,
		Active:       true,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	resp := clientToResponse(&c)
	return &resp, nil
}

func (s *clientService) Get(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("client not found")
	}
	resp := clientToResponse(c)
	return &resp, nil
}

func (s *clientService) List(ctx context.Context, search string) ([]dto.ClientResponse, error) {
	clients, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, clientToResponse(&clients[i]))
	}
	return out, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("client not found")
	}
	c.Name = req.Name
	c.Email = req.Email
	c.Phone = req.Phone
	c.City = req.City
	c.Address = req.Address
	if req.Active != nil {
		c.Active = *req.Active
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := clientToResponse(c)
	return &resp, nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("client not found")
	}
	return s.repo.SoftDelete(ctx, id)
}

func clientToResponse(c *model.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		DocumentType: c.DocumentType,
		Document:     c.Document,
		Email:        c.Email,
		Phone:        c.Phone,
		City:         c.City,
		Address:      c.Address,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}
