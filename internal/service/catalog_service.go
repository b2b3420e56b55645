package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Jhanky/Energy4Cero-sub001/internal/dto"
	"github.com/Jhanky/Energy4Cero-sub001/internal/model"
	"github.com/Jhanky/Energy4Cero-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const snapshotCacheTTL = 4 * time.Hour

// ProductSnapshot is the quoting-time view of a catalog entry. UnitPowerW is
// zero for inverters and batteries.
type ProductSnapshot struct {
	Brand      string          `json:"brand"`
	Model      string          `json:"model"`
	Price      decimal.Decimal `json:"price"`
	UnitPowerW decimal.Decimal `json:"unit_power_w"`
}

// CatalogService manages the supply catalogs and serves the snapshot lookups
// the quotation engine needs. Snapshots are cached in Redis and invalidated
// on every catalog write.
type CatalogService interface {
	Snapshot(ctx context.Context, productType string, id uuid.UUID) (*ProductSnapshot, error)

	CreatePanel(ctx context.Context, req dto.CreatePanelRequest) (*dto.PanelResponse, error)
	GetPanel(ctx context.Context, id uuid.UUID) (*dto.PanelResponse, error)
	ListPanels(ctx context.Context, includeInactive bool) ([]dto.PanelResponse, error)
	UpdatePanel(ctx context.Context, id uuid.UUID, req dto.UpdatePanelRequest) (*dto.PanelResponse, error)
	DeletePanel(ctx context.Context, id uuid.UUID) error

	CreateInverter(ctx context.Context, req dto.CreateInverterRequest) (*dto.InverterResponse, error)
	GetInverter(ctx context.Context, id uuid.UUID) (*dto.InverterResponse, error)
	ListInverters(ctx context.Context, includeInactive bool) ([]dto.InverterResponse, error)
	UpdateInverter(ctx context.Context, id uuid.UUID, req dto.UpdateInverterRequest) (*dto.InverterResponse, error)
	DeleteInverter(ctx context.Context, id uuid.UUID) error

	CreateBattery(ctx context.Context, req dto.CreateBatteryRequest) (*dto.BatteryResponse, error)
	GetBattery(ctx context.Context, id uuid.UUID) (*dto.BatteryResponse, error)
	ListBatteries(ctx context.Context, includeInactive bool) ([]dto.BatteryResponse, error)
	UpdateBattery(ctx context.Context, id uuid.UUID, req dto.UpdateBatteryRequest) (*dto.BatteryResponse, error)
	DeleteBattery(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	repo repository.CatalogRepository
	rdb  *redis.Client
}

func NewCatalogService(repo repository.CatalogRepository, rdb *redis.Client) CatalogService {
	return &catalogService{repo: repo, rdb: rdb}
}

func snapshotCacheKey(productType string, id uuid.UUID) string {
	return "catalog:" + productType + ":" + id.String()
}

// Snapshot resolves brand, model, price and (for panels) unit power.
// Inactive entries still resolve: quotations referencing retired hardware
// must keep loading.
func (s *catalogService) Snapshot(ctx context.Context, productType string, id uuid.UUID) (*ProductSnapshot, error) {
	cacheKey := snapshotCacheKey(productType, id)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var snap ProductSnapshot
			if jsonErr := json.Unmarshal(cached, &snap); jsonErr == nil {
				return &snap, nil
			}
		}
	}

	var snap ProductSnapshot
	switch productType {
	case "panel":
		p, err := s.repo.FindPanelByID(ctx, id)
		if err != nil {
			return nil, errors.New("panel not found")
		}
		snap = ProductSnapshot{Brand: p.Brand, Model: p.Model, Price: p.Price, UnitPowerW: p.UnitPowerW}
	case "inverter":
		inv, err := s.repo.FindInverterByID(ctx, id)
		if err != nil {
			return nil, errors.New("inverter not found")
		}
		snap = ProductSnapshot{Brand: inv.Brand, Model: inv.Model, Price: inv.Price}
	case "battery":
		b, err := s.repo.FindBatteryByID(ctx, id)
		if err != nil {
			return nil, errors.New("battery not found")
		}
		snap = ProductSnapshot{Brand: b.Brand, Model: b.Model, Price: b.Price}
	default:
		return nil, errors.New("unknown product type: " + productType)
	}

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(snap); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), cacheKey, b, snapshotCacheTTL).Err()
		}
	}
	return &snap, nil
}

func (s *catalogService) invalidate(ctx context.Context, productType string, id uuid.UUID) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, snapshotCacheKey(productType, id)).Err()
	}
}

// ── Panels ───────────────────────────────────────────────────────────────────

func (s *catalogService) CreatePanel(ctx context.Context, req dto.CreatePanelRequest) (*dto.PanelResponse, error) {
	if req.UnitPowerW.Sign() <= 0 {
		return nil, errors.New("unit_power_w must be positive")
	}
	p := model.Panel{
		Brand:      req.Brand,
		Model:      req.Model,
		UnitPowerW: req.UnitPowerW,
		Price:      req.Price,
		Active:     true,
	}
	if err := s.repo.CreatePanel(ctx, &p); err != nil {
		return nil, err
	}
	resp := panelToResponse(&p)
	return &resp, nil
}

func (s *catalogService) GetPanel(ctx context.Context, id uuid.UUID) (*dto.PanelResponse, error) {
	p, err := s.repo.FindPanelByID(ctx, id)
	if err != nil {
		return nil, errors.New("panel not found")
	}
	resp := panelToResponse(p)
	return &resp, nil
}

func (s *catalogService) ListPanels(ctx context.Context, includeInactive bool) ([]dto.PanelResponse, error) {
	panels, err := s.repo.ListPanels(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PanelResponse, 0, len(panels))
	for i := range panels {
		out = append(out, panelToResponse(&panels[i]))
	}
	return out, nil
}

func (s *catalogService) UpdatePanel(ctx context.Context, id uuid.UUID, req dto.UpdatePanelRequest) (*dto.PanelResponse, error) {
	p, err := s.repo.FindPanelByID(ctx, id)
	if err != nil {
		return nil, errors.New("panel not found")
	}
	if req.UnitPowerW.Sign() <= 0 {
		return nil, errors.New("unit_power_w must be positive")
	}
	p.Brand = req.Brand
	p.Model = req.Model
	p.UnitPowerW = req.UnitPowerW
	p.Price = req.Price
	if req.Active != nil {
		p.Active = *req.Active
	}
	if err := s.repo.UpdatePanel(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, "panel", id)
	resp := panelToResponse(p)
	return &resp, nil
}

func (s *catalogService) DeletePanel(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDeletePanel(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, "panel", id)
	return nil
}

// ── Inverters ────────────────────────────────────────────────────────────────

func (s *catalogService) CreateInverter(ctx context.Context, req dto.CreateInverterRequest) (*dto.InverterResponse, error) {
	inv := model.Inverter{
		Brand:    req.Brand,
		Model:    req.Model,
		PowerKw:  req.PowerKw,
		GridType: req.GridType,
		Price:    req.Price,
		Active:   true,
	}
	if err := s.repo.CreateInverter(ctx, &inv); err != nil {
		return nil, err
	}
	resp := inverterToResponse(&inv)
	return &resp, nil
}

func (s *catalogService) GetInverter(ctx context.Context, id uuid.UUID) (*dto.InverterResponse, error) {
	inv, err := s.repo.FindInverterByID(ctx, id)
	if err != nil {
		return nil, errors.New("inverter not found")
	}
	resp := inverterToResponse(inv)
	return &resp, nil
}

func (s *catalogService) ListInverters(ctx context.Context, includeInactive bool) ([]dto.InverterResponse, error) {
	inverters, err := s.repo.ListInverters(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InverterResponse, 0, len(inverters))
	for i := range inverters {
		out = append(out, inverterToResponse(&inverters[i]))
	}
	return out, nil
}

func (s *catalogService) UpdateInverter(ctx context.Context, id uuid.UUID, req dto.UpdateInverterRequest) (*dto.InverterResponse, error) {
	inv, err := s.repo.FindInverterByID(ctx, id)
	if err != nil {
		return nil, errors.New("inverter not found")
	}
	inv.Brand = req.Brand
	inv.Model = req.Model
	inv.PowerKw = req.PowerKw
	inv.GridType = req.GridType
	inv.Price = req.Price
	if req.Active != nil {
		inv.Active = *req.Active
	}
	if err := s.repo.UpdateInverter(ctx, inv); err != nil {
		return nil, err
	}
	s.invalidate(ctx, "inverter", id)
	resp := inverterToResponse(inv)
	return &resp, nil
}

func (s *catalogService) DeleteInverter(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDeleteInverter(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, "inverter", id)
	return nil
}

// ── Batteries ────────────────────────────────────────────────────────────────

func (s *catalogService) CreateBattery(ctx context.Context, req dto.CreateBatteryRequest) (*dto.BatteryResponse, error) {
	b := model.Battery{
		Brand:       req.Brand,
		Model:       req.Model,
		CapacityKwh: req.CapacityKwh,
		VoltageV:    req.VoltageV,
		Price:       req.Price,
		Active:      true,
	}
	if err := s.repo.CreateBattery(ctx, &b); err != nil {
		return nil, err
	}
	resp := batteryToResponse(&b)
	return &resp, nil
}

func (s *catalogService) GetBattery(ctx context.Context, id uuid.UUID) (*dto.BatteryResponse, error) {
	b, err := s.repo.FindBatteryByID(ctx, id)
	if err != nil {
		return nil, errors.New("battery not found")
	}
	resp := batteryToResponse(b)
	return &resp, nil
}

func (s *catalogService) ListBatteries(ctx context.Context, includeInactive bool) ([]dto.BatteryResponse, error) {
	batteries, err := s.repo.ListBatteries(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BatteryResponse, 0, len(batteries))
	for i := range batteries {
		out = append(out, batteryToResponse(&batteries[i]))
	}
	return out, nil
}

func (s *catalogService) UpdateBattery(ctx context.Context, id uuid.UUID, req dto.UpdateBatteryRequest) (*dto.BatteryResponse, error) {
	b, err := s.repo.FindBatteryByID(ctx, id)
	if err != nil {
		return nil, errors.New("battery not found")
	}
	b.Brand = req.Brand
	b.Model = req.Model
	b.CapacityKwh = req.CapacityKwh
	b.VoltageV = req.VoltageV
	b.Price = req.Price
	if req.Active != nil {
		b.Active = *req.Active
	}
	if err := s.repo.UpdateBattery(ctx, b); err != nil {
		return nil, err
	}
	s.invalidate(ctx, "battery", id)
	resp := batteryToResponse(b)
	return &resp, nil
}

func (s *catalogService) DeleteBattery(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.SoftDeleteBattery(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, "battery", id)
	return nil
}

// ── Mapping helpers ──────────────────────────────────────────────────────────

func panelToResponse(p *model.Panel) dto.PanelResponse {
	return dto.PanelResponse{
		ID:         p.ID.String(),
		Brand:      p.Brand,
		Model:      p.Model,
		UnitPowerW: p.UnitPowerW,
		Price:      p.Price,
		Active:     p.Active,
	}
}

func inverterToResponse(inv *model.Inverter) dto.InverterResponse {
	return dto.InverterResponse{
		ID:       inv.ID.String(),
		Brand:    inv.Brand,
		Model:    inv.Model,
		PowerKw:  inv.PowerKw,
		GridType: inv.GridType,
		Price:    inv.Price,
		Active:   inv.Active,
	}
}

func batteryToResponse(b *model.Battery) dto.BatteryResponse {
	return dto.BatteryResponse{
		ID:          b.ID.String(),
		Brand:       b.Brand,
		Model:       b.Model,
		CapacityKwh: b.CapacityKwh,
		VoltageV:    b.VoltageV,
		Price:       b.Price,
		Active:      b.Active,
	}
}
