package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Jhanky/Energy4Cero-sub001/internal/dto"
	"github.com/Jhanky/Energy4Cero-sub001/internal/model"
	"github.com/Jhanky/Energy4Cero-sub001/internal/repository"
	"github.com/Jhanky/Energy4Cero-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubQuotationRepo is an in-memory QuotationRepository. Child rows live in
// per-quotation maps so the upsert/delete-not-in semantics match the real
// GORM implementation.
type stubQuotationRepo struct {
	quotations map[uuid.UUID]*model.Quotation
	products   map[uuid.UUID]map[uuid.UUID]model.UsedProduct
	items      map[uuid.UUID]map[uuid.UUID]model.QuotationItem
	numberSeq  int
}

func newStubQuotationRepo() *stubQuotationRepo {
	return &stubQuotationRepo{
		quotations: make(map[uuid.UUID]*model.Quotation),
		products:   make(map[uuid.UUID]map[uuid.UUID]model.UsedProduct),
		items:      make(map[uuid.UUID]map[uuid.UUID]model.QuotationItem),
		numberSeq:  1000,
	}
}

func (r *stubQuotationRepo) Create(_ context.Context, _ *gorm.DB, q *model.Quotation) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	r.products[q.ID] = make(map[uuid.UUID]model.UsedProduct)
	r.items[q.ID] = make(map[uuid.UUID]model.QuotationItem)
	for i := range q.UsedProducts {
		if q.UsedProducts[i].ID == uuid.Nil {
			q.UsedProducts[i].ID = uuid.New()
		}
		q.UsedProducts[i].QuotationID = q.ID
		r.products[q.ID][q.UsedProducts[i].ID] = q.UsedProducts[i]
	}
	for i := range q.Items {
		if q.Items[i].ID == uuid.Nil {
			q.Items[i].ID = uuid.New()
		}
		q.Items[i].QuotationID = q.ID
		r.items[q.ID][q.Items[i].ID] = q.Items[i]
	}
	r.quotations[q.ID] = q
	return nil
}

func (r *stubQuotationRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Quotation, error) {
	q, ok := r.quotations[id]
	if !ok {
		return nil, errors.New("not found")
	}
	out := *q
	out.UsedProducts = nil
	out.Items = nil
	for _, row := range r.products[id] {
		out.UsedProducts = append(out.UsedProducts, row)
	}
	for _, row := range r.items[id] {
		out.Items = append(out.Items, row)
	}
	return &out, nil
}

func (r *stubQuotationRepo) List(_ context.Context, _ dto.QuotationFilter) ([]model.Quotation, int64, error) {
	out := make([]model.Quotation, 0, len(r.quotations))
	for _, q := range r.quotations {
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}

func (r *stubQuotationRepo) UpdateStatus(_ context.Context, id uuid.UUID, statusID int) error {
	q, ok := r.quotations[id]
	if !ok {
		return errors.New("not found")
	}
	q.StatusID = statusID
	return nil
}

func (r *stubQuotationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.quotations, id)
	delete(r.products, id)
	delete(r.items, id)
	return nil
}

func (r *stubQuotationRepo) NextNumber(_ context.Context, _ *gorm.DB) (int, error) {
	r.numberSeq++
	return r.numberSeq, nil
}

func (r *stubQuotationRepo) ListStatuses(_ context.Context) ([]model.QuotationStatus, error) {
	return []model.QuotationStatus{{ID: model.StatusDraft, Name: "Draft"}}, nil
}

func (r *stubQuotationRepo) SaveTx(_ *gorm.DB, q *model.Quotation) error {
	stored, ok := r.quotations[q.ID]
	if !ok {
		return errors.New("not found")
	}
	*stored = *q
	return nil
}

func (r *stubQuotationRepo) UpsertProductTx(_ *gorm.DB, p *model.UsedProduct) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.QuotationID][p.ID] = *p
	return nil
}

func (r *stubQuotationRepo) UpsertItemTx(_ *gorm.DB, it *model.QuotationItem) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	r.items[it.QuotationID][it.ID] = *it
	return nil
}

func (r *stubQuotationRepo) DeleteProductsNotInTx(_ *gorm.DB, quotationID uuid.UUID, keep []uuid.UUID) error {
	keepSet := make(map[uuid.UUID]bool, len(keep))
	for _, id := range keep {
		keepSet[id] = true
	}
	for id := range r.products[quotationID] {
		if !keepSet[id] {
			delete(r.products[quotationID], id)
		}
	}
	return nil
}

func (r *stubQuotationRepo) DeleteItemsNotInTx(_ *gorm.DB, quotationID uuid.UUID, keep []uuid.UUID) error {
	keepSet := make(map[uuid.UUID]bool, len(keep))
	for _, id := range keep {
		keepSet[id] = true
	}
	for id := range r.items[quotationID] {
		if !keepSet[id] {
			delete(r.items[quotationID], id)
		}
	}
	return nil
}

func (r *stubQuotationRepo) DB() *gorm.DB { return nil }

var _ repository.QuotationRepository = (*stubQuotationRepo)(nil)

// stubClientRepo holds clients keyed by id.
type stubClientRepo struct {
	clients map[uuid.UUID]*model.Client
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[uuid.UUID]*model.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *model.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *stubClientRepo) FindByDocument(_ context.Context, _ string) (*model.Client, error) {
	return nil, errors.New("not found")
}

func (r *stubClientRepo) List(_ context.Context, _ string) ([]model.Client, error) {
	return nil, nil
}

func (r *stubClientRepo) Update(_ context.Context, _ *model.Client) error { return nil }

func (r *stubClientRepo) SoftDelete(_ context.Context, _ uuid.UUID) error { return nil }

var _ repository.ClientRepository = (*stubClientRepo)(nil)

// stubCatalog serves fixed snapshots; the CRUD surface is unused here.
type stubCatalog struct {
	snapshots map[uuid.UUID]service.ProductSnapshot
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{snapshots: make(map[uuid.UUID]service.ProductSnapshot)}
}

func (c *stubCatalog) Snapshot(_ context.Context, _ string, id uuid.UUID) (*service.ProductSnapshot, error) {
	snap, ok := c.snapshots[id]
	if !ok {
		return nil, errors.New("catalog entry not found")
	}
	return &snap, nil
}

func (c *stubCatalog) CreatePanel(_ context.Context, _ dto.CreatePanelRequest) (*dto.PanelResponse, error) {
	return nil, nil
}
func (c *stubCatalog) GetPanel(_ context.Context, _ uuid.UUID) (*dto.PanelResponse, error) {
	return nil, nil
}
func (c *stubCatalog) ListPanels(_ context.Context, _ bool) ([]dto.PanelResponse, error) {
	return nil, nil
}
func (c *stubCatalog) UpdatePanel(_ context.Context, _ uuid.UUID, _ dto.UpdatePanelRequest) (*dto.PanelResponse, error) {
	return nil, nil
}
func (c *stubCatalog) DeletePanel(_ context.Context, _ uuid.UUID) error { return nil }
func (c *stubCatalog) CreateInverter(_ context.Context, _ dto.CreateInverterRequest) (*dto.InverterResponse, error) {
	return nil, nil
}
func (c *stubCatalog) GetInverter(_ context.Context, _ uuid.UUID) (*dto.InverterResponse, error) {
	return nil, nil
}
func (c *stubCatalog) ListInverters(_ context.Context, _ bool) ([]dto.InverterResponse, error) {
	return nil, nil
}
func (c *stubCatalog) UpdateInverter(_ context.Context, _ uuid.UUID, _ dto.UpdateInverterRequest) (*dto.InverterResponse, error) {
	return nil, nil
}
func (c *stubCatalog) DeleteInverter(_ context.Context, _ uuid.UUID) error { return nil }
func (c *stubCatalog) CreateBattery(_ context.Context, _ dto.CreateBatteryRequest) (*dto.BatteryResponse, error) {
	return nil, nil
}
func (c *stubCatalog) GetBattery(_ context.Context, _ uuid.UUID) (*dto.BatteryResponse, error) {
	return nil, nil
}
func (c *stubCatalog) ListBatteries(_ context.Context, _ bool) ([]dto.BatteryResponse, error) {
	return nil, nil
}
func (c *stubCatalog) UpdateBattery(_ context.Context, _ uuid.UUID, _ dto.UpdateBatteryRequest) (*dto.BatteryResponse, error) {
	return nil, nil
}
func (c *stubCatalog) DeleteBattery(_ context.Context, _ uuid.UUID) error { return nil }

var _ service.CatalogService = (*stubCatalog)(nil)

// ── Fixtures ──────────────────────────────────────────────────────────────────

type fixture struct {
	svc        service.QuotationService
	repo       *stubQuotationRepo
	clientRepo *stubClientRepo
	catalog    *stubCatalog

	clientID   uuid.UUID
	panelID    uuid.UUID
	inverterID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := newStubQuotationRepo()
	clientRepo := newStubClientRepo()
	catalog := newStubCatalog()

	email := "cliente@example.co"
	client := &model.Client{Name: "Finca La Esperanza", DocumentType: "NIT", Document: "900123456-7", Email: &email, Active: true}
	require.NoError(t, clientRepo.Create(context.Background(), client))

	panelID := uuid.New()
	catalog.snapshots[panelID] = service.ProductSnapshot{
		Brand:      "Jinko",
		Model:      "Tiger Neo 415W",
		Price:      decimal.NewFromInt(480000),
		UnitPowerW: decimal.NewFromInt(415),
	}
	inverterID := uuid.New()
	catalog.snapshots[inverterID] = service.ProductSnapshot{
		Brand: "Growatt",
		Model: "MIN 5000TL-X",
		Price: decimal.NewFromInt(3200000),
	}

	return &fixture{
		svc:        service.NewQuotationService(repo, clientRepo, catalog, nil),
		repo:       repo,
		clientRepo: clientRepo,
		catalog:    catalog,
		clientID:   client.ID,
		panelID:    panelID,
		inverterID: inverterID,
	}
}

func (f *fixture) createRequest() dto.CreateQuotationRequest {
	return dto.CreateQuotationRequest{
		ClientID:       f.clientID.String(),
		ProjectName:    "Residencial 5.5 kWp",
		TargetPowerKwp: decimal.NewFromFloat(5.5),
		SystemType:     "on-grid",
		GridType:       "single-phase",
		UsedProducts: []dto.ProductLineRequest{
			{ProductType: "panel", ProductID: f.panelID.String()},
		},
	}
}

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestCreateQuotation_DerivesPanelQuantity(t *testing.T) {
	f := newFixture(t)
	req := f.createRequest()
	// A client-sent quantity is ignored for panels: 5.5 kWp / 415 W = 13.25 → 14.
	sent := 99
	req.UsedProducts[0].Quantity = &sent

	resp, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.UsedProducts, 1)
	assert.Equal(t, 14, resp.UsedProducts[0].Quantity)
}

func TestCreateQuotation_CreationPolicyRates(t *testing.T) {
	f := newFixture(t)
	req := f.createRequest()
	req.Items = []dto.ItemLineRequest{
		{Description: "Tramites ante el operador de red", Category: "permits", Unit: "global",
			Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(800000)},
		{Description: "Mano de obra instalacion", Category: "labor", Unit: "kW",
			Quantity: decimal.NewFromFloat(5.5), UnitPrice: decimal.NewFromInt(350000)},
	}

	resp, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	// Products open at 25%, permits at 5%; other categories keep a zero rate.
	assert.Equal(t, "0.25", resp.UsedProducts[0].ProfitPercentage.String())
	for _, it := range resp.Items {
		switch it.Category {
		case "permits":
			assert.Equal(t, "0.05", it.ProfitPercentage.String())
		case "labor":
			assert.True(t, it.ProfitPercentage.IsZero())
		}
	}
}

func TestCreateQuotation_PolicyOverridesSentRates(t *testing.T) {
	f := newFixture(t)
	req := f.createRequest()
	// Whatever the UI shows, creation opens products at 25% and permits at 5%.
	// Free-form rates only take effect on later edits.
	req.UsedProducts[0].ProfitPercentage = decPtr(0.10)
	req.Items = []dto.ItemLineRequest{
		{Description: "Tramites ante el operador de red", Category: "permits", Unit: "global",
			Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(800000),
			ProfitPercentage: decPtr(0.10)},
	}

	resp, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "0.25", resp.UsedProducts[0].ProfitPercentage.String())
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "0.05", resp.Items[0].ProfitPercentage.String())
}

func TestCreateQuotation_UnknownProductQuotesAtZero(t *testing.T) {
	f := newFixture(t)
	req := f.createRequest()
	req.UsedProducts = append(req.UsedProducts, dto.ProductLineRequest{
		ProductType: "panel", ProductID: uuid.NewString(),
	})

	resp, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.UsedProducts, 2)
	// Zero unit power derives zero panels; the row is kept for later editing.
	assert.Equal(t, 0, resp.UsedProducts[1].Quantity)
	assert.True(t, resp.UsedProducts[1].UnitPrice.IsZero())
	assert.True(t, resp.UsedProducts[1].TotalValue.IsZero())
}

func TestCreateQuotation_SummaryWithDefaultParameters(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	// 14 panels × 480,000 × 1.25 = 8,400,000.
	assert.Equal(t, "8400000", resp.Summary.Subtotal.String())
	// Defaults: 3% / 8% / 2% / 5%, IVA 19% on profit, withholdings 3.5% added on top.
	assert.Equal(t, "252000", resp.Summary.CommercialManagement.String())
	assert.Equal(t, "8652000", resp.Summary.Subtotal2.String())
	assert.Equal(t, "692160", resp.Summary.Administration.String())
	assert.Equal(t, "173040", resp.Summary.Contingency.String())
	assert.Equal(t, "432600", resp.Summary.Profit.String())
	assert.Equal(t, "82194", resp.Summary.ProfitIVA.String())
	assert.Equal(t, "10031994", resp.Summary.Subtotal3.String())
	assert.Equal(t, "351119.79", resp.Summary.Withholdings.String())
	assert.Equal(t, "10383113.79", resp.Summary.TotalValue.String())

	// No explicit rates were sent, so the stored columns must stay NULL —
	// defaults are resolved at computation time, never persisted.
	stored := f.repo.quotations[uuid.MustParse(resp.ID)]
	assert.Nil(t, stored.CommercialManagementPct)
	assert.Nil(t, stored.WithholdingPct)
}

func TestCreateQuotation_ExplicitZeroRatePersisted(t *testing.T) {
	f := newFixture(t)
	req := f.createRequest()
	req.Parameters.WithholdingPercentage = decPtr(0)

	resp, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	// An explicit zero is a stored value, not a missing one: no default kicks in.
	assert.True(t, resp.Summary.Withholdings.IsZero())
	stored := f.repo.quotations[uuid.MustParse(resp.ID)]
	require.NotNil(t, stored.WithholdingPct)
	assert.True(t, stored.WithholdingPct.IsZero())
}

func TestCreateQuotation_ClientNotFound(t *testing.T) {
	f := newFixture(t)
	req := f.createRequest()
	req.ClientID = uuid.New().String()

	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorContains(t, err, "client not found")
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestUpdateQuotation_RowDiscriminator(t *testing.T) {
	f := newFixture(t)
	req := f.createRequest()
	req.Items = []dto.ItemLineRequest{
		{Description: "Mano de obra", Category: "labor", Unit: "kW",
			Quantity: decimal.NewFromFloat(5.5), UnitPrice: decimal.NewFromInt(350000)},
	}
	created, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)
	panelRowID := created.UsedProducts[0].UsedProductID

	// Keep the panel row (id present), add an inverter (no id), drop the item.
	qty := 1
	updated, err := f.svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateQuotationRequest{
		ProjectName:    created.ProjectName,
		TargetPowerKwp: decimal.NewFromFloat(5.5),
		SystemType:     "on-grid",
		GridType:       "single-phase",
		UsedProducts: []dto.ProductLineRequest{
			{UsedProductID: &panelRowID, ProductType: "panel", ProductID: f.panelID.String()},
			{ProductType: "inverter", ProductID: f.inverterID.String(), Quantity: &qty},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.UsedProducts, 2)
	assert.Empty(t, updated.Items, "stored item absent from the payload must be deleted")

	var panelKept, inverterNew bool
	for _, p := range updated.UsedProducts {
		switch p.ProductType {
		case "panel":
			panelKept = p.UsedProductID == panelRowID
		case "inverter":
			inverterNew = p.UsedProductID != "" && p.UsedProductID != panelRowID
		}
	}
	assert.True(t, panelKept, "row sent with its id must keep that id")
	assert.True(t, inverterNew, "row sent without id must be inserted with a fresh id")
}

func TestUpdateQuotation_StoredRateSurvivesOmission(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)
	panelRowID := created.UsedProducts[0].UsedProductID

	// An explicit rate on an edit replaces the creation-policy 25%.
	edited, err := f.svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateQuotationRequest{
		ProjectName:    created.ProjectName,
		TargetPowerKwp: decimal.NewFromFloat(5.5),
		SystemType:     "on-grid",
		GridType:       "single-phase",
		UsedProducts: []dto.ProductLineRequest{
			{UsedProductID: &panelRowID, ProductType: "panel", ProductID: f.panelID.String(),
				ProfitPercentage: decPtr(0.12)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "0.12", edited.UsedProducts[0].ProfitPercentage.String())

	// Omitting profit_percentage on a later edit keeps the stored 12%; the
	// creation policy never re-applies to existing rows.
	updated, err := f.svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateQuotationRequest{
		ProjectName:    created.ProjectName,
		TargetPowerKwp: decimal.NewFromFloat(5.5),
		SystemType:     "on-grid",
		GridType:       "single-phase",
		UsedProducts: []dto.ProductLineRequest{
			{UsedProductID: &panelRowID, ProductType: "panel", ProductID: f.panelID.String()},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "0.12", updated.UsedProducts[0].ProfitPercentage.String())
}

func TestUpdateQuotation_ForeignRowRejected(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	foreign := uuid.New().String()
	_, err = f.svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateQuotationRequest{
		ProjectName:    created.ProjectName,
		TargetPowerKwp: decimal.NewFromFloat(5.5),
		SystemType:     "on-grid",
		GridType:       "single-phase",
		UsedProducts: []dto.ProductLineRequest{
			{UsedProductID: &foreign, ProductType: "panel", ProductID: f.panelID.String()},
		},
	})
	assert.ErrorContains(t, err, "does not belong to this quotation")
}

func TestUpdateQuotation_PanelQuantityFollowsNewTarget(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)
	panelRowID := created.UsedProducts[0].UsedProductID

	// 10.0 kWp / 415 W = 24.09 → 25.
	updated, err := f.svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateQuotationRequest{
		ProjectName:    created.ProjectName,
		TargetPowerKwp: decimal.NewFromInt(10),
		SystemType:     "on-grid",
		GridType:       "single-phase",
		UsedProducts: []dto.ProductLineRequest{
			{UsedProductID: &panelRowID, ProductType: "panel", ProductID: f.panelID.String()},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 25, updated.UsedProducts[0].Quantity)
}

// ── Status / lifecycle ────────────────────────────────────────────────────────

func TestChangeStatus_UnknownID(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	err = f.svc.ChangeStatus(context.Background(), uuid.MustParse(created.ID), 42)
	assert.ErrorContains(t, err, "unknown status id")
}

func TestChangeStatus_ContractedWithoutDispatcher(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	// No dispatcher wired (unit mode): contracting must still succeed.
	err = f.svc.ChangeStatus(context.Background(), uuid.MustParse(created.ID), model.StatusContracted)
	require.NoError(t, err)

	got, err := f.svc.Get(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, model.StatusContracted, got.StatusID)
	assert.Equal(t, "Contracted", got.StatusName)
}

func TestSend_RequiresClientEmail(t *testing.T) {
	f := newFixture(t)
	// Client without an email address.
	noMail := &model.Client{Name: "Sin Correo SAS", DocumentType: "NIT", Document: "901999999-1", Active: true}
	require.NoError(t, f.clientRepo.Create(context.Background(), noMail))

	req := f.createRequest()
	req.ClientID = noMail.ID.String()
	created, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	err = f.svc.Send(context.Background(), uuid.MustParse(created.ID))
	assert.ErrorContains(t, err, "no email")
}

func TestSend_MarksQuotationSent(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.Send(context.Background(), uuid.MustParse(created.ID)))

	got, err := f.svc.Get(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, model.StatusSent, got.StatusID)
}

func TestDelete_RemovesAggregate(t *testing.T) {
	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), f.createRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), uuid.MustParse(created.ID)))
	_, err = f.svc.Get(context.Background(), uuid.MustParse(created.ID))
	assert.ErrorContains(t, err, "not found")
}

// ── Recalculate ───────────────────────────────────────────────────────────────

func TestRecalculate_StatelessPreview(t *testing.T) {
	f := newFixture(t)

	summary, err := f.svc.Recalculate(context.Background(), dto.RecalculateRequest{
		UsedProducts: []dto.ProductLineValue{
			{Quantity: 2, UnitPrice: decimal.NewFromInt(100), ProfitPercentage: decPtr(0.5)},
		},
	})
	require.NoError(t, err)

	// 2 × 100 × 1.5 = 300; 3% commercial management on top.
	assert.Equal(t, "300", summary.Subtotal.String())
	assert.Equal(t, "309", summary.Subtotal2.String())

	// Nothing was persisted.
	assert.Empty(t, f.repo.quotations)
}
