package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Jhanky/Energy4Cero-sub001/internal/dto"
	"github.com/Jhanky/Energy4Cero-sub001/internal/infra"
	"github.com/Jhanky/Energy4Cero-sub001/internal/model"
	"github.com/Jhanky/Energy4Cero-sub001/internal/repository"
	"github.com/Jhanky/Energy4Cero-sub001/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory InvoiceRepository stub ─────────────────────────────────────────

type stubInvoiceRepo struct {
	invoices    map[uuid.UUID]*model.ElectronicInvoice
	byQuotation map[uuid.UUID]*model.ElectronicInvoice
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{
		invoices:    make(map[uuid.UUID]*model.ElectronicInvoice),
		byQuotation: make(map[uuid.UUID]*model.ElectronicInvoice),
	}
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *model.ElectronicInvoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	inv.CreatedAt = time.Now()
	cloned := *inv
	r.invoices[inv.ID] = &cloned
	r.byQuotation[inv.QuotationID] = r.invoices[inv.ID]
	return nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ElectronicInvoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return inv, nil
}

func (r *stubInvoiceRepo) FindByQuotationID(_ context.Context, quotationID uuid.UUID) (*model.ElectronicInvoice, error) {
	inv, ok := r.byQuotation[quotationID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return inv, nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, inv *model.ElectronicInvoice) error {
	cloned := *inv
	r.invoices[inv.ID] = &cloned
	r.byQuotation[inv.QuotationID] = r.invoices[inv.ID]
	return nil
}

func (r *stubInvoiceRepo) ListPendingRetries(_ context.Context, _ time.Time, limit int) ([]model.ElectronicInvoice, error) {
	var results []model.ElectronicInvoice
	for _, inv := range r.invoices {
		if (inv.Status == "pending" || inv.Status == "error") && inv.NextRetryAt != nil {
			results = append(results, *inv)
		}
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

var _ repository.InvoiceRepository = (*stubInvoiceRepo)(nil)

// ── Minimal QuotationRepository stub (the worker only reads) ─────────────────

type stubQuotationReader struct {
	quotations map[uuid.UUID]*model.Quotation
}

func newStubQuotationReader() *stubQuotationReader {
	return &stubQuotationReader{quotations: make(map[uuid.UUID]*model.Quotation)}
}

func (r *stubQuotationReader) FindByID(_ context.Context, id uuid.UUID) (*model.Quotation, error) {
	q, ok := r.quotations[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return q, nil
}

func (r *stubQuotationReader) Create(_ context.Context, _ *gorm.DB, _ *model.Quotation) error {
	return nil
}
func (r *stubQuotationReader) List(_ context.Context, _ dto.QuotationFilter) ([]model.Quotation, int64, error) {
	return nil, 0, nil
}
func (r *stubQuotationReader) UpdateStatus(_ context.Context, _ uuid.UUID, _ int) error { return nil }
func (r *stubQuotationReader) Delete(_ context.Context, _ uuid.UUID) error              { return nil }
func (r *stubQuotationReader) NextNumber(_ context.Context, _ *gorm.DB) (int, error)    { return 1, nil }
func (r *stubQuotationReader) ListStatuses(_ context.Context) ([]model.QuotationStatus, error) {
	return nil, nil
}
func (r *stubQuotationReader) SaveTx(_ *gorm.DB, _ *model.Quotation) error           { return nil }
func (r *stubQuotationReader) UpsertProductTx(_ *gorm.DB, _ *model.UsedProduct) error { return nil }
func (r *stubQuotationReader) UpsertItemTx(_ *gorm.DB, _ *model.QuotationItem) error  { return nil }
func (r *stubQuotationReader) DeleteProductsNotInTx(_ *gorm.DB, _ uuid.UUID, _ []uuid.UUID) error {
	return nil
}
func (r *stubQuotationReader) DeleteItemsNotInTx(_ *gorm.DB, _ uuid.UUID, _ []uuid.UUID) error {
	return nil
}
func (r *stubQuotationReader) DB() *gorm.DB { return nil }

var _ repository.QuotationRepository = (*stubQuotationReader)(nil)

// ── helpers ───────────────────────────────────────────────────────────────────

func buildContractedQuotation() *model.Quotation {
	return &model.Quotation{
		ID:             uuid.New(),
		Number:         1042,
		ProjectName:    "Bodega industrial 30 kWp",
		TargetPowerKwp: decimal.NewFromInt(30),
		SystemType:     "on-grid",
		GridType:       "three-phase",
		StatusID:       model.StatusContracted,
		Subtotal3:      decimal.NewFromInt(58000000),
		ProfitIVA:      decimal.NewFromInt(551000),
		TotalValue:     decimal.NewFromInt(60030000),
		Client: &model.Client{
			ID:       uuid.New(),
			Name:     "Agroindustrias del Valle",
			Document: "900555444-3",
		},
		UsedProducts: []model.UsedProduct{
			{
				ProductType: "panel", Brand: "Jinko", Model: "Tiger Neo 580W",
				Quantity: 52, UnitPrice: decimal.NewFromInt(480000),
				ProfitPct:    decimal.NewFromFloat(0.25),
				PartialValue: decimal.NewFromInt(24960000),
				Profit:       decimal.NewFromInt(6240000),
				TotalValue:   decimal.NewFromInt(31200000),
			},
		},
	}
}

func mustJSON(v interface{}) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func newWorker(t *testing.T, sidecarURL string) (*worker.InvoiceWorker, *stubInvoiceRepo, *model.Quotation, string) {
	t.Helper()
	invoiceRepo := newStubInvoiceRepo()
	quotationRepo := newStubQuotationReader()
	q := buildContractedQuotation()
	quotationRepo.quotations[q.ID] = q

	pdfDir := t.TempDir()
	dianClient := infra.NewDIANClient(sidecarURL)
	w := worker.NewInvoiceWorker(dianClient, invoiceRepo, quotationRepo, nil,
		"Energy4Cero", pdfDir, "901000000-1")
	return w, invoiceRepo, q, pdfDir
}

// ── InvoiceWorker tests ───────────────────────────────────────────────────────

func TestInvoiceWorker_SidecarDown_StaysPending(t *testing.T) {
	// Nothing listens on this port.
	w, invoiceRepo, q, _ := newWorker(t, "http://localhost:19999")

	w.Process(context.Background(), mustJSON(worker.InvoiceJobPayload{QuotationID: q.ID.String()}))

	inv, err := invoiceRepo.FindByQuotationID(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", inv.Status)
	assert.NotNil(t, inv.LastError)
	assert.Equal(t, 1, inv.RetryCount)
	require.NotNil(t, inv.NextRetryAt, "retry cron needs a next_retry_at to pick the invoice up")
	assert.True(t, inv.NextRetryAt.After(time.Now()))
}

func TestInvoiceWorker_Accepted_StoresCUFE(t *testing.T) {
	issuedAt := time.Now().UTC().Format(time.RFC3339)
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/issue", req.URL.Path)
		var payload infra.DIANPayload
		require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		assert.Equal(t, "901000000-1", payload.IssuerNIT)
		assert.Equal(t, "900555444-3", payload.ClientNIT)

		json.NewEncoder(rw).Encode(infra.DIANResponse{
			CUFE:     "a1b2c3d4e5f6",
			IssuedAt: issuedAt,
			Result:   "A",
		})
	}))
	defer srv.Close()

	w, invoiceRepo, q, _ := newWorker(t, srv.URL)
	w.Process(context.Background(), mustJSON(worker.InvoiceJobPayload{QuotationID: q.ID.String()}))

	inv, err := invoiceRepo.FindByQuotationID(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, "issued", inv.Status)
	require.NotNil(t, inv.CUFE)
	assert.Equal(t, "a1b2c3d4e5f6", *inv.CUFE)
	assert.NotNil(t, inv.IssuedAt)
	assert.True(t, decimal.NewFromInt(60030000).Equal(inv.TotalAmount))
}

func TestInvoiceWorker_Rejected_KeepsObservations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(rw).Encode(infra.DIANResponse{Result: "R"})
	}))
	defer srv.Close()

	w, invoiceRepo, q, _ := newWorker(t, srv.URL)
	w.Process(context.Background(), mustJSON(worker.InvoiceJobPayload{QuotationID: q.ID.String()}))

	inv, err := invoiceRepo.FindByQuotationID(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", inv.Status)
	assert.Nil(t, inv.CUFE)
	require.NotNil(t, inv.Notes)
	assert.Contains(t, *inv.Notes, "result=R")
}

func TestInvoiceWorker_PDFGeneratedDespiteSidecarFailure(t *testing.T) {
	// The proposal PDF is commercial collateral: a DIAN outage must not
	// prevent it from being produced.
	w, invoiceRepo, q, pdfDir := newWorker(t, "http://localhost:19999")
	w.Process(context.Background(), mustJSON(worker.InvoiceJobPayload{QuotationID: q.ID.String()}))

	inv, err := invoiceRepo.FindByQuotationID(context.Background(), q.ID)
	require.NoError(t, err)
	require.NotNil(t, inv.PDFPath)

	info, statErr := os.Stat(filepath.Join(pdfDir, *inv.PDFPath))
	require.NoError(t, statErr)
	assert.Greater(t, info.Size(), int64(100))
}
