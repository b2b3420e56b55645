package infra_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Jhanky/Energy4Cero-sub001/internal/infra"
	"github.com/Jhanky/Energy4Cero-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildQuotationForPDF() *model.Quotation {
	email := "cliente@example.co"
	return &model.Quotation{
		ID:             uuid.New(),
		Number:         1007,
		ProjectName:    "Residencial 5.5 kWp",
		TargetPowerKwp: decimal.NewFromFloat(5.5),
		SystemType:     "on-grid",
		GridType:       "single-phase",
		StatusID:       model.StatusSent,
		Subtotal:       decimal.NewFromInt(8400000),
		Subtotal2:      decimal.NewFromInt(8652000),
		Subtotal3:      decimal.NewFromInt(10031994),
		TotalValue:     decimal.NewFromFloat(10383113.79),
		Client: &model.Client{
			Name:     "Finca La Esperanza",
			Document: "900123456-7",
			Email:    &email,
		},
		UsedProducts: []model.UsedProduct{
			{
				ProductType: "panel", Brand: "Jinko", Model: "Tiger Neo 415W",
				Quantity: 14, UnitPrice: decimal.NewFromInt(480000),
				ProfitPct:    decimal.NewFromFloat(0.25),
				PartialValue: decimal.NewFromInt(6720000),
				Profit:       decimal.NewFromInt(1680000),
				TotalValue:   decimal.NewFromInt(8400000),
			},
		},
		Items: []model.QuotationItem{
			{
				Description: "Mano de obra instalacion", Category: "labor", Unit: "kW",
				Quantity:  decimal.NewFromFloat(5.5),
				UnitPrice: decimal.NewFromInt(350000),
			},
		},
	}
}

func TestGenerateProposalPDF_WritesFile(t *testing.T) {
	tmpDir := t.TempDir()

	path, err := infra.GenerateProposalPDF(buildQuotationForPDF(), "Energy4Cero", tmpDir)
	require.NoError(t, err)

	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.Greater(t, info.Size(), int64(100), "PDF should have content > 100 bytes")
}

func TestGenerateProposalPDF_FileName(t *testing.T) {
	tmpDir := t.TempDir()
	q := buildQuotationForPDF()
	q.Number = 2031

	path, err := infra.GenerateProposalPDF(q, "Energy4Cero", tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "quotation_2031.pdf", filepath.Base(path))
}

func TestGenerateProposalPDF_CreatesStorageDir(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "pdfs")

	path, err := infra.GenerateProposalPDF(buildQuotationForPDF(), "Energy4Cero", tmpDir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
