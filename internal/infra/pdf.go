package infra

// Commercial proposal PDF generation using go-pdf/fpdf.
// A4 portrait with project header, equipment and ancillary line tables, and
// the layered cost summary ending in the final price.
// The output file is saved to storagePath/quotation_{number}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Jhanky/Energy4Cero-sub001/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateProposalPDF renders the commercial proposal for a quotation.
// storagePath is created if needed. Returns the path of the generated file.
func GenerateProposalPDF(q *model.Quotation, companyName, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("quotation_%d.pdf", q.Number)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Commercial Solar Proposal", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Project info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Quotation No. %d", q.Number), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if q.Client != nil {
		pdf.CellFormat(contentW, 5, "Client: "+q.Client.Name, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, "Project: "+q.ProjectName, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("System: %s kWp  |  %s  |  %s",
		q.TargetPowerKwp.String(), q.SystemType, q.GridType), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Date: "+q.CreatedAt.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Equipment table ──────────────────────────────────────────────────────
	col1 := contentW * 0.44 // description
	col2 := contentW * 0.12 // qty
	col3 := contentW * 0.22 // unit price
	col4 := contentW * 0.22 // total

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Equipment", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Unit Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, p := range q.UsedProducts {
		desc := fmt.Sprintf("%s %s %s", p.ProductType, p.Brand, p.Model)
		pdf.CellFormat(col1, 5, desc, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("%d", p.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, money(p.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, money(p.TotalValue), "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// ── Ancillary items table ────────────────────────────────────────────────
	if len(q.Items) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, "Installation and Services", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(col1, 5, "Description", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, "Qty", "B", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "Unit Price", "B", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, "Total", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 8)
		for _, it := range q.Items {
			pdf.CellFormat(col1, 5, it.Description, "", 0, "L", false, 0, "")
			qty := it.Quantity.String()
			if it.Unit != "" {
				qty += " " + it.Unit
			}
			pdf.CellFormat(col2, 5, qty, "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 5, money(it.UnitPrice), "", 0, "R", false, 0, "")
			pdf.CellFormat(col4, 5, money(it.TotalValue), "", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	// ── Cost summary ─────────────────────────────────────────────────────────
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	labelW := contentW * 0.70
	valueW := contentW * 0.30

	summaryRow := func(label string, v decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.CellFormat(labelW, 5, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(valueW, 5, money(v), "", 1, "R", false, 0, "")
	}

	summaryRow("Subtotal", q.Subtotal, false)
	summaryRow("Commercial management", q.CommercialManagement, false)
	summaryRow("Subtotal 2", q.Subtotal2, false)
	summaryRow("Administration", q.Administration, false)
	summaryRow("Contingency", q.Contingency, false)
	summaryRow("Profit", q.Profit, false)
	summaryRow("IVA on profit", q.ProfitIVA, false)
	summaryRow("Subtotal 3", q.Subtotal3, false)
	summaryRow("Withholdings", q.Withholdings, false)
	pdf.Ln(1)
	summaryRow("TOTAL", q.TotalValue, true)

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Proposal valid for 30 days from the issue date. Prices in COP, IVA included where applicable.", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

func money(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}
