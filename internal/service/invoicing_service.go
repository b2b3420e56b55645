package service

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/Jhanky/Energy4Cero-sub001/internal/dto"
	"github.com/Jhanky/Energy4Cero-sub001/internal/model"
	"github.com/Jhanky/Energy4Cero-sub001/internal/repository"
	"github.com/Jhanky/Energy4Cero-sub001/internal/worker"

	"github.com/google/uuid"
)

// InvoicingService exposes the read side of electronic invoicing plus the
// manual retry hook used when an invoice landed in the DLQ.
type InvoicingService interface {
	GetByQuotation(ctx context.Context, quotationID uuid.UUID) (*dto.InvoiceResponse, error)
	// PDFFile resolves the stored PDF of an invoice to an absolute path plus
	// the download file name. Errors when the invoice has no rendered PDF yet.
	PDFFile(ctx context.Context, id uuid.UUID) (path string, name string, err error)
	Retry(ctx context.Context, id uuid.UUID) error
}

type invoicingService struct {
	repo       repository.InvoiceRepository
	dispatcher *worker.Dispatcher
	pdfDir     string
}

func NewInvoicingService(repo repository.InvoiceRepository, dispatcher *worker.Dispatcher, pdfDir string) InvoicingService {
	return &invoicingService{repo: repo, dispatcher: dispatcher, pdfDir: pdfDir}
}

func (s *invoicingService) GetByQuotation(ctx context.Context, quotationID uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := s.repo.FindByQuotationID(ctx, quotationID)
	if err != nil {
		return nil, errors.New("invoice not found")
	}
	resp := invoiceToResponse(inv)
	return &resp, nil
}

func (s *invoicingService) PDFFile(ctx context.Context, id uuid.UUID) (string, string, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", "", errors.New("invoice not found")
	}
	if inv.PDFPath == nil || *inv.PDFPath == "" {
		return "", "", errors.New("invoice has no PDF yet")
	}
	return filepath.Join(s.pdfDir, *inv.PDFPath), *inv.PDFPath, nil
}

// Retry re-enqueues an invoicing job for an invoice stuck in error. The retry
// counter resets so the cron treats it as a fresh attempt series.
func (s *invoicingService) Retry(ctx context.Context, id uuid.UUID) error {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("invoice not found")
	}
	if inv.Status == "issued" {
		return errors.New("invoice already issued")
	}
	inv.Status = "pending"
	inv.RetryCount = 0
	inv.NextRetryAt = nil
	inv.LastError = nil
	if err := s.repo.Update(ctx, inv); err != nil {
		return err
	}
	if s.dispatcher != nil {
		payload := worker.InvoiceJobPayload{QuotationID: inv.QuotationID.String()}
		return s.dispatcher.EnqueueInvoicing(ctx, payload)
	}
	return nil
}

func invoiceToResponse(inv *model.ElectronicInvoice) dto.InvoiceResponse {
	resp := dto.InvoiceResponse{
		ID:          inv.ID.String(),
		QuotationID: inv.QuotationID.String(),
		CUFE:        inv.CUFE,
		ClientNIT:   inv.ClientNIT,
		ClientName:  inv.ClientName,
		NetAmount:   inv.NetAmount,
		IVAAmount:   inv.IVAAmount,
		TotalAmount: inv.TotalAmount,
		Status:      inv.Status,
		PDFPath:     inv.PDFPath,
		RetryCount:  inv.RetryCount,
		LastError:   inv.LastError,
		CreatedAt:   inv.CreatedAt.Format(time.RFC3339),
	}
	if inv.IssuedAt != nil {
		issued := inv.IssuedAt.Format(time.RFC3339)
		resp.IssuedAt = &issued
	}
	return resp
}
