package worker

// Processes electronic invoicing jobs from QueueInvoicing.
// Sends a POST to the DIAN sidecar and stores the CUFE result, then generates
// the proposal PDF and optionally enqueues the client email.

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Jhanky/Energy4Cero-sub001/internal/infra"
	"github.com/Jhanky/Energy4Cero-sub001/internal/model"
	"github.com/Jhanky/Energy4Cero-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MaxInvoiceRetries is the cap applied by the retry cron before an invoice is
// marked error and moved to the DLQ.
const MaxInvoiceRetries = 5

// InvoiceJobPayload is the job envelope sent to QueueInvoicing.
type InvoiceJobPayload struct {
	QuotationID string  `json:"quotation_id"`
	ClientEmail *string `json:"client_email,omitempty"`
}

// InvoiceWorker calls the DIAN sidecar and stores the CUFE result in the DB.
type InvoiceWorker struct {
	dianClient     *infra.DIANClient
	invoiceRepo    repository.InvoiceRepository
	quotationRepo  repository.QuotationRepository
	dispatcher     *Dispatcher
	companyName    string
	pdfStoragePath string
	issuerNIT      string
}

// NewInvoiceWorker wires all dependencies for the invoicing worker.
func NewInvoiceWorker(
	dianClient *infra.DIANClient,
	invoiceRepo repository.InvoiceRepository,
	quotationRepo repository.QuotationRepository,
	dispatcher *Dispatcher,
	companyName string,
	pdfStoragePath string,
	issuerNIT string,
) *InvoiceWorker {
	return &InvoiceWorker{
		dianClient:     dianClient,
		invoiceRepo:    invoiceRepo,
		quotationRepo:  quotationRepo,
		dispatcher:     dispatcher,
		companyName:    companyName,
		pdfStoragePath: pdfStoragePath,
		issuerNIT:      issuerNIT,
	}
}

// Process handles a single invoicing job:
//  1. Parse InvoiceJobPayload from the job envelope
//  2. Fetch the quotation (with client and lines) from DB
//  3. Create the invoice record with status="pending"
//  4. Call the DIAN sidecar with exponential backoff (max 3 attempts)
//  5. Update the invoice (CUFE / status / error)
//  6. Generate the proposal PDF
//  7. Optionally enqueue the client email
func (w *InvoiceWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload InvoiceJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("invoice_worker: invalid payload")
		return
	}

	quotationID, err := uuid.Parse(payload.QuotationID)
	if err != nil {
		log.Error().Str("quotation_id", payload.QuotationID).Msg("invoice_worker: invalid quotation_id")
		return
	}

	q, err := w.quotationRepo.FindByID(ctx, quotationID)
	if err != nil {
		log.Error().Err(err).Str("quotation_id", payload.QuotationID).Msg("invoice_worker: quotation not found")
		return
	}

	inv := &model.ElectronicInvoice{
		QuotationID: quotationID,
		NetAmount:   q.Subtotal3,
		IVAAmount:   q.ProfitIVA,
		TotalAmount: q.TotalValue,
		Status:      "pending",
	}
	if q.Client != nil {
		inv.ClientNIT = &q.Client.Document
		inv.ClientName = &q.Client.Name
	}
	if err := w.invoiceRepo.Create(ctx, inv); err != nil {
		log.Error().Err(err).Str("quotation_id", payload.QuotationID).Msg("invoice_worker: failed to create invoice")
		return
	}

	// DIAN call with exponential backoff: immediate, 1s, 2s.
	var dianResp *infra.DIANResponse
	dianErr := withRetry(ctx, 3, func(attempt int) error {
		resp, err := w.dianClient.Issue(ctx, w.buildPayload(q))
		if err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("quotation_id", payload.QuotationID).
				Msg("invoice_worker: DIAN attempt failed, retrying")
			return err
		}
		dianResp = resp
		return nil
	})

	switch {
	case dianErr != nil:
		// Stays pending; the retry cron picks it up via next_retry_at.
		log.Error().Err(dianErr).Str("quotation_id", payload.QuotationID).Msg("invoice_worker: DIAN failed after all retries")
		errMsg := fmt.Sprintf("DIAN error after 3 attempts: %v", dianErr)
		inv.LastError = &errMsg
		nextRetry := time.Now().Add(computeRetryBackoff(1))
		inv.NextRetryAt = &nextRetry
		inv.RetryCount = 1
		_ = w.invoiceRepo.Update(ctx, inv)

	case dianResp.Result == "A":
		inv.Status = "issued"
		cufe := dianResp.CUFE
		inv.CUFE = &cufe
		if issued, err := time.Parse(time.RFC3339, dianResp.IssuedAt); err == nil {
			inv.IssuedAt = &issued
		}
		_ = w.invoiceRepo.Update(ctx, inv)
		log.Info().Str("cufe", cufe).Str("quotation_id", payload.QuotationID).Msg("invoice_worker: CUFE obtained successfully")

	default:
		inv.Status = "rejected"
		notes := fmt.Sprintf("DIAN rejected the invoice: result=%s", dianResp.Result)
		inv.Notes = &notes
		_ = w.invoiceRepo.Update(ctx, inv)
		log.Warn().Str("result", dianResp.Result).Str("quotation_id", payload.QuotationID).Msg("invoice_worker: DIAN rejected")
	}

	// Proposal PDF — failure here never blocks the fiscal record.
	pdfPath, pdfErr := infra.GenerateProposalPDF(q, w.companyName, w.pdfStoragePath)
	if pdfErr != nil {
		log.Warn().Err(pdfErr).Str("quotation_id", payload.QuotationID).Msg("invoice_worker: PDF generation failed")
	} else {
		rel := filepath.Base(pdfPath)
		inv.PDFPath = &rel
		_ = w.invoiceRepo.Update(ctx, inv)
	}

	if payload.ClientEmail != nil && *payload.ClientEmail != "" && pdfPath != "" {
		emailJob := EmailJobPayload{
			ToEmail: *payload.ClientEmail,
			Subject: fmt.Sprintf("%s — Quotation No. %d", w.companyName, q.Number),
			Body:    fmt.Sprintf("Attached you will find your solar proposal.\nTotal: $%s", q.TotalValue.StringFixed(2)),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueQuotationEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *payload.ClientEmail).Msg("invoice_worker: failed to enqueue email")
		}
	}
}

func (w *InvoiceWorker) buildPayload(q *model.Quotation) infra.DIANPayload {
	p := infra.DIANPayload{
		IssuerNIT:   w.issuerNIT,
		NetAmount:   q.Subtotal3.InexactFloat64(),
		IVAAmount:   q.ProfitIVA.InexactFloat64(),
		TotalAmount: q.TotalValue.InexactFloat64(),
		QuotationID: q.ID.String(),
	}
	if q.Client != nil {
		p.ClientNIT = q.Client.Document
		p.ClientName = q.Client.Name
	}
	return p
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

// computeRetryBackoff spaces cron retries: 1m, 2m, 4m … capped at 30m.
func computeRetryBackoff(retryCount int) time.Duration {
	backoff := time.Duration(1<<uint(retryCount-1)) * time.Minute
	if backoff > 30*time.Minute {
		backoff = 30 * time.Minute
	}
	return backoff
}
