package worker

// Processes proposal-send jobs from QueueProposal: loads the quotation,
// renders the proposal PDF and hands the result to the email queue.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Jhanky/Energy4Cero-sub001/internal/infra"
	"github.com/Jhanky/Energy4Cero-sub001/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ProposalJobPayload is the job envelope sent to QueueProposal. The quotation
// service fills it when a quotation is sent to the client.
type ProposalJobPayload struct {
	QuotationID string `json:"quotation_id"`
	ToEmail     string `json:"to_email"`
}

// ProposalWorker renders proposal PDFs and chains the result into QueueEmail.
type ProposalWorker struct {
	quotationRepo  repository.QuotationRepository
	dispatcher     *Dispatcher
	companyName    string
	pdfStoragePath string
}

func NewProposalWorker(
	quotationRepo repository.QuotationRepository,
	dispatcher *Dispatcher,
	companyName string,
	pdfStoragePath string,
) *ProposalWorker {
	return &ProposalWorker{
		quotationRepo:  quotationRepo,
		dispatcher:     dispatcher,
		companyName:    companyName,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process renders the PDF for one quotation and enqueues the email job.
func (w *ProposalWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ProposalJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("proposal_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Str("quotation_id", payload.QuotationID).Msg("proposal_worker: empty to_email — skipping")
		return
	}
	qID, err := uuid.Parse(payload.QuotationID)
	if err != nil {
		log.Error().Err(err).Str("quotation_id", payload.QuotationID).Msg("proposal_worker: invalid quotation id")
		return
	}

	q, err := w.quotationRepo.FindByID(ctx, qID)
	if err != nil {
		log.Error().Err(err).Str("quotation_id", payload.QuotationID).Msg("proposal_worker: quotation not found")
		return
	}

	pdfPath, err := infra.GenerateProposalPDF(q, w.companyName, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Str("quotation_id", payload.QuotationID).Msg("proposal_worker: PDF generation failed")
		return
	}

	if w.dispatcher == nil {
		return
	}
	emailJob := EmailJobPayload{
		ToEmail: payload.ToEmail,
		Subject: fmt.Sprintf("%s — Quotation No. %d", w.companyName, q.Number),
		Body:    fmt.Sprintf("Attached you will find your solar proposal.\nTotal: $%s", q.TotalValue.StringFixed(2)),
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueQuotationEmail(ctx, emailJob); err != nil {
		log.Warn().Err(err).Str("email", payload.ToEmail).Msg("proposal_worker: failed to enqueue email")
		return
	}
	log.Info().Str("email", payload.ToEmail).Int("number", q.Number).Msg("proposal_worker: proposal queued for delivery")
}
