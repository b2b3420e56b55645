package worker_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Jhanky/Energy4Cero-sub001/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProposalWorker(t *testing.T) (*worker.ProposalWorker, *stubQuotationReader, string) {
	t.Helper()
	quotationRepo := newStubQuotationReader()
	pdfDir := t.TempDir()
	w := worker.NewProposalWorker(quotationRepo, nil, "Energy4Cero", pdfDir)
	return w, quotationRepo, pdfDir
}

func TestProposalWorker_RendersPDFFromSendEnvelope(t *testing.T) {
	w, quotationRepo, pdfDir := newProposalWorker(t)
	q := buildContractedQuotation()
	quotationRepo.quotations[q.ID] = q

	// The exact envelope the quotation service enqueues on send.
	payload := worker.ProposalJobPayload{
		QuotationID: q.ID.String(),
		ToEmail:     "gerencia@agrovalle.co",
	}
	w.Process(context.Background(), mustJSON(payload))

	info, err := os.Stat(filepath.Join(pdfDir, fmt.Sprintf("quotation_%d.pdf", q.Number)))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(100))
}

func TestProposalWorker_EmptyRecipientSkips(t *testing.T) {
	w, quotationRepo, pdfDir := newProposalWorker(t)
	q := buildContractedQuotation()
	quotationRepo.quotations[q.ID] = q

	w.Process(context.Background(), mustJSON(worker.ProposalJobPayload{QuotationID: q.ID.String()}))

	entries, err := os.ReadDir(pdfDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProposalWorker_UnknownQuotationSkips(t *testing.T) {
	w, _, pdfDir := newProposalWorker(t)

	w.Process(context.Background(), mustJSON(worker.ProposalJobPayload{
		QuotationID: uuid.NewString(),
		ToEmail:     "gerencia@agrovalle.co",
	}))

	entries, err := os.ReadDir(pdfDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
