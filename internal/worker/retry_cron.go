package worker

// Background goroutine that periodically re-attempts DIAN calls for invoices
// stuck in status 'pending' or 'error' with a next_retry_at in the past.
// Uses the circuit breaker to avoid hammering a downed sidecar.

import (
	"context"
	"fmt"
	"time"

	"github.com/Jhanky/Energy4Cero-sub001/internal/infra"
	"github.com/Jhanky/Energy4Cero-sub001/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10
)

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	InvoiceRepo   repository.InvoiceRepository
	QuotationRepo repository.QuotationRepository
	DIANClient    *infra.DIANClient
	CB            *infra.CircuitBreaker
	RDB           *redis.Client
	IssuerNIT     string
}

// StartRetryCron launches a background goroutine that ticks every 30s,
// queries pending invoices, and re-attempts DIAN calls through the breaker.
// It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	// If the breaker is open, skip the whole tick.
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	invoices, err := cfg.InvoiceRepo.ListPendingRetries(ctx, time.Now(), retryBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query pending retries")
		return
	}
	if len(invoices) == 0 {
		return
	}

	log.Info().Int("count", len(invoices)).Msg("retry_cron: processing pending invoices")

	for i := range invoices {
		inv := &invoices[i]

		// The breaker may have tripped mid-batch.
		if cfg.CB.State() == infra.CBOpen {
			log.Debug().Msg("retry_cron: circuit breaker opened mid-batch, stopping")
			return
		}

		payload := infra.DIANPayload{
			IssuerNIT:   cfg.IssuerNIT,
			NetAmount:   inv.NetAmount.InexactFloat64(),
			IVAAmount:   inv.IVAAmount.InexactFloat64(),
			TotalAmount: inv.TotalAmount.InexactFloat64(),
			QuotationID: inv.QuotationID.String(),
		}
		if inv.ClientNIT != nil {
			payload.ClientNIT = *inv.ClientNIT
		}
		if inv.ClientName != nil {
			payload.ClientName = *inv.ClientName
		}

		var dianResp *infra.DIANResponse
		cbErr := cfg.CB.Execute(func() error {
			resp, err := cfg.DIANClient.Issue(ctx, payload)
			if err != nil {
				return err
			}
			dianResp = resp
			return nil
		})

		if cbErr != nil {
			inv.RetryCount++
			errMsg := cbErr.Error()
			inv.LastError = &errMsg
			nextRetry := time.Now().Add(computeRetryBackoff(inv.RetryCount))
			inv.NextRetryAt = &nextRetry

			if inv.RetryCount >= MaxInvoiceRetries {
				inv.Status = "error"
				inv.NextRetryAt = nil
				log.Error().
					Str("invoice_id", inv.ID.String()).
					Str("quotation_id", inv.QuotationID.String()).
					Int("retries", inv.RetryCount).
					Msg("retry_cron: max retries exceeded, moving to error/DLQ")

				dlqPayload := fmt.Sprintf(`{"quotation_id":"%s","invoice_id":"%s"}`, inv.QuotationID, inv.ID)
				SendToDLQ(ctx, cfg.RDB, QueueInvoicing, "invoicing", []byte(dlqPayload),
					fmt.Sprintf("max retries (%d) exceeded: %s", MaxInvoiceRetries, errMsg),
					inv.RetryCount)
			} else {
				log.Warn().
					Str("invoice_id", inv.ID.String()).
					Int("retry_count", inv.RetryCount).
					Time("next_retry_at", *inv.NextRetryAt).
					Msg("retry_cron: DIAN retry failed, scheduled next attempt")
			}

			_ = cfg.InvoiceRepo.Update(ctx, inv)
			continue
		}

		if dianResp != nil && dianResp.Result == "A" {
			inv.Status = "issued"
			cufe := dianResp.CUFE
			inv.CUFE = &cufe
			if issued, err := time.Parse(time.RFC3339, dianResp.IssuedAt); err == nil {
				inv.IssuedAt = &issued
			}
			inv.NextRetryAt = nil
			inv.LastError = nil
			_ = cfg.InvoiceRepo.Update(ctx, inv)

			log.Info().
				Str("cufe", cufe).
				Str("invoice_id", inv.ID.String()).
				Int("total_retries", inv.RetryCount).
				Msg("retry_cron: CUFE obtained after retry")
		} else if dianResp != nil {
			inv.Status = "rejected"
			notes := fmt.Sprintf("DIAN rejected on retry: result=%s", dianResp.Result)
			inv.Notes = &notes
			inv.NextRetryAt = nil
			_ = cfg.InvoiceRepo.Update(ctx, inv)
			log.Warn().
				Str("result", dianResp.Result).
				Str("invoice_id", inv.ID.String()).
				Msg("retry_cron: DIAN rejected on retry")
		}
	}
}
