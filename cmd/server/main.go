package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jhanky/Energy4Cero-sub001/internal/config"
	"github.com/Jhanky/Energy4Cero-sub001/internal/infra"
	"github.com/Jhanky/Energy4Cero-sub001/internal/repository"
	"github.com/Jhanky/Energy4Cero-sub001/internal/router"
	"github.com/Jhanky/Energy4Cero-sub001/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title        Energy4Cero API
// @version      1.0
// @description  Commercial backend for solar quotation pricing, DIAN e-invoicing and proposal delivery.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Start goroutine worker pool for async tasks (DIAN invoicing, proposal
	// PDF + email). Worker handlers are wired here (composition root) so the
	// pool has full access to all infrastructure dependencies.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dianClient := infra.NewDIANClient(cfg.DIANSidecarURL)
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)
	invoiceRepo := repository.NewInvoiceRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)

	workerHandlers := &worker.WorkerHandlers{
		Invoicing: worker.NewInvoiceWorker(dianClient, invoiceRepo, quotationRepo, dispatcher,
			cfg.CompanyName, cfg.PDFStoragePath, cfg.DIANIssuerNIT),
		Proposal: worker.NewProposalWorker(quotationRepo, dispatcher, cfg.CompanyName, cfg.PDFStoragePath),
		Email:    worker.NewEmailWorker(mailer),
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)

	// Circuit breaker guards the DIAN sidecar; shared by the retry cron and
	// the health endpoint so operators can see its state.
	dianCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	worker.StartRetryCron(ctx, worker.RetryCronConfig{
		InvoiceRepo:   invoiceRepo,
		QuotationRepo: quotationRepo,
		DIANClient:    dianClient,
		CB:            dianCB,
		RDB:           rdb,
		IssuerNIT:     cfg.DIANIssuerNIT,
	})

	r := router.New(cfg, db, rdb, dianCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Energy4Cero backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
