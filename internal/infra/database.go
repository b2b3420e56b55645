package infra

import (
	"fmt"

	"github.com/Jhanky/Energy4Cero-sub001/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that
// GORM cannot express (sequences, partial indexes, catalog seeds).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations applies AutoMigrate plus schema patches. Exposed separately so
// integration tests can run it against a containerized database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.QuotationStatus{},
		&model.Client{},
		&model.Quotation{},
		&model.UsedProduct{},
		&model.QuotationItem{},
		&model.Panel{},
		&model.Inverter{},
		&model.Battery{},
		&model.Supplier{},
		&model.CostCenter{},
		&model.User{},
		&model.ElectronicInvoice{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot handle.
// Each statement uses IF NOT EXISTS / DO NOTHING semantics so re-running on
// an already-patched database is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Quotation numbers come from a sequence so concurrent creates never
		// collide. Starts at 1000 to match the numbering the commercial team
		// already uses on paper.
		`CREATE SEQUENCE IF NOT EXISTS quotations_number_seq START 1000`,

		// Partial index backing the invoice retry cron query.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_invoices_pending_retry') THEN
		    CREATE INDEX idx_invoices_pending_retry
		        ON electronic_invoices (next_retry_at)
		        WHERE status IN ('pending', 'error') AND next_retry_at IS NOT NULL;
		  END IF;
		END $$`,

		// Status catalog seed. Ids are fixed; names never change.
		`INSERT INTO quotation_statuses (id, name) VALUES
		  (1, 'Draft'), (2, 'Sent'), (3, 'Pending'),
		  (4, 'Accepted'), (5, 'Rejected'), (6, 'Contracted')
		 ON CONFLICT (id) DO NOTHING`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("schema patch: %w", err)
		}
	}
	return nil
}
