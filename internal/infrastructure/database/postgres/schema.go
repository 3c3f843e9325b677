package postgres

import (
	"context"
	"fmt"
	"log/slog"
)

const createCustomersTable = `
    CREATE TABLE IF NOT EXISTS customers (
        id               TEXT PRIMARY KEY,
        type             TEXT NOT NULL DEFAULT '',
        segment          TEXT NOT NULL DEFAULT '',
        first_name       TEXT NOT NULL DEFAULT '',
        last_name        TEXT NOT NULL DEFAULT '',
        business_name    TEXT NOT NULL DEFAULT '',
        display_name     TEXT NULL,
        email            TEXT NOT NULL DEFAULT '',
        document_type    TEXT NOT NULL DEFAULT '',
        document_number  TEXT NOT NULL DEFAULT '',
        phone            TEXT NOT NULL DEFAULT '',
        address_line1    TEXT NOT NULL DEFAULT '',
        address_city     TEXT NOT NULL DEFAULT '',
        address_district TEXT NOT NULL DEFAULT '',
        address_country  TEXT NOT NULL DEFAULT '',
        active           BOOLEAN NOT NULL DEFAULT TRUE,
        created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
        deleted_at       TIMESTAMPTZ NULL
    )`

// ActiveDocumentIndex allows any number of inactive records per document but
// at most one active one.
const ActiveDocumentIndex = "ux_doc_active_true"

const createActiveDocumentIndex = `
    CREATE UNIQUE INDEX IF NOT EXISTS ` + ActiveDocumentIndex + `
    ON customers (document_type, document_number, active)
    WHERE active = TRUE`

func EnsureSchema(ctx context.Context, db DBPool, logger *slog.Logger) error {
	if _, err := db.Exec(ctx, createCustomersTable); err != nil {
		logger.ErrorContext(ctx, "Failed to create customers table", slog.Any("error", err))
		return fmt.Errorf("failed to create customers table: %w", translateDBError(err, logger))
	}
	logger.InfoContext(ctx, "Ensured customers table exists")
	return nil
}

// EnsureIndexes is idempotent. It fails when existing rows already violate the
// index, which leaves the table usable but unprotected against concurrent
// duplicate creates.
func EnsureIndexes(ctx context.Context, db DBPool, logger *slog.Logger) error {
	logCtx := logger.With(slog.String("index", ActiveDocumentIndex))
	if _, err := db.Exec(ctx, createActiveDocumentIndex); err != nil {
		logCtx.ErrorContext(ctx, "Failed to ensure unique active document index", slog.Any("error", err))
		return fmt.Errorf("failed to ensure index %s: %w", ActiveDocumentIndex, translateDBError(err, logger))
	}
	logCtx.InfoContext(ctx, "Ensured unique active document index")
	return nil
}
