package batch

import (
	"context"
	"customers-service/internal/domain/customer"
	"customers-service/internal/infrastructure/monitoring"
	"fmt"
	"log/slog"
	"time"
)

type DuplicateFinder interface {
	FindDuplicateActiveDocuments(ctx context.Context) ([]customer.DuplicateDocument, error)
}

// DocumentIntegrityJob reports documents held by more than one active
// customer. It never modifies data.
type DocumentIntegrityJob struct {
	finder DuplicateFinder
	logger *slog.Logger
}

func NewDocumentIntegrityJob(finder DuplicateFinder, logger *slog.Logger) *DocumentIntegrityJob {
	if finder == nil || logger == nil {
		panic("DocumentIntegrityJob dependencies cannot be nil")
	}
	return &DocumentIntegrityJob{
		finder: finder,
		logger: logger.With("job", "DocumentIntegrity"),
	}
}

func (j *DocumentIntegrityJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting active document integrity check.")

	dups, err := j.finder.FindDuplicateActiveDocuments(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to query duplicate active documents, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run integrity check: %w", err)
	}

	affected := 0
	for _, d := range dups {
		affected += d.Count
		j.logger.WarnContext(ctx, "Document shared by multiple active customers.",
			slog.String("documentType", string(d.Document.Type)),
			slog.String("documentNumber", d.Document.Number),
			slog.Int("activeCustomers", d.Count),
		)
	}
	monitoring.SetDuplicateActiveDocuments(len(dups))

	summaryLog := j.logger.With(
		slog.Duration("duration", time.Since(startTime)),
		slog.Int("duplicate_documents", len(dups)),
		slog.Int("affected_customers", affected),
	)
	if len(dups) > 0 {
		summaryLog.WarnContext(ctx, "Active document integrity check finished with duplicates.")
	} else {
		summaryLog.InfoContext(ctx, "Active document integrity check finished successfully.")
	}
	return nil
}
