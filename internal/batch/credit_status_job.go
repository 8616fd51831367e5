package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/infrastructure/monitoring"
)

// StatusCounter is the slice of the credit repository the snapshot job needs.
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[credit.Status]int64, error)
}

// CreditStatusSnapshotJob publishes the number of credits in each status as a gauge.
// It never writes to the database.
type CreditStatusSnapshotJob struct {
	counter StatusCounter
	logger  *slog.Logger
}

func NewCreditStatusSnapshotJob(counter StatusCounter, logger *slog.Logger) *CreditStatusSnapshotJob {
	if counter == nil || logger == nil {
		panic("CreditStatusSnapshotJob dependencies cannot be nil")
	}
	return &CreditStatusSnapshotJob{
		counter: counter,
		logger:  logger.With("job", "CreditStatusSnapshot"),
	}
}

func (j *CreditStatusSnapshotJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting credit status snapshot job.")

	counts, err := j.counter.CountByStatus(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to count credits by status, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to count credits: %w", err)
	}

	var total int64
	for _, status := range credit.AllStatuses {
		n := counts[status]
		total += n
		monitoring.SetCreditsByStatus(string(status), n)
		j.logger.DebugContext(ctx, "Recorded credit status count.", slog.String("status", string(status)), slog.Int64("count", n))
	}

	j.logger.InfoContext(ctx, "Credit status snapshot job finished successfully.",
		slog.Duration("duration", time.Since(startTime)),
		slog.Int64("total_credits", total),
	)
	return nil
}
