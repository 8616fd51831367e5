package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const creditColumns = `id, credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at`

type CreditRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ credit.CreditRepository = (*CreditRepository)(nil)

func NewCreditRepository(db DBPool, logger *slog.Logger) *CreditRepository {
	if db == nil {
		panic("DBPool cannot be nil for CreditRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCreditRepository, using default stderr handler")
	}
	return &CreditRepository{db: db, logger: logger.With("component", "CreditRepository")}
}

// Save inserts a new credit. Credits are immutable, so a credit that already has an id is rejected.
func (r *CreditRepository) Save(ctx context.Context, c *credit.Credit) error {
	if c == nil {
		return fmt.Errorf("%w: credit cannot be nil", apperrors.ErrInvalidArgument)
	}
	if c.ID != 0 {
		return fmt.Errorf("%w: credit %d is already persisted", apperrors.ErrInvalidUsage, c.ID)
	}

	logCtx := r.logger.With(slog.String("creditCode", c.CreditCode.String()), slog.Int64("customerID", c.CustomerID))
	logCtx.InfoContext(ctx, "Attempting to insert new credit")

	query := `
        INSERT INTO credits (credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING id, created_at`

	start := time.Now()
	err := r.db.QueryRow(ctx, query,
		c.CreditCode,
		c.CreditValue,
		c.DayFirstInstallment,
		c.NumberOfInstallments,
		string(c.Status),
		c.CustomerID,
	).Scan(&c.ID, &c.CreatedAt)
	observe("insert_credit", start, err)

	if err != nil {
		translatedErr := translateDBError(err, logCtx)
		if errors.Is(translatedErr, apperrors.ErrConflict) {
			logCtx.WarnContext(ctx, "Failed to insert credit due to constraint violation")
			return translatedErr
		}
		logCtx.ErrorContext(ctx, "Failed to insert credit", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert credit: %w", apperrors.ErrDatabase, err)
	}

	logCtx.InfoContext(ctx, "Credit inserted successfully", slog.Int64("creditID", c.ID))
	return nil
}

func (r *CreditRepository) FindByCreditCode(ctx context.Context, code uuid.UUID) (*credit.Credit, error) {
	logCtx := r.logger.With(slog.String("creditCode", code.String()))
	logCtx.DebugContext(ctx, "Attempting to find credit by code")

	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_code = $1`

	start := time.Now()
	c, err := scanCredit(r.db.QueryRow(ctx, query, code))
	observe("find_credit_by_code", start, err)
	if err != nil {
		translatedErr := translateDBError(err, logCtx)
		if errors.Is(translatedErr, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Credit not found")
			return nil, translatedErr
		}
		logCtx.ErrorContext(ctx, "Failed to query/scan credit by code", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get credit by code: %w", apperrors.ErrDatabase, err)
	}

	return c, nil
}

func (r *CreditRepository) FindAllByCustomerID(ctx context.Context, customerID int64) ([]*credit.Credit, error) {
	logCtx := r.logger.With(slog.Int64("customerID", customerID))
	logCtx.DebugContext(ctx, "Attempting to list credits by customer")

	query := `SELECT ` + creditColumns + ` FROM credits WHERE customer_id = $1 ORDER BY id ASC`

	start := time.Now()
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		observe("find_credits_by_customer", start, err)
		logCtx.ErrorContext(ctx, "Failed to query credits", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	credits := make([]*credit.Credit, 0)
	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			observe("find_credits_by_customer", start, err)
			logCtx.ErrorContext(ctx, "Failed to scan credit row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan credit row: %w", apperrors.ErrDatabase, err)
		}
		credits = append(credits, c)
	}

	err = rows.Err()
	observe("find_credits_by_customer", start, err)
	if err != nil {
		logCtx.ErrorContext(ctx, "Error iterating credit rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating credit rows: %w", apperrors.ErrDatabase, err)
	}

	logCtx.InfoContext(ctx, "Finished listing credits", slog.Int("count", len(credits)))
	return credits, nil
}

// CountByStatus returns a count for every known status, zero included.
func (r *CreditRepository) CountByStatus(ctx context.Context) (map[credit.Status]int64, error) {
	logCtx := r.logger.With(slog.String("operation", "CountByStatus"))
	logCtx.DebugContext(ctx, "Counting credits by status")

	query := `SELECT status, COUNT(*) FROM credits GROUP BY status`

	start := time.Now()
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		observe("count_credits_by_status", start, err)
		logCtx.ErrorContext(ctx, "Failed to query credit counts", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	counts := make(map[credit.Status]int64, len(credit.AllStatuses))
	for _, s := range credit.AllStatuses {
		counts[s] = 0
	}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			observe("count_credits_by_status", start, err)
			logCtx.ErrorContext(ctx, "Failed to scan credit count row", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		counts[credit.Status(status)] = n
	}

	err = rows.Err()
	observe("count_credits_by_status", start, err)
	if err != nil {
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return counts, nil
}

func (r *CreditRepository) DeleteAll(ctx context.Context) error {
	r.logger.WarnContext(ctx, "Deleting all credits")

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM credits`)
	observe("delete_all_credits", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete all credits", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "All credits deleted", slog.Int64("rows", cmdTag.RowsAffected()))
	return nil
}

func scanCredit(row pgx.Row) (*credit.Credit, error) {
	var c credit.Credit
	var status string
	err := row.Scan(
		&c.ID,
		&c.CreditCode,
		&c.CreditValue,
		&c.DayFirstInstallment,
		&c.NumberOfInstallments,
		&status,
		&c.CustomerID,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = credit.Status(status)
	return &c, nil
}
