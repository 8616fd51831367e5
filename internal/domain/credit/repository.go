package credit

import (
	"context"

	"github.com/google/uuid"
)

// CreditRepository is implemented by the persistence layer. Missing rows surface as apperrors.ErrNotFound.
type CreditRepository interface {
	Save(ctx context.Context, credit *Credit) error

	FindByCreditCode(ctx context.Context, code uuid.UUID) (*Credit, error)

	FindAllByCustomerID(ctx context.Context, customerID int64) ([]*Credit, error)

	CountByStatus(ctx context.Context) (map[Status]int64, error)

	DeleteAll(ctx context.Context) error
}
