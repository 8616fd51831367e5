package customer

import (
	"context"
)

// CustomerRepository is implemented by the persistence layer. Missing rows surface as
// apperrors.ErrNotFound, constraint violations as apperrors.ErrConflict.
type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	Delete(ctx context.Context, customerID int64) error

	DeleteAll(ctx context.Context) error
}

// PasswordHasher turns a plaintext password into its stored form.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
