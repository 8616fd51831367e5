package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the customers and credits tables when they are missing.
func EnsureSchema(ctx context.Context, db DBPool, logger *slog.Logger) error {
	logger.Info("Applying database schema...")

	start := time.Now()
	_, err := db.Exec(ctx, schemaSQL)
	observe("ensure_schema", start, err)
	if err != nil {
		logger.Error("Failed to apply database schema", "error", err)
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info("Database schema is up to date.")
	return nil
}
