package db

import (
	"context"
	_ "embed"
	"fmt"

	"hrdash/internal/platform/querier"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the employees and goals relations when they are missing.
func EnsureSchema(ctx context.Context, q querier.Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", Classify(err))
	}
	return nil
}
