package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hrdash/internal/domain/apperr"
)

const (
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// Classify maps a pgx error onto the apperr classes. Server-side errors that do not
// describe a constraint are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", apperr.ErrNotFound, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgNotNullViolation:
			return fmt.Errorf("%w: %w", apperr.ErrValidation, err)
		case pgCheckViolation:
			return fmt.Errorf("%w: %w", apperr.ErrConstraint, err)
		}
		return err
	}
	return fmt.Errorf("%w: %w", apperr.ErrStorageUnavailable, err)
}
