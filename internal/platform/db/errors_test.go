package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hrdash/internal/domain/apperr"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: apperr.ErrNotFound},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: apperr.ErrValidation},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, want: apperr.ErrConstraint},
		{name: "wrapped check", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23514"}), want: apperr.ErrConstraint},
		{name: "transport", err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), want: apperr.ErrStorageUnavailable},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); !errors.Is(got, tc.want) {
				t.Fatalf("Classify(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestClassifyKeepsOtherServerErrors(t *testing.T) {
	src := &pgconn.PgError{Code: "42601"}
	got := Classify(src)
	if got != src {
		t.Fatalf("expected syntax error unchanged, got %v", got)
	}
	if Classify(nil) != nil {
		t.Fatal("expected nil for nil")
	}
	if !errors.Is(Classify(context.Canceled), context.Canceled) {
		t.Fatal("expected cancellation to pass through")
	}
}
