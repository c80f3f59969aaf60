package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hrdash/internal/domain/apperr"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", in: "2024-12-31", want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 truncated", in: "2024-12-31T15:04:05Z", want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "empty", in: ""},
		{name: "garbage", in: "31/12/2024", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestValidatorIssuesSorted(t *testing.T) {
	v := NewValidator()
	v.Required("description", " ", "is required")
	v.PositiveID("employeeId", 0)
	v.Date("dueDate", "tomorrow")
	if !v.HasIssues() {
		t.Fatal("expected issues")
	}
	issues := v.Issues()
	if len(issues) != 3 || issues[0].Field != "description" || issues[1].Field != "dueDate" || issues[2].Field != "employeeId" {
		t.Fatalf("unexpected issues: %+v", issues)
	}

	rec := httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected reject")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFailServiceStatusCodes(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantErr  string
	}{
		{err: apperr.ErrAuthFailure, wantCode: http.StatusUnauthorized, wantErr: "invalid_credentials"},
		{err: fmt.Errorf("x: %w", apperr.ErrValidation), wantCode: http.StatusBadRequest, wantErr: "validation_error"},
		{err: fmt.Errorf("x: %w", apperr.ErrConstraint), wantCode: http.StatusUnprocessableEntity, wantErr: "constraint_error"},
		{err: fmt.Errorf("x: %w", apperr.ErrNotFound), wantCode: http.StatusNotFound, wantErr: "not_found"},
		{err: fmt.Errorf("x: %w", apperr.ErrStorageUnavailable), wantCode: http.StatusServiceUnavailable, wantErr: "storage_unavailable"},
		{err: fmt.Errorf("x: %w", context.Canceled), wantCode: StatusClientClosedRequest, wantErr: "request_cancelled"},
		{err: fmt.Errorf("unexpected"), wantCode: http.StatusInternalServerError, wantErr: "thing_failed"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.wantErr, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FailService(rec, tc.err, "req", "thing_failed", "thing failed")
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			var env struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Error.Code != tc.wantErr {
				t.Fatalf("expected code %q, got %q", tc.wantErr, env.Error.Code)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		limit    int64
		wantOK   bool
		wantCode int
	}{
		{name: "valid", body: `{"status":"Completed"}`, limit: 1024, wantOK: true, wantCode: http.StatusOK},
		{name: "malformed", body: `{"status":`, limit: 1024, wantCode: http.StatusBadRequest},
		{name: "over limit", body: `{"status":"` + strings.Repeat("x", 2048) + `"}`, limit: 1024, wantCode: http.StatusRequestEntityTooLarge},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			req.Body = http.MaxBytesReader(rec, req.Body, tc.limit)

			var payload struct {
				Status string `json:"status"`
			}
			if ok := DecodeJSON(rec, req, &payload, "req"); ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
		})
	}
}
