package insights

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"hrdash/internal/domain/apperr"
)

type stubStore struct {
	snap Snapshot
	err  error
}

func (s stubStore) Snapshot(context.Context) (Snapshot, error) {
	return s.snap, s.err
}

func TestBuildReportAveragesGoals(t *testing.T) {
	report := buildReport(Snapshot{
		TotalEmployees: 2,
		TotalGoals:     1,
		MinRate:        0,
		MaxRate:        0,
		AvgRate:        0,
		GoalsByStatus:  []StatusCount{{Status: "Draft", Count: 1}},
	})
	if report.TotalEmployees != 2 {
		t.Fatalf("expected 2 employees, got %d", report.TotalEmployees)
	}
	if report.AvgGoalsPerEmployee != 0.5 {
		t.Fatalf("expected 0.5 goals per employee, got %v", report.AvgGoalsPerEmployee)
	}
	if len(report.GoalsByStatus) != 1 || report.GoalsByStatus[0].Status != "Draft" {
		t.Fatalf("unexpected status counts: %+v", report.GoalsByStatus)
	}
}

func TestBuildReportHandlesZeroEmployees(t *testing.T) {
	report := buildReport(Snapshot{})
	if report.AvgGoalsPerEmployee != 0 {
		t.Fatalf("expected 0.0 average, got %v", report.AvgGoalsPerEmployee)
	}
	if report.GoalsByStatus == nil {
		t.Fatal("expected empty, non-nil status list")
	}
}

func TestBuildReportCopiesRates(t *testing.T) {
	report := buildReport(Snapshot{TotalEmployees: 3, TotalGoals: 4, MinRate: 0.25, MaxRate: 1, AvgRate: 0.625})
	if report.MinTaskApprovalRate != 0.25 || report.MaxTaskApprovalRate != 1 || report.AvgTaskApprovalRate != 0.625 {
		t.Fatalf("unexpected rates: %+v", report)
	}
	if report.AvgGoalsPerEmployee != 4.0/3.0 {
		t.Fatalf("unexpected average: %v", report.AvgGoalsPerEmployee)
	}
}

func TestGetInsightsPropagatesStorageErrors(t *testing.T) {
	svc := NewService(stubStore{err: apperr.ErrStorageUnavailable})
	if _, err := svc.GetInsights(context.Background()); !errors.Is(err, apperr.ErrStorageUnavailable) {
		t.Fatalf("expected storage unavailable, got %v", err)
	}
}

func TestRenderPDF(t *testing.T) {
	var buf bytes.Buffer
	report := Report{
		TotalEmployees:      2,
		AvgGoalsPerEmployee: 0.5,
		GoalsByStatus:       []StatusCount{{Status: "Completed", Count: 1}},
	}
	if err := RenderPDF(&buf, report, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", buf.Bytes()[:8])
	}
}
