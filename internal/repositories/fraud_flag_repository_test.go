package repositories

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"mudanzasBack/internal/models"
)

var fraudFlagColumns = []string{
	"id", "request_id", "reason", "severity", "status",
	"reviewed_by", "reviewed_at", "notes", "created_at",
}

func TestGetFlagByIDScansNullReviewColumns(t *testing.T) {
	db := openFakeDB(t)
	repo := &FraudFlagRepository{DB: db}

	created := time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)
	queueFakeRows(fraudFlagColumns,
		[]driver.Value{int64(3), int64(11), "duplicate lead", "medium", "pending", nil, nil, nil, created},
	)

	flag, err := repo.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if flag.Status != models.FlagStatusPending {
		t.Fatalf("Status = %q, want %q", flag.Status, models.FlagStatusPending)
	}
	if flag.Notes != "" {
		t.Fatalf("Notes = %q, want empty", flag.Notes)
	}
	if flag.ReviewedBy != nil || flag.ReviewedAt != nil {
		t.Fatal("unreviewed flag carries reviewer fields")
	}
}

func TestGetFlagsScansNullNotes(t *testing.T) {
	db := openFakeDB(t)
	repo := &FraudFlagRepository{DB: db}

	created := time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)
	reviewed := created.Add(time.Hour)
	queueFakeRows(fraudFlagColumns,
		[]driver.Value{int64(1), int64(5), "fake phone", "high", "pending", nil, nil, nil, created},
		[]driver.Value{int64(2), int64(6), "spam", "low", "dismissed", int64(9), reviewed, "not actionable", created},
	)

	flags, err := repo.GetFlags(context.Background(), "", "")
	if err != nil {
		t.Fatalf("GetFlags: %v", err)
	}
	if len(flags) != 2 {
		t.Fatalf("got %d flags, want 2", len(flags))
	}
	if flags[0].Notes != "" {
		t.Fatalf("pending flag Notes = %q, want empty", flags[0].Notes)
	}
	if flags[1].Notes != "not actionable" {
		t.Fatalf("reviewed flag Notes = %q", flags[1].Notes)
	}
}
