package repositories

import (
	"context"
	"database/sql/driver"
	"strings"
	"testing"
	"time"

	"mudanzasBack/internal/models"
)

func feedRequests(ids ...int) []models.Request {
	requests := make([]models.Request, len(ids))
	for i, id := range ids {
		requests[i].ID = id
	}
	return requests
}

func TestTrimFeedPage(t *testing.T) {
	tests := []struct {
		name       string
		requests   []models.Request
		limit      int
		wantLen    int
		wantMore   bool
		wantCursor int
	}{
		{"short page", feedRequests(3, 2, 1), 5, 3, false, 0},
		{"exactly full page", feedRequests(5, 4, 3), 3, 3, false, 0},
		{"overfetched page", feedRequests(9, 8, 7, 6), 3, 3, true, 7},
		{"empty page", nil, 20, 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := trimFeedPage(tt.requests, tt.limit)
			if len(page.Requests) != tt.wantLen {
				t.Fatalf("got %d requests, want %d", len(page.Requests), tt.wantLen)
			}
			if page.HasMore != tt.wantMore {
				t.Fatalf("HasMore = %v, want %v", page.HasMore, tt.wantMore)
			}
			if page.NextCursor != tt.wantCursor {
				t.Fatalf("NextCursor = %d, want %d", page.NextCursor, tt.wantCursor)
			}
		})
	}
}

func TestGetFeedFallsBackWhenCursorRowDeleted(t *testing.T) {
	db := openFakeDB(t)
	repo := &RequestRepository{DB: db}

	// Cursor lookup finds nothing, the row is gone.
	queueFakeRows([]string{"created_at"})

	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	queueFakeRows(
		[]string{
			"id", "customer_id", "name", "from_city", "to_city", "move_date", "move_size",
			"details", "status", "admin_approved", "auto_credit_cost", "admin_credit_cost",
			"archived", "created_at", "updated_at", "offers_count",
		},
		[]driver.Value{
			int64(9), int64(3), "Ana", "Madrid", "Sevilla", nil, "flat",
			"two rooms", "active", false, int64(25), nil,
			false, created, nil, int64(0),
		},
	)

	page, err := repo.GetFeed(context.Background(), 17, 20, false)
	if err != nil {
		t.Fatalf("GetFeed: %v", err)
	}
	if len(page.Requests) != 1 || page.Requests[0].ID != 9 {
		t.Fatalf("unexpected page: %+v", page.Requests)
	}
	if page.HasMore {
		t.Fatal("HasMore set on a final page")
	}

	calls := recordedCalls()
	feedQuery := calls[len(calls)-1].query
	if !strings.Contains(feedQuery, "r.id < ?") {
		t.Fatalf("expected id-only cursor fallback, got: %s", feedQuery)
	}
}

func TestApproveRequestKeepsStoredManualCost(t *testing.T) {
	db := openFakeDB(t)
	repo := &RequestRepository{DB: db}

	if err := repo.ApproveRequest(context.Background(), 4, nil); err != nil {
		t.Fatalf("ApproveRequest without override: %v", err)
	}
	cost := 45
	if err := repo.ApproveRequest(context.Background(), 4, &cost); err != nil {
		t.Fatalf("ApproveRequest with override: %v", err)
	}

	calls := recordedCalls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(calls))
	}
	if !strings.Contains(calls[0].query, "COALESCE(?, admin_credit_cost)") {
		t.Fatalf("nil override must keep the stored cost: %s", calls[0].query)
	}
	if calls[0].args[0] != nil {
		t.Fatalf("expected nil cost argument, got %v", calls[0].args[0])
	}
	if got := calls[1].args[0]; got != int64(45) {
		t.Fatalf("expected explicit cost argument 45, got %v", got)
	}
}
