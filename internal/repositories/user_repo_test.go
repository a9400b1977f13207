package repositories

import (
	"context"
	"strings"
	"testing"
)

func TestUpdateAvatarPathLeavesProfileColumns(t *testing.T) {
	db := openFakeDB(t)
	repo := &UserRepository{DB: db}

	url := "https://cdn.example.com/avatars/user_7.png"
	if err := repo.UpdateAvatarPath(context.Background(), 7, url); err != nil {
		t.Fatalf("UpdateAvatarPath: %v", err)
	}

	calls := recordedCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(calls))
	}
	query := calls[0].query
	if !strings.Contains(query, "avatar_path = ?") {
		t.Fatalf("statement does not set avatar_path: %s", query)
	}
	for _, clause := range []string{"name = ?", "phone = ?", "email = ?", "city = ?", "password"} {
		if strings.Contains(query, clause) {
			t.Fatalf("avatar update writes %q, wiping the profile: %s", clause, query)
		}
	}
	if got := calls[0].args[0]; got != url {
		t.Fatalf("unexpected avatar path argument: %v", got)
	}
}
