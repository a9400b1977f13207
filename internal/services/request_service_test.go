package services

import "testing"

func TestClampFeedLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, feedDefaultLimit},
		{-5, feedDefaultLimit},
		{1, 1},
		{feedMaxLimit, feedMaxLimit},
		{feedMaxLimit + 1, feedMaxLimit},
		{500, feedMaxLimit},
	}

	for _, tt := range tests {
		if got := clampFeedLimit(tt.limit); got != tt.want {
			t.Fatalf("clampFeedLimit(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}
