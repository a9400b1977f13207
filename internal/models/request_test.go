package models

import "testing"

func TestNormalizeRequestStatus(t *testing.T) {
	if got := NormalizeRequestStatus(""); got != RequestStatusActive {
		t.Fatalf("empty status = %q, want active", got)
	}
	if got := NormalizeRequestStatus(" closed "); got != RequestStatusClosed {
		t.Fatalf("closed status = %q, want closed", got)
	}
}

func TestIsFeedVisible(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want bool
	}{
		{"active", Request{Status: RequestStatusActive}, true},
		{"legacy empty status", Request{}, true},
		{"archived", Request{Status: RequestStatusActive, Archived: true}, false},
		{"closed", Request{Status: RequestStatusClosed}, false},
		{"paused", Request{Status: RequestStatusPaused}, false},
	}
	for _, c := range cases {
		if got := IsFeedVisible(c.req); got != c.want {
			t.Fatalf("%s: IsFeedVisible = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCreditCost(t *testing.T) {
	r := Request{AutoCreditCost: 30}
	cost, manual := r.CreditCost()
	if cost != 30 || manual {
		t.Fatalf("auto cost = %d manual=%v, want 30 false", cost, manual)
	}

	override := 45
	r.AdminCreditCost = &override
	cost, manual = r.CreditCost()
	if cost != 45 || !manual {
		t.Fatalf("override cost = %d manual=%v, want 45 true", cost, manual)
	}
}
