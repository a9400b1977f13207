package models

import "testing"

func TestNormalizeOfferStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", OfferStatusPending},
		{"pending", OfferStatusPending},
		{"accepted", OfferStatusAccepted},
		{"declined", OfferStatusDeclined},
		{"rejected", OfferStatusDeclined},
		{" Rejected ", OfferStatusDeclined},
	}
	for _, c := range cases {
		if got := NormalizeOfferStatus(c.in); got != c.want {
			t.Fatalf("NormalizeOfferStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
