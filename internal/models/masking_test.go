package models

import "testing"

func TestMaskName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ana Garcia", "A*** G***"},
		{"Pedro", "P***"},
		{"", ""},
	}
	for _, c := range cases {
		if got := MaskName(c.in); got != c.want {
			t.Fatalf("MaskName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMaskPhone(t *testing.T) {
	if got := MaskPhone("+34612345678"); got != "***78" {
		t.Fatalf("MaskPhone = %q, want ***78", got)
	}
	if got := MaskPhone("12"); got != "***" {
		t.Fatalf("MaskPhone short = %q, want ***", got)
	}
}

func TestMaskEmail(t *testing.T) {
	if got := MaskEmail("ana@example.com"); got != "a***@example.com" {
		t.Fatalf("MaskEmail = %q, want a***@example.com", got)
	}
	if got := MaskEmail("not-an-email"); got != "***" {
		t.Fatalf("MaskEmail without at = %q, want ***", got)
	}
}

func TestMaskContact(t *testing.T) {
	r := Request{}
	r.Customer.Name = "Ana Garcia"
	r.Customer.Phone = "+34612345678"
	r.Customer.Email = "ana@example.com"

	r.MaskContact()

	if r.Customer.Name != "A*** G***" {
		t.Fatalf("name not masked: %q", r.Customer.Name)
	}
	if r.Customer.Phone != "***78" {
		t.Fatalf("phone not masked: %q", r.Customer.Phone)
	}
	if r.Customer.Email != "a***@example.com" {
		t.Fatalf("email not masked: %q", r.Customer.Email)
	}
}
