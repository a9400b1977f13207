package services

import "testing"

func TestCalculateCreditCost(t *testing.T) {
	cases := []struct {
		name     string
		from     string
		to       string
		moveSize string
		want     int
	}{
		{"same city studio", "Madrid", "Madrid", "studio", 20},
		{"same city flat", "Madrid", "Madrid", "flat", 25},
		{"same city house", "Madrid", "Madrid", "house", 35},
		{"intercity studio", "Madrid", "Valencia", "studio", 30},
		{"intercity house", "Madrid", "Valencia", "house", 45},
		{"case and spacing ignored", " madrid ", "MADRID", "Flat", 25},
		{"unknown size", "Madrid", "Madrid", "", 20},
	}
	for _, c := range cases {
		if got := CalculateCreditCost(c.from, c.to, c.moveSize); got != c.want {
			t.Fatalf("%s: cost = %d, want %d", c.name, got, c.want)
		}
	}
}
