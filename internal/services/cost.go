package services

import "strings"

// Credit cost bands for the lead calculator. The admin may override the
// result per request; the auto value is still stored so the origin of the
// effective cost stays visible.
const (
	baseCreditCost     = 20
	intercitySurcharge = 10
	houseMoveSurcharge = 15
	flatMoveSurcharge  = 5
	maxAutoCreditCost  = 60
)

// CalculateCreditCost derives the default lead price from the route and the
// declared move size.
func CalculateCreditCost(fromCity, toCity, moveSize string) int {
	cost := baseCreditCost

	if !strings.EqualFold(strings.TrimSpace(fromCity), strings.TrimSpace(toCity)) {
		cost += intercitySurcharge
	}

	switch strings.ToLower(strings.TrimSpace(moveSize)) {
	case "house":
		cost += houseMoveSurcharge
	case "flat":
		cost += flatMoveSurcharge
	}

	if cost > maxAutoCreditCost {
		cost = maxAutoCreditCost
	}
	return cost
}
