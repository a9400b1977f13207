package models

import "time"

const onboardingLastStep = 4

type Company struct {
	ID                  int        `json:"id"`
	UserID              int        `json:"user_id"`
	Name                string     `json:"name"`
	CIF                 string     `json:"cif"`
	Phone               string     `json:"phone"`
	Description         string     `json:"description"`
	LogoPath            *string    `json:"logo_path,omitempty"`
	ServiceAreas        []string   `json:"service_areas"`
	ReviewRating        float64    `json:"review_rating"`
	ReviewsCount        int        `json:"reviews_count"`
	Verified            bool       `json:"verified"`
	OnboardingStep      int        `json:"onboarding_step"`
	OnboardingCompleted bool       `json:"onboarding_completed"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at,omitempty"`
}

// AdvanceOnboarding bumps the wizard step, marking completion on the last one.
func (c *Company) AdvanceOnboarding() {
	if c.OnboardingCompleted {
		return
	}
	c.OnboardingStep++
	if c.OnboardingStep >= onboardingLastStep {
		c.OnboardingStep = onboardingLastStep
		c.OnboardingCompleted = true
	}
}
