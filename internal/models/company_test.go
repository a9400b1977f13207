package models

import "testing"

func TestAdvanceOnboarding(t *testing.T) {
	c := Company{OnboardingStep: 1}

	c.AdvanceOnboarding()
	if c.OnboardingStep != 2 || c.OnboardingCompleted {
		t.Fatalf("step = %d completed=%v, want 2 false", c.OnboardingStep, c.OnboardingCompleted)
	}

	c.AdvanceOnboarding()
	c.AdvanceOnboarding()
	if c.OnboardingStep != 4 || !c.OnboardingCompleted {
		t.Fatalf("step = %d completed=%v, want 4 true", c.OnboardingStep, c.OnboardingCompleted)
	}

	// once completed the step stays put
	c.AdvanceOnboarding()
	if c.OnboardingStep != 4 {
		t.Fatalf("step moved past the last one: %d", c.OnboardingStep)
	}
}
