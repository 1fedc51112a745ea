package entity

import "strings"

const (
	standardCredits = 8
	bonusInterval   = 4
)

// CreditAllotment is the balance a client receives from a plan.
type CreditAllotment struct {
	Total           int
	IntervalCredits int
	Unlimited       bool
}

// ResetAllotment returns the periodic credit allotment for a plan name:
// "premium" is unlimited with 4 interval credits, "gold" is 8 and 4, anything else is 8 and 0.
func ResetAllotment(planName string) CreditAllotment {
	name := strings.ToLower(planName)

	switch {
	case strings.Contains(name, "premium"):
		return CreditAllotment{Unlimited: true, IntervalCredits: bonusInterval}
	case strings.Contains(name, "gold"):
		return CreditAllotment{Total: standardCredits, IntervalCredits: bonusInterval}
	default:
		return CreditAllotment{Total: standardCredits}
	}
}

// EnrollmentAllotment returns the balance granted when a client is enrolled in a plan.
func EnrollmentAllotment(plan *SubscriptionPlan) CreditAllotment {
	allotment := CreditAllotment{
		Total:           plan.Credits,
		IntervalCredits: plan.IntervalCredits,
		Unlimited:       plan.Unlimited,
	}
	if plan.Unlimited {
		allotment.Total = 0
	}
	if strings.Contains(strings.ToLower(plan.Name), "gold") {
		allotment.IntervalCredits = bonusInterval
	}

	return allotment
}
