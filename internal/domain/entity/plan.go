package entity

import "time"

// SubscriptionPlan is a membership offering that determines a client's credits.
type SubscriptionPlan struct {
	ID              string
	Name            string
	Type            string // e.g. monthly, annual
	PlanCategory    string
	Price           float64
	Currency        string
	Credits         int
	IntervalCredits int
	Unlimited       bool
	Description     string
	Features        []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
