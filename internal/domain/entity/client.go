package entity

import "time"

// NotificationPreferences selects the channels a client accepts.
type NotificationPreferences struct {
	Email bool
	Push  bool
	SMS   bool
}

// ClientSubscription is the plan a client is currently enrolled in.
type ClientSubscription struct {
	PlanID    string
	PlanName  string
	StartDate time.Time
	EndDate   time.Time
	Status    string
}

// ClientProfile holds data specific to the client role.
type ClientProfile struct {
	Credits                 int                 // Total bookable credits.
	GymCredits              int                 // Credits for open gym use.
	IntervalCredits         int                 // Credits for interval classes.
	Unlimited               bool                // Replaces numeric credits when the plan is unlimited.
	SubscriptionTier        string              // Subscription plan ID.
	SubscriptionPlan        string              // Older plan ID field, read when SubscriptionTier is empty.
	SubscriptionExpiry      *time.Time          // End of the current subscription period.
	Subscription            *ClientSubscription // Current subscription, if any.
	FitnessGoals            []string
	Address                 string
	DateOfBirth             *time.Time
	MemberSince             time.Time
	NotificationPreferences NotificationPreferences
	LastCreditReset         *time.Time
}

// NewClientProfile returns the profile assigned to a newly provisioned client.
func NewClientProfile(now time.Time) *ClientProfile {
	return &ClientProfile{
		MemberSince: now,
		NotificationPreferences: NotificationPreferences{
			Email: true,
			Push:  true,
			SMS:   false,
		},
	}
}

// PlanID returns the plan the client is enrolled in, or "" when none is recorded.
func (p *ClientProfile) PlanID() string {
	if p.SubscriptionTier != "" {
		return p.SubscriptionTier
	}

	return p.SubscriptionPlan
}

// AdjustCredits adds delta to the credit balance, clamping at zero, and returns the new balance.
func (p *ClientProfile) AdjustCredits(delta int) int {
	p.Credits = max(0, p.Credits+delta)

	return p.Credits
}

// ApplyAllotment overwrites the credit balances with an allotment.
func (p *ClientProfile) ApplyAllotment(a CreditAllotment) {
	p.Credits = a.Total
	p.GymCredits = a.Total
	p.IntervalCredits = a.IntervalCredits
	p.Unlimited = a.Unlimited
}
