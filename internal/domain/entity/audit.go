package entity

import "time"

// AccessLog records a change of a user's access status.
type AccessLog struct {
	ID             string
	UserID         string
	Role           Role
	PreviousStatus AccessStatus
	NewStatus      AccessStatus
	Reason         string
	ChangedBy      string
	ChangedAt      time.Time
}

// CreditAdjustment records a manual change of a client's credit balances.
type CreditAdjustment struct {
	ID                      string
	ClientID                string
	PreviousCredits         int
	NewCredits              int
	Adjustment              int
	PreviousGymCredits      int
	PreviousIntervalCredits int
	NewGymCredits           int
	NewIntervalCredits      int
	Reason                  string
	AdjustedBy              string
	AdjustedAt              time.Time
}
