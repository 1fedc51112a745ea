package usecase

import "context"

// CreditResetOutput summarizes a credit reset run.
type CreditResetOutput struct {
	Success   bool
	Message   string
	Processed int
	Skipped   int
}

// CreditUsecase defines the periodic credit reset.
type CreditUsecase interface {
	// ResetCredits refills every client with a resolvable plan
	ResetCredits(ctx context.Context) (*CreditResetOutput, error)
}
