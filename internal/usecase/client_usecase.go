package usecase

import (
	"context"
	"time"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/domain/repository"
)

// CreateClientInput defines the data required to provision a client.
type CreateClientInput struct {
	Email            string
	Name             string
	Phone            string
	SubscriptionTier string
	AccessStatus     entity.AccessStatus
}

// UpdateClientInput lists the client fields to change. Nil fields are left untouched.
type UpdateClientInput struct {
	FullName         *string
	PhoneNumber      *string
	Address          *string
	FitnessGoals     []string
	SubscriptionTier *string
	NotificationPush *bool
	NotificationMail *bool
}

// ClientDetail is a client with their latest bookings.
type ClientDetail struct {
	Client         *entity.User
	RecentBookings []*entity.Booking
}

// AdjustCreditsInput adds amount to a client's credits.
type AdjustCreditsInput struct {
	Amount     int
	Reason     string
	AdjustedBy string
}

// AdjustCreditsOutput reports a credit adjustment.
type AdjustCreditsOutput struct {
	PreviousCredits int
	NewCredits      int
	Adjustment      int
}

// SetCreditsInput overwrites a client's credit balances.
type SetCreditsInput struct {
	GymCredits      int
	IntervalCredits int
	Reason          string
	AdjustedBy      string
}

// CreditBalance is the credit state of a client.
type CreditBalance struct {
	Total           int
	GymCredits      int
	IntervalCredits int
	Unlimited       bool
}

// AssignSubscriptionInput enrolls a client in a plan.
type AssignSubscriptionInput struct {
	PlanID    string
	StartDate *time.Time
}

// SubscriptionOutput is a client's subscription, balance and plan.
type SubscriptionOutput struct {
	Subscription *entity.ClientSubscription
	Credits      CreditBalance
	Plan         *entity.SubscriptionPlan
}

// ClientUsecase defines client administration.
type ClientUsecase interface {
	ListClients(ctx context.Context, query repository.ClientQuery) (*repository.ClientPage, error)
	CreateClient(ctx context.Context, input CreateClientInput) (*entity.User, error)
	BatchUpdateClients(ctx context.Context, ids []string, updates repository.ClientFieldUpdates) error
	BatchDeleteClients(ctx context.Context, ids []string) error
	GetClient(ctx context.Context, id string) (*ClientDetail, error)
	UpdateClient(ctx context.Context, id string, input UpdateClientInput) (*entity.User, error)
	DeleteClient(ctx context.Context, id string) error
	AdjustCredits(ctx context.Context, id string, input AdjustCreditsInput) (*AdjustCreditsOutput, error)
	SetCredits(ctx context.Context, id string, input SetCreditsInput) (*CreditBalance, error)
	ChangeAccess(ctx context.Context, id string, input ChangeAccessInput) (*AccessChangeOutput, error)
	AssignSubscription(ctx context.Context, id string, input AssignSubscriptionInput) (*SubscriptionOutput, error)
	GetSubscription(ctx context.Context, id string) (*SubscriptionOutput, error)
}
