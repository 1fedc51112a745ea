package model

import "time"

// UserDocument mirrors a document in the 'users' collection. The document ID is the Firebase Auth UID.
type UserDocument struct {
	Email        string              `firestore:"email"`
	FullName     string              `firestore:"fullName"`
	PhoneNumber  string              `firestore:"phoneNumber,omitempty"`
	PhotoURL     string              `firestore:"photoUrl,omitempty"`
	Role         string              `firestore:"role"`
	AccessStatus string              `firestore:"accessStatus,omitempty"`
	Disabled     bool                `firestore:"disabled"`
	FCMTokens    []string            `firestore:"fcmTokens,omitempty"`
	Client       *ClientDocument     `firestore:"client,omitempty"`
	Instructor   *InstructorDocument `firestore:"instructor,omitempty"`
	Staff        *StaffDocument      `firestore:"staff,omitempty"`
	CreatedAt    time.Time           `firestore:"createdAt"`
	UpdatedAt    time.Time           `firestore:"updatedAt"`
}

// ClientDocument is the 'client' sub-object of a user document.
type ClientDocument struct {
	Credits                 int                            `firestore:"credits"`
	GymCredits              int                            `firestore:"gymCredits"`
	IntervalCredits         int                            `firestore:"intervalCredits"`
	Unlimited               bool                           `firestore:"unlimited"`
	SubscriptionTier        string                         `firestore:"subscriptionTier,omitempty"`
	SubscriptionPlan        string                         `firestore:"subscriptionPlan,omitempty"`
	SubscriptionExpiry      *time.Time                     `firestore:"subscriptionExpiry,omitempty"`
	Subscription            *SubscriptionDocument          `firestore:"subscription,omitempty"`
	FitnessGoals            []string                       `firestore:"fitnessGoals,omitempty"`
	Address                 string                         `firestore:"address,omitempty"`
	DateOfBirth             *time.Time                     `firestore:"dateOfBirth,omitempty"`
	MemberSince             time.Time                      `firestore:"memberSince"`
	NotificationPreferences NotificationPreferenceDocument `firestore:"notificationPreferences"`
	LastCreditReset         *time.Time                     `firestore:"lastCreditReset,omitempty"`
}

// SubscriptionDocument is the current subscription of a client.
type SubscriptionDocument struct {
	PlanID    string    `firestore:"planId"`
	PlanName  string    `firestore:"planName"`
	StartDate time.Time `firestore:"startDate"`
	EndDate   time.Time `firestore:"endDate"`
	Status    string    `firestore:"status"`
}

// NotificationPreferenceDocument holds the channels a client accepts.
type NotificationPreferenceDocument struct {
	Email bool `firestore:"email"`
	Push  bool `firestore:"push"`
	SMS   bool `firestore:"sms"`
}

// InstructorDocument is the 'instructor' sub-object of a user document.
type InstructorDocument struct {
	WorkingSince time.Time           `firestore:"workingSince"`
	Specialties  []string            `firestore:"specialties,omitempty"`
	BankDetails  BankDetailsDocument `firestore:"bankDetails"`
}

// StaffDocument is the 'staff' sub-object of a user document.
type StaffDocument struct {
	FirstName   string              `firestore:"firstName"`
	LastName    string              `firestore:"lastName"`
	Position    string              `firestore:"position,omitempty"`
	Address     string              `firestore:"address,omitempty"`
	BankDetails BankDetailsDocument `firestore:"bankDetails"`
}

// BankDetailsDocument holds payout information.
type BankDetailsDocument struct {
	BankName      string `firestore:"bankName"`
	AccountHolder string `firestore:"accountHolder"`
	AccountNumber string `firestore:"accountNumber"`
	IBAN          string `firestore:"iban"`
}
