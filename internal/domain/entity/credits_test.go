package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetAllotment(t *testing.T) {
	tests := []struct {
		name     string
		planName string
		want     CreditAllotment
	}{
		{name: "premium is unlimited", planName: "Premium Monthly", want: CreditAllotment{Unlimited: true, IntervalCredits: 4}},
		{name: "premium match ignores case", planName: "PREMIUM", want: CreditAllotment{Unlimited: true, IntervalCredits: 4}},
		{name: "gold", planName: "Gold Plan", want: CreditAllotment{Total: 8, IntervalCredits: 4}},
		{name: "basic", planName: "Basic", want: CreditAllotment{Total: 8}},
		{name: "empty name", planName: "", want: CreditAllotment{Total: 8}},
		{name: "premium wins over gold", planName: "Gold Premium", want: CreditAllotment{Unlimited: true, IntervalCredits: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResetAllotment(tt.planName))
		})
	}
}

func TestEnrollmentAllotment(t *testing.T) {
	t.Run("unlimited plan", func(t *testing.T) {
		got := EnrollmentAllotment(&SubscriptionPlan{Name: "Premium", Credits: 99, Unlimited: true, IntervalCredits: 2})
		assert.Equal(t, CreditAllotment{Unlimited: true, IntervalCredits: 2}, got)
	})

	t.Run("gold plan forces four interval credits", func(t *testing.T) {
		got := EnrollmentAllotment(&SubscriptionPlan{Name: "gold", Credits: 10, IntervalCredits: 1})
		assert.Equal(t, CreditAllotment{Total: 10, IntervalCredits: 4}, got)
	})

	t.Run("regular plan", func(t *testing.T) {
		got := EnrollmentAllotment(&SubscriptionPlan{Name: "Starter", Credits: 6, IntervalCredits: 1})
		assert.Equal(t, CreditAllotment{Total: 6, IntervalCredits: 1}, got)
	})
}

func TestClientProfile_AdjustCredits(t *testing.T) {
	tests := []struct {
		previous int
		delta    int
		want     int
	}{
		{previous: 3, delta: -5, want: 0},
		{previous: 3, delta: 2, want: 5},
		{previous: 0, delta: 0, want: 0},
		{previous: 10, delta: -10, want: 0},
		{previous: 10, delta: -9, want: 1},
	}

	for _, tt := range tests {
		profile := &ClientProfile{Credits: tt.previous}
		assert.Equal(t, tt.want, profile.AdjustCredits(tt.delta))
		assert.Equal(t, tt.want, profile.Credits)
	}
}

func TestClientProfile_PlanID(t *testing.T) {
	assert.Equal(t, "tier", (&ClientProfile{SubscriptionTier: "tier", SubscriptionPlan: "plan"}).PlanID())
	assert.Equal(t, "plan", (&ClientProfile{SubscriptionPlan: "plan"}).PlanID())
	assert.Empty(t, (&ClientProfile{}).PlanID())
}

func TestUser_ApplyRole(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	user := &User{Role: RoleInstructor, Instructor: &InstructorProfile{}, AccessStatus: AccessRed}
	user.ApplyRole(RoleClient, now)

	assert.Equal(t, RoleClient, user.Role)
	assert.Nil(t, user.Instructor)
	assert.Equal(t, AccessActive, user.AccessStatus)
	if assert.NotNil(t, user.Client) {
		assert.Equal(t, 0, user.Client.Credits)
		assert.Equal(t, NotificationPreferences{Email: true, Push: true}, user.Client.NotificationPreferences)
	}

	user.ApplyRole(RoleInstructor, now)
	assert.Nil(t, user.Client)
	assert.Equal(t, AccessGreen, user.AccessStatus)
	if assert.NotNil(t, user.Instructor) {
		assert.Equal(t, now, user.Instructor.WorkingSince)
	}
}
