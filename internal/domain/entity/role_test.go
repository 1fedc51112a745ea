package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessStatus_IsValidFor(t *testing.T) {
	tests := []struct {
		status AccessStatus
		role   Role
		want   bool
	}{
		{AccessGreen, RoleInstructor, true},
		{AccessYellow, RoleInstructor, true},
		{AccessRed, RoleInstructor, true},
		{AccessActive, RoleInstructor, false},
		{AccessActive, RoleClient, true},
		{AccessSuspended, RoleClient, true},
		{AccessInactive, RoleClient, true},
		{AccessGreen, RoleClient, false},
		{AccessStatus("banned"), RoleClient, false},
		{AccessActive, RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValidFor(tt.role))
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleStaff.IsValid())
	assert.False(t, Role("merchant").IsValid())
}
