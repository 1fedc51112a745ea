package firestore

import (
	"testing"
	"time"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		size   int
		want   [][]int
	}{
		{name: "empty", values: nil, size: 3, want: nil},
		{name: "exact", values: []int{1, 2, 3, 4}, size: 2, want: [][]int{{1, 2}, {3, 4}}},
		{name: "remainder", values: []int{1, 2, 3, 4, 5}, size: 2, want: [][]int{{1, 2}, {3, 4}, {5}}},
		{name: "larger size", values: []int{1, 2}, size: 30, want: [][]int{{1, 2}}},
		{name: "non-positive size keeps one chunk", values: []int{1, 2, 3}, size: 0, want: [][]int{{1, 2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunk(tt.values, tt.size))
		})
	}
}

func TestClientUpdatePaths_OnlySetFields(t *testing.T) {
	name := "Jane Doe"
	credits := -4
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	updates := clientUpdatePaths(repository.ClientFieldUpdates{FullName: &name, Credits: &credits}, now)

	values := make(map[string]any, len(updates))
	for _, update := range updates {
		values[update.Path] = update.Value
	}

	assert.Equal(t, map[string]any{
		"updatedAt":      now,
		"fullName":       "Jane Doe",
		"client.credits": 0,
	}, values)
}

func updateValues(t *testing.T, updates []fs.Update) map[string]any {
	t.Helper()

	values := make(map[string]any, len(updates))
	for _, update := range updates {
		values[update.Path] = update.Value
	}
	require.Len(t, values, len(updates), "a path was written twice")

	return values
}

func TestUserUpdatePaths(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	client := func() *entity.User {
		return &entity.User{
			ID:           "c1",
			Email:        "ann@example.com",
			FullName:     "Ann",
			Role:         entity.RoleClient,
			AccessStatus: entity.AccessSuspended,
			Disabled:     true,
			UpdatedAt:    now,
			Client:       &entity.ClientProfile{Credits: 8, GymCredits: 6, IntervalCredits: 2, SubscriptionTier: "gold"},
		}
	}

	t.Run("shared paths written once and empty values deleted", func(t *testing.T) {
		updates, err := userUpdatePaths(fromUserDomain(client()),
			[]repository.UserField{repository.UserIdentityFields, repository.UserAccessFields})

		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"updatedAt":    now,
			"email":        "ann@example.com",
			"fullName":     "Ann",
			"phoneNumber":  fs.Delete,
			"photoUrl":     fs.Delete,
			"disabled":     true,
			"accessStatus": string(entity.AccessSuspended),
		}, updateValues(t, updates))
	})

	t.Run("credit and subscription groups leave other client fields alone", func(t *testing.T) {
		updates, err := userUpdatePaths(fromUserDomain(client()),
			[]repository.UserField{repository.UserClientCreditFields, repository.UserClientSubscriptionFields})

		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"updatedAt":                 now,
			"client.credits":            8,
			"client.gymCredits":         6,
			"client.intervalCredits":    2,
			"client.unlimited":          false,
			"client.subscriptionTier":   "gold",
			"client.subscription":       fs.Delete,
			"client.subscriptionExpiry": fs.Delete,
		}, updateValues(t, updates))
	})

	t.Run("role change replaces profiles and skips client sub-paths", func(t *testing.T) {
		user := client()
		user.Role = entity.RoleStaff
		user.Staff = &entity.StaffProfile{FirstName: "Ann"}

		updates, err := userUpdatePaths(fromUserDomain(user),
			[]repository.UserField{repository.UserRoleFields, repository.UserClientCreditFields})

		require.NoError(t, err)
		values := updateValues(t, updates)
		assert.Equal(t, "staff", values["role"])
		assert.IsType(t, &model.ClientDocument{}, values["client"])
		assert.IsType(t, &model.StaffDocument{}, values["staff"])
		assert.Equal(t, fs.Delete, values["instructor"])
		assert.NotContains(t, values, "client.credits")
	})

	t.Run("client group on a user without a client profile", func(t *testing.T) {
		user := &entity.User{ID: "i1", Role: entity.RoleInstructor, UpdatedAt: now}

		_, err := userUpdatePaths(fromUserDomain(user), []repository.UserField{repository.UserClientDetailFields})

		assert.True(t, errors.Is(err, repository.ErrNotAClient))
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := userUpdatePaths(fromUserDomain(client()), []repository.UserField{repository.UserField(99)})

		assert.Error(t, err)
	})
}
