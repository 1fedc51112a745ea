package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates a portal administrator.
	RoleAdmin Role = "admin"
	// RoleClient indicates a gym member.
	RoleClient Role = "client"
	// RoleInstructor indicates a class instructor.
	RoleInstructor Role = "instructor"
	// RoleStaff indicates front-desk or management staff.
	RoleStaff Role = "staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleInstructor, RoleStaff:
		return true
	default:
		return false
	}
}

// AccessStatus is the enumerated account state that gates login or visibility.
type AccessStatus string

const (
	AccessActive    AccessStatus = "active"
	AccessSuspended AccessStatus = "suspended"
	AccessInactive  AccessStatus = "inactive"

	AccessGreen  AccessStatus = "green"
	AccessYellow AccessStatus = "yellow"
	AccessRed    AccessStatus = "red"
)

var accessStatusesByRole = map[Role][]AccessStatus{
	RoleClient:     {AccessActive, AccessSuspended, AccessInactive},
	RoleInstructor: {AccessGreen, AccessYellow, AccessRed},
}

// AccessStatusesFor returns the statuses a role accepts, or nil when the role has none.
func AccessStatusesFor(role Role) []AccessStatus {
	return accessStatusesByRole[role]
}

// IsValidFor reports whether the status is accepted for the given role.
func (s AccessStatus) IsValidFor(role Role) bool {
	return slices.Contains(accessStatusesByRole[role], s)
}

// DefaultAccessStatus returns the status assigned when a user is provisioned into a role.
func DefaultAccessStatus(role Role) AccessStatus {
	switch role {
	case RoleClient:
		return AccessActive
	case RoleInstructor:
		return AccessGreen
	default:
		return ""
	}
}
