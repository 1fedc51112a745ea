// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is the single record kept for every person known to the portal.
// Role-specific data lives in exactly one of the profile pointers, selected by Role.
type User struct {
	ID           string             // Firebase Auth UID, also the document ID.
	Email        string             // Login email.
	FullName     string             // Display name.
	PhoneNumber  string             // Contact phone in E.164 when known.
	PhotoURL     string             // Avatar URL.
	Role         Role               // Discriminator for the profile pointers below.
	AccessStatus AccessStatus       // Role-specific access state.
	Disabled     bool               // Mirrors the Firebase Auth disabled flag.
	FCMTokens    []string           // Registered push tokens.
	Client       *ClientProfile     // Set when Role is client.
	Instructor   *InstructorProfile // Set when Role is instructor.
	Staff        *StaffProfile      // Set when Role is staff.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BankDetails holds payout information for instructors and staff.
type BankDetails struct {
	BankName      string
	AccountHolder string
	AccountNumber string
	IBAN          string
}

// InstructorProfile holds data specific to the instructor role.
type InstructorProfile struct {
	WorkingSince time.Time
	Specialties  []string
	BankDetails  BankDetails
}

// StaffPosition is the job title of a staff member.
type StaffPosition string

const (
	StaffAdmin      StaffPosition = "ADMIN"
	StaffDirector   StaffPosition = "DIRECTOR"
	StaffSecretary  StaffPosition = "SECRETARY"
	StaffInstructor StaffPosition = "INSTRUCTOR"
)

// StaffProfile holds data specific to the staff role.
type StaffProfile struct {
	FirstName   string
	LastName    string
	Position    StaffPosition
	Address     string
	BankDetails BankDetails
}

// ApplyRole switches the user to role, replacing any previous profile with role defaults.
// It is a no-op when the role does not change.
func (u *User) ApplyRole(role Role, now time.Time) {
	if u.Role == role {
		return
	}

	u.Role = role
	u.Client = nil
	u.Instructor = nil
	u.Staff = nil
	u.AccessStatus = DefaultAccessStatus(role)

	switch role {
	case RoleClient:
		u.Client = NewClientProfile(now)
	case RoleInstructor:
		u.Instructor = &InstructorProfile{WorkingSince: now}
	case RoleStaff:
		u.Staff = &StaffProfile{}
	}
}

// Matches reports whether the user's name or email contains the search term, ignoring case.
func (u *User) Matches(search string) bool {
	if search == "" {
		return true
	}

	needle := strings.ToLower(search)

	return strings.Contains(strings.ToLower(u.FullName), needle) ||
		strings.Contains(strings.ToLower(u.Email), needle)
}
