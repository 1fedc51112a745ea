package entity

import "time"

// SessionStatus is the lifecycle state of a scheduled class.
type SessionStatus string

const (
	SessionScheduled  SessionStatus = "scheduled"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionCancelled  SessionStatus = "cancelled"
)

// Session is a scheduled occurrence of an activity.
type Session struct {
	ID              string
	ActivityID      string
	InstructorID    string // Empty once the instructor is removed.
	Date            time.Time
	StartTime       time.Time
	EndTime         time.Time
	Location        string
	MaxCapacity     int
	CurrentBookings int
	Status          SessionStatus
	Recurrence      string
	Notes           string
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsDeletable reports whether the session status allows deletion.
func (s *Session) IsDeletable() bool {
	return s.Status != SessionInProgress && s.Status != SessionCompleted
}

// BookingStatus is the state of a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Booking reserves a place in a session for a client.
type Booking struct {
	ID          string
	UserID      string
	SessionID   string
	Status      BookingStatus
	CreditsUsed int
	BookedAt    time.Time
}

// Activity is a kind of class that sessions are scheduled from.
type Activity struct {
	ID          string
	Name        string
	Description string
	Type        string
	Duration    int // minutes
	Capacity    int
	Difficulty  string
	CreditValue int
	CreatedBy   string // Empty once the creator is removed.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
