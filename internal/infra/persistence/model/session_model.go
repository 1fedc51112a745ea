package model

import "time"

// SessionDocument mirrors a document in the 'sessions' collection.
// InstructorID is a pointer so a removed instructor is stored as null.
type SessionDocument struct {
	ActivityID      string    `firestore:"activityId"`
	InstructorID    *string   `firestore:"instructorId"`
	Date            time.Time `firestore:"date"`
	StartTime       time.Time `firestore:"startTime"`
	EndTime         time.Time `firestore:"endTime"`
	Location        string    `firestore:"location,omitempty"`
	MaxCapacity     int       `firestore:"maxCapacity"`
	CurrentBookings int       `firestore:"currentBookings"`
	Status          string    `firestore:"status"`
	Recurrence      string    `firestore:"recurrence,omitempty"`
	Notes           string    `firestore:"notes,omitempty"`
	Description     string    `firestore:"description,omitempty"`
	CreatedAt       time.Time `firestore:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt"`
}

// BookingDocument mirrors a document in the 'bookings' collection.
type BookingDocument struct {
	UserID      string    `firestore:"userId"`
	SessionID   string    `firestore:"sessionId"`
	Status      string    `firestore:"status"`
	CreditsUsed int       `firestore:"creditsUsed"`
	BookedAt    time.Time `firestore:"bookedAt"`
}
