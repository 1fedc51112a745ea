package model

import "time"

// AccessLogDocument mirrors a document in the 'access_logs' collection.
type AccessLogDocument struct {
	UserID         string    `firestore:"userId"`
	Role           string    `firestore:"role"`
	PreviousStatus string    `firestore:"previousStatus"`
	NewStatus      string    `firestore:"newStatus"`
	Reason         string    `firestore:"reason"`
	ChangedBy      string    `firestore:"changedBy"`
	ChangedAt      time.Time `firestore:"changedAt"`
}

// CreditAdjustmentDocument mirrors a document in the 'creditAdjustments' collection.
type CreditAdjustmentDocument struct {
	ClientID                string    `firestore:"clientId"`
	PreviousCredits         int       `firestore:"previousCredits"`
	NewCredits              int       `firestore:"newCredits"`
	Adjustment              int       `firestore:"adjustment"`
	PreviousGymCredits      int       `firestore:"previousGymCredits"`
	PreviousIntervalCredits int       `firestore:"previousIntervalCredits"`
	NewGymCredits           int       `firestore:"newGymCredits"`
	NewIntervalCredits      int       `firestore:"newIntervalCredits"`
	Reason                  string    `firestore:"reason,omitempty"`
	AdjustedBy              string    `firestore:"adjustedBy"`
	AdjustedAt              time.Time `firestore:"adjustedAt"`
}

// AccessLogModel is the GORM-specific struct for the 'access_logs' table.
type AccessLogModel struct {
	ID             string    `gorm:"type:varchar(64);primaryKey"`
	UserID         string    `gorm:"type:varchar(128);not null;index"`
	Role           string    `gorm:"type:varchar(32);not null"`
	PreviousStatus string    `gorm:"type:varchar(32)"`
	NewStatus      string    `gorm:"type:varchar(32);not null"`
	Reason         string    `gorm:"type:text"`
	ChangedBy      string    `gorm:"type:varchar(128);not null"`
	ChangedAt      time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (AccessLogModel) TableName() string {
	return "access_logs"
}

// CreditAdjustmentModel is the GORM-specific struct for the 'credit_adjustments' table.
type CreditAdjustmentModel struct {
	ID                      string    `gorm:"type:varchar(64);primaryKey"`
	ClientID                string    `gorm:"type:varchar(128);not null;index"`
	PreviousCredits         int       `gorm:"not null"`
	NewCredits              int       `gorm:"not null"`
	Adjustment              int       `gorm:"not null"`
	PreviousGymCredits      int       `gorm:"not null"`
	PreviousIntervalCredits int       `gorm:"not null"`
	NewGymCredits           int       `gorm:"not null"`
	NewIntervalCredits      int       `gorm:"not null"`
	Reason                  string    `gorm:"type:text"`
	AdjustedBy              string    `gorm:"type:varchar(128);not null"`
	AdjustedAt              time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (CreditAdjustmentModel) TableName() string {
	return "credit_adjustments"
}
