package model

import "time"

// PlanDocument mirrors a document in the 'subscriptionPlans' collection.
type PlanDocument struct {
	Name            string    `firestore:"name"`
	Type            string    `firestore:"type,omitempty"`
	PlanCategory    string    `firestore:"planCategory,omitempty"`
	Price           float64   `firestore:"price"`
	Currency        string    `firestore:"currency,omitempty"`
	Credits         int       `firestore:"credits"`
	IntervalCredits int       `firestore:"intervalCredits"`
	Unlimited       bool      `firestore:"unlimited"`
	Description     string    `firestore:"description,omitempty"`
	Features        []string  `firestore:"features,omitempty"`
	CreatedAt       time.Time `firestore:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt"`
}
