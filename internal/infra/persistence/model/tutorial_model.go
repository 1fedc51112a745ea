package model

import "time"

// TutorialDocument mirrors a document in the 'tutorials' collection.
type TutorialDocument struct {
	Title       string        `firestore:"title"`
	Description string        `firestore:"description,omitempty"`
	Category    string        `firestore:"category,omitempty"`
	Difficulty  string        `firestore:"difficulty,omitempty"`
	AuthorID    string        `firestore:"authorId"`
	AuthorName  string        `firestore:"authorName,omitempty"`
	Duration    int           `firestore:"duration"` // total seconds, denormalized for listings
	Days        []DayDocument `firestore:"days"`
	CreatedAt   time.Time     `firestore:"createdAt"`
	UpdatedAt   time.Time     `firestore:"updatedAt"`
}

// DayDocument is one day inside a tutorial.
type DayDocument struct {
	DayNumber   int                `firestore:"dayNumber"`
	Title       string             `firestore:"title,omitempty"`
	Description string             `firestore:"description,omitempty"`
	Exercises   []ExerciseDocument `firestore:"exercises"`
}

// ExerciseDocument is one exercise inside a tutorial day.
type ExerciseDocument struct {
	VideoID               string `firestore:"videoId"`
	Name                  string `firestore:"name"`
	Activity              string `firestore:"activity,omitempty"`
	Type                  string `firestore:"type,omitempty"`
	BodyPart              string `firestore:"bodyPart,omitempty"`
	Repetitions           int    `firestore:"repetitions"`
	Sets                  int    `firestore:"sets"`
	RestTimeBetweenSets   int    `firestore:"restTimeBetweenSets"`
	RestTimeAfterExercise int    `firestore:"restTimeAfterExercise"`
	ThumbnailURL          string `firestore:"thumbnailUrl,omitempty"`
}
