package entity

import "time"

// secondsPerRepetition is the assumed duration of one repetition.
const secondsPerRepetition = 3

// Exercise is a single movement inside a tutorial day.
type Exercise struct {
	VideoID               string
	Name                  string
	Activity              string
	Type                  string
	BodyPart              string
	Repetitions           int
	Sets                  int
	RestTimeBetweenSets   int // seconds
	RestTimeAfterExercise int // seconds
	ThumbnailURL          string
}

// Duration returns the estimated seconds the exercise takes.
func (e Exercise) Duration() int {
	return e.Sets*(e.Repetitions*secondsPerRepetition+e.RestTimeBetweenSets) + e.RestTimeAfterExercise
}

// TutorialDay is one day of a tutorial programme.
type TutorialDay struct {
	DayNumber   int
	Title       string
	Description string
	Exercises   []Exercise
}

// Tutorial is a multi-day training programme owned by its author.
type Tutorial struct {
	ID          string
	Title       string
	Description string
	Category    string
	Difficulty  string
	AuthorID    string
	AuthorName  string
	Days        []TutorialDay
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalDuration returns the estimated seconds of all exercises across all days.
func (t *Tutorial) TotalDuration() int {
	total := 0
	for _, day := range t.Days {
		for _, exercise := range day.Exercises {
			total += exercise.Duration()
		}
	}

	return total
}
