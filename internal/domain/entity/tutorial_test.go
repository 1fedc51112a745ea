package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTutorial_TotalDuration(t *testing.T) {
	tutorial := &Tutorial{
		Days: []TutorialDay{
			{
				DayNumber: 1,
				Exercises: []Exercise{
					// 3 * (10*3 + 30) + 60 = 240
					{Sets: 3, Repetitions: 10, RestTimeBetweenSets: 30, RestTimeAfterExercise: 60},
					// 2 * (5*3 + 0) + 0 = 30
					{Sets: 2, Repetitions: 5},
				},
			},
			{
				DayNumber: 2,
				Exercises: []Exercise{
					// 0 sets still counts the rest after
					{Sets: 0, Repetitions: 12, RestTimeBetweenSets: 15, RestTimeAfterExercise: 45},
				},
			},
		},
	}

	assert.Equal(t, 315, tutorial.TotalDuration())
	assert.Equal(t, 0, (&Tutorial{}).TotalDuration())
}
