package service

import (
	"testing"

	"study_planner_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemindersPerSubjectInStoreOrder(t *testing.T) {
	store := storeWith(t, mathSubject(), scienceSubject(), englishSubject())

	reminders := NewReminderService().Reminders(store)
	require.Len(t, reminders, 3)

	assert.Equal(t, "Math", reminders[0].Subject)
	assert.Equal(t, "Science", reminders[1].Subject)
	assert.Equal(t, "English", reminders[2].Subject)

	// 74: keep practicing the first weakness
	assert.Equal(t, model.PriorityMedium, reminders[0].Priority)
	assert.Equal(t, "Continue practicing Calculus to master the concepts", reminders[0].Message)
	assert.Equal(t, 2.5, reminders[0].RecommendedHours)

	// 65: urgent focus on the first weakness
	assert.Equal(t, model.PriorityHigh, reminders[2].Priority)
	assert.Equal(t, "Focus on Grammar concepts today to improve your score", reminders[2].Message)
}

func TestReminderHighScoreReferencesStrength(t *testing.T) {
	strong := model.SubjectRecord{
		Name:             "Science",
		AverageScore:     92,
		Strengths:        []string{"Biology", "Physics Concepts"},
		Weaknesses:       []string{"Chemical Equations"},
		RecommendedHours: 1,
	}
	store := storeWith(t, strong)

	reminders := NewReminderService().Reminders(store)
	require.Len(t, reminders, 1)
	assert.Equal(t, model.PriorityLow, reminders[0].Priority)
	assert.Equal(t, "Review Biology to maintain your excellent progress", reminders[0].Message)
}

func TestReminderFallsBackWhenReferenceMissing(t *testing.T) {
	noWeaknesses := model.SubjectRecord{
		Name:             "Math",
		AverageScore:     60,
		Strengths:        []string{"Geometry"},
		RecommendedHours: 1,
	}
	noStrengths := model.SubjectRecord{
		Name:             "Science",
		AverageScore:     95,
		Weaknesses:       []string{"Chemical Equations"},
		RecommendedHours: 1,
	}
	store := storeWith(t, noWeaknesses, noStrengths)

	reminders := NewReminderService().Reminders(store)
	require.Len(t, reminders, 2)
	assert.Equal(t, "Set aside some study time for Math today", reminders[0].Message)
	assert.Equal(t, "Set aside some study time for Science today", reminders[1].Message)
}
