package service

import (
	"fmt"
	"testing"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWith(t *testing.T, subjects ...model.SubjectRecord) *repository.PerformanceStore {
	t.Helper()
	store, err := repository.NewPerformanceStore(model.StudentProfile{
		Name:     "John Doe",
		Subjects: subjects,
	})
	require.NoError(t, err)
	return store
}

func mathSubject() model.SubjectRecord {
	return model.SubjectRecord{
		Name:             "Math",
		AverageScore:     74,
		Strengths:        []string{"Geometry", "Basic Algebra"},
		Weaknesses:       []string{"Calculus", "Advanced Equations"},
		RecommendedHours: 2.5,
		Progress:         60,
	}
}

func scienceSubject() model.SubjectRecord {
	return model.SubjectRecord{
		Name:             "Science",
		AverageScore:     83,
		Strengths:        []string{"Biology"},
		Weaknesses:       []string{"Chemical Equations"},
		RecommendedHours: 1.5,
		Progress:         85,
	}
}

func englishSubject() model.SubjectRecord {
	return model.SubjectRecord{
		Name:             "English",
		AverageScore:     65,
		Strengths:        []string{"Reading Comprehension"},
		Weaknesses:       []string{"Grammar", "Essay Structure"},
		RecommendedHours: 2,
		Progress:         45,
	}
}

func newScheduleServiceAt(now time.Time) *ScheduleService {
	s := NewScheduleService()
	s.now = func() time.Time { return now }
	return s
}

func TestDailyScheduleFirstSubject(t *testing.T) {
	store := storeWith(t, mathSubject())
	s := NewScheduleService()

	entries := s.DailySchedule(store)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, 1, entry.ID)
	assert.Equal(t, "Math", entry.Subject)
	assert.Equal(t, "09:00", entry.StartTime)
	assert.Equal(t, "11:30", entry.EndTime)
	assert.Equal(t, 150, entry.DurationMinutes)
	assert.Equal(t, model.PriorityMedium, entry.Priority)
	assert.Equal(t, "Practice Problems", entry.Type)
	// 74 >= 70: generic medium-tier text, not the weakness-focused one
	assert.Equal(t, "Continue strengthening your understanding of key concepts", entry.Description)
	assert.False(t, entry.Completed)
	assert.Zero(t, entry.Progress)
}

func TestDailyScheduleSlotSpacingAndTypes(t *testing.T) {
	store := storeWith(t, mathSubject(), scienceSubject(), englishSubject())
	s := NewScheduleService()

	entries := s.DailySchedule(store)
	require.Len(t, entries, 3)

	assert.Equal(t, "09:00", entries[0].StartTime)
	assert.Equal(t, "11:00", entries[1].StartTime)
	assert.Equal(t, "13:00", entries[2].StartTime)

	assert.Equal(t, "Conceptual Review", entries[1].Type)
	assert.Equal(t, "Reading & Writing", entries[2].Type)

	// English averages 65: the description names every weakness
	assert.Equal(t, model.PriorityHigh, entries[2].Priority)
	assert.Equal(t, "Focus on improving Grammar and Essay Structure", entries[2].Description)

	// Science half-hour block ends on the half hour
	assert.Equal(t, "12:30", entries[1].EndTime)
	assert.Equal(t, 90, entries[1].DurationMinutes)
}

func TestDailyScheduleUnknownSubjectType(t *testing.T) {
	history := model.SubjectRecord{
		Name:             "History",
		AverageScore:     90,
		Strengths:        []string{"Dates"},
		Weaknesses:       []string{"Essays"},
		RecommendedHours: 1,
	}
	store := storeWith(t, history)

	entries := NewScheduleService().DailySchedule(store)
	require.Len(t, entries, 1)
	assert.Equal(t, "Study Session", entries[0].Type)
	assert.Equal(t, "Review and master advanced concepts", entries[0].Description)
	assert.Equal(t, model.PriorityLow, entries[0].Priority)
}

func TestDailyScheduleCapsAtMidnight(t *testing.T) {
	subjects := make([]model.SubjectRecord, 0, 9)
	for i := 0; i < 9; i++ {
		subjects = append(subjects, model.SubjectRecord{
			Name:             fmt.Sprintf("Subject%d", i),
			AverageScore:     80,
			Weaknesses:       []string{"Basics"},
			RecommendedHours: 1,
		})
	}
	store := storeWith(t, subjects...)

	entries := NewScheduleService().DailySchedule(store)
	// slots 9,11,...,23 fit; the ninth subject would start at 25:00
	require.Len(t, entries, 8)
	assert.Equal(t, "23:00", entries[7].StartTime)
}

func TestDailyScheduleEmptyStore(t *testing.T) {
	store := storeWith(t)
	assert.Empty(t, NewScheduleService().DailySchedule(store))
}

func TestWeeklyScheduleFromWednesday(t *testing.T) {
	store := storeWith(t, mathSubject(), scienceSubject(), englishSubject())
	// 2025-06-11 is a Wednesday
	s := newScheduleServiceAt(time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC))

	week := s.WeeklySchedule(store)
	require.Len(t, week, 7)

	assert.Equal(t, "Wednesday", week[0].Day)
	assert.Equal(t, "Saturday", week[3].Day)
	assert.Equal(t, "Sunday", week[4].Day)
	assert.Equal(t, "Tuesday", week[6].Day)

	// weekdays carry all subjects at full duration
	require.Len(t, week[0].Subjects, 3)
	assert.Equal(t, 150.0, week[0].Subjects[0].DurationMinutes)
	assert.InDelta(t, 6.0, week[0].TotalHours, 1e-9) // 2.5 + 1.5 + 2

	// weekends carry only the first subject at half duration
	for _, weekend := range []model.ScheduleDay{week[3], week[4]} {
		require.Len(t, weekend.Subjects, 1)
		assert.Equal(t, "Math", weekend.Subjects[0].Name)
		assert.Equal(t, 75.0, weekend.Subjects[0].DurationMinutes)
		assert.InDelta(t, 1.25, weekend.TotalHours, 1e-9)
		assert.False(t, weekend.IsRestDay)
	}

	for _, day := range week {
		assert.False(t, day.Completed)
	}
}

func TestWeeklyScheduleEmptyStoreMarksWeekendRest(t *testing.T) {
	store := storeWith(t)
	s := newScheduleServiceAt(time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC))

	week := s.WeeklySchedule(store)
	require.Len(t, week, 7)

	for i, day := range week {
		assert.Empty(t, day.Subjects)
		assert.Zero(t, day.TotalHours)
		isWeekend := day.Day == "Saturday" || day.Day == "Sunday"
		assert.Equal(t, isWeekend, day.IsRestDay, "day %d (%s)", i, day.Day)
	}
}

func TestEndTimeFor(t *testing.T) {
	assert.Equal(t, "11:30", endTimeFor(9, 2.5))
	assert.Equal(t, "11:00", endTimeFor(9, 2))
	assert.Equal(t, "10:45", endTimeFor(9, 1.75))
	assert.Equal(t, "13:00", endTimeFor(11, 1.999999))
}
