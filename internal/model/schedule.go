package model

import "time"

// DayKind 区分工作日与周末，周末只安排轻量学习
type DayKind string

const (
	Weekday DayKind = "weekday"
	Weekend DayKind = "weekend"
)

// DayKindFor classifies a calendar weekday. Saturday and Sunday are weekend.
func DayKindFor(d time.Weekday) DayKind {
	if d == time.Saturday || d == time.Sunday {
		return Weekend
	}
	return Weekday
}

// swagger:model ScheduleEntry
type ScheduleEntry struct {
	ID              int      `json:"id"`
	Subject         string   `json:"subject"`
	StartTime       string   `json:"startTime"` // HH:MM
	EndTime         string   `json:"endTime"`   // HH:MM
	DurationMinutes int      `json:"duration"`
	Completed       bool     `json:"completed"`
	Priority        Priority `json:"priority"`
	Progress        int      `json:"progress"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
}

// DayBlock 周计划中某天的单科时段
type DayBlock struct {
	Name            string   `json:"name"`
	DurationMinutes float64  `json:"duration"`
	Priority        Priority `json:"priority"`
}

// swagger:model ScheduleDay
type ScheduleDay struct {
	Day        string     `json:"day"`
	Subjects   []DayBlock `json:"subjects"`
	TotalHours float64    `json:"totalHours"`
	Completed  bool       `json:"completed"`
	IsRestDay  bool       `json:"rest"`
}
