package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/pkg/logger"
	"study_planner_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const (
	dailyStartHour = 9
	dailySlotGap   = 2 // 相邻科目起始时间间隔（小时）
)

// studyTypes 已知科目的固定学习方式标签
var studyTypes = map[string]string{
	"Math":    "Practice Problems",
	"Science": "Conceptual Review",
	"English": "Reading & Writing",
}

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ScheduleService 根据学生表现生成每日/每周学习计划。
// store 按会话传入，服务本身无状态。
type ScheduleService struct {
	now func() time.Time
}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{now: time.Now}
}

// DailySchedule builds today's plan: one two-hour-spaced block per subject
// starting 09:00, sized by the subject's recommended hours. Subjects whose
// slot would start past midnight are left unscheduled with a warning; the
// daily view holds at most eight blocks (09:00 through 23:00).
func (s *ScheduleService) DailySchedule(store *repository.PerformanceStore) []model.ScheduleEntry {
	monitoring.ScheduleBuilds.WithLabelValues("daily").Inc()

	subjects := store.Subjects()
	entries := make([]model.ScheduleEntry, 0, len(subjects))
	for i := range subjects {
		sub := &subjects[i]
		startHour := dailyStartHour + dailySlotGap*i
		if startHour >= 24 {
			logger.Log.Warn("daily schedule is full, subject left unscheduled",
				zap.String("subject", sub.Name),
				zap.Int("slot", i))
			continue
		}

		entries = append(entries, model.ScheduleEntry{
			ID:              i + 1,
			Subject:         sub.Name,
			StartTime:       fmt.Sprintf("%02d:00", startHour),
			EndTime:         endTimeFor(startHour, sub.RecommendedHours),
			DurationMinutes: int(math.Round(sub.RecommendedHours * 60)),
			Completed:       false,
			Priority:        model.PriorityForScore(sub.AverageScore),
			Progress:        0,
			Type:            studyTypeFor(sub.Name),
			Description:     studyDescription(sub),
		})
	}
	return entries
}

// WeeklySchedule builds the 7-day view starting from today. Weekend days
// keep only the first subject at half the weekday duration; a weekend day
// with nothing to schedule is a rest day.
func (s *ScheduleService) WeeklySchedule(store *repository.PerformanceStore) []model.ScheduleDay {
	monitoring.ScheduleBuilds.WithLabelValues("weekly").Inc()

	subjects := store.Subjects()
	today := int(s.now().Weekday())

	days := make([]model.ScheduleDay, 0, 7)
	for offset := 0; offset < 7; offset++ {
		dayIndex := (today + offset) % 7
		kind := model.DayKindFor(time.Weekday(dayIndex))

		daySubjects := subjects
		scale := 1.0
		if kind == model.Weekend {
			if len(subjects) > 1 {
				daySubjects = subjects[:1]
			}
			scale = 0.5
		}

		blocks := make([]model.DayBlock, 0, len(daySubjects))
		totalHours := 0.0
		for i := range daySubjects {
			duration := daySubjects[i].RecommendedHours * 60 * scale
			blocks = append(blocks, model.DayBlock{
				Name:            daySubjects[i].Name,
				DurationMinutes: duration,
				Priority:        model.PriorityForScore(daySubjects[i].AverageScore),
			})
			totalHours += duration / 60
		}

		days = append(days, model.ScheduleDay{
			Day:        dayNames[dayIndex],
			Subjects:   blocks,
			TotalHours: totalHours,
			// 没有历史数据来源，本周视图对所有天统一标记未完成
			Completed: false,
			IsRestDay: kind == model.Weekend && len(blocks) == 0,
		})
	}
	return days
}

// endTimeFor 起始整点 + 推荐小时数，格式化为 HH:MM
func endTimeFor(startHour int, hours float64) string {
	endHour := startHour + int(math.Floor(hours))
	endMinute := int(math.Round((hours - math.Floor(hours)) * 60))
	if endMinute == 60 {
		endHour++
		endMinute = 0
	}
	return fmt.Sprintf("%02d:%02d", endHour, endMinute)
}

func studyTypeFor(subject string) string {
	if t, ok := studyTypes[subject]; ok {
		return t
	}
	return "Study Session"
}

// studyDescription 分数低于70聚焦薄弱项，低于85巩固，其余复习进阶
func studyDescription(sub *model.SubjectRecord) string {
	switch {
	case sub.AverageScore < 70:
		if len(sub.Weaknesses) == 0 {
			warnEmptyReference(sub.Name, "weaknesses")
			return "Focus on core fundamentals to improve your score"
		}
		return "Focus on improving " + strings.Join(sub.Weaknesses, " and ")
	case sub.AverageScore < 85:
		return "Continue strengthening your understanding of key concepts"
	default:
		return "Review and master advanced concepts"
	}
}
