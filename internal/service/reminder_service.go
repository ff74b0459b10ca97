package service

import (
	"fmt"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/pkg/logger"
	"study_planner_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// ReminderService 为每个科目生成一条简短学习提醒
type ReminderService struct{}

func NewReminderService() *ReminderService {
	return &ReminderService{}
}

// Reminders returns one reminder per subject in store order.
func (s *ReminderService) Reminders(store *repository.PerformanceStore) []model.Reminder {
	subjects := store.Subjects()
	reminders := make([]model.Reminder, 0, len(subjects))
	for i := range subjects {
		sub := &subjects[i]
		reminders = append(reminders, model.Reminder{
			Subject:          sub.Name,
			Message:          reminderMessage(sub),
			Priority:         model.PriorityForScore(sub.AverageScore),
			RecommendedHours: sub.RecommendedHours,
		})
	}
	return reminders
}

// reminderMessage 低分提醒聚焦首个薄弱项，高分提醒巩固首个强项。
// 引用的列表为空时退回仅含科目名的通用提醒，不中断生成。
func reminderMessage(sub *model.SubjectRecord) string {
	switch {
	case sub.AverageScore < 70:
		if len(sub.Weaknesses) == 0 {
			warnEmptyReference(sub.Name, "weaknesses")
			return genericReminder(sub.Name)
		}
		return fmt.Sprintf("Focus on %s concepts today to improve your score", sub.Weaknesses[0])
	case sub.AverageScore < 85:
		if len(sub.Weaknesses) == 0 {
			warnEmptyReference(sub.Name, "weaknesses")
			return genericReminder(sub.Name)
		}
		return fmt.Sprintf("Continue practicing %s to master the concepts", sub.Weaknesses[0])
	default:
		if len(sub.Strengths) == 0 {
			warnEmptyReference(sub.Name, "strengths")
			return genericReminder(sub.Name)
		}
		return fmt.Sprintf("Review %s to maintain your excellent progress", sub.Strengths[0])
	}
}

func genericReminder(subject string) string {
	return fmt.Sprintf("Set aside some study time for %s today", subject)
}

// warnEmptyReference 软性告警：快照数据比消息模板预期的更单薄
func warnEmptyReference(subject, field string) {
	monitoring.EmptyReferenceWarnings.Inc()
	logger.Log.Warn("message generation fell back to generic text",
		zap.String("subject", subject),
		zap.String("missing", field))
}
