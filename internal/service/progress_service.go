package service

import (
	"math"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
)

// ProgressService 进度读写入口：变更统一走 store，聚合在 store 内同步完成
type ProgressService struct{}

func NewProgressService() *ProgressService {
	return &ProgressService{}
}

func (s *ProgressService) Profile(store *repository.PerformanceStore) model.StudentProfile {
	return store.Profile()
}

// SubjectProgress 按分钟维度展开每科进度
func (s *ProgressService) SubjectProgress(store *repository.PerformanceStore) []model.SubjectProgress {
	profile := store.Profile()
	out := make([]model.SubjectProgress, 0, len(profile.Subjects))
	for i := range profile.Subjects {
		sub := &profile.Subjects[i]
		total := int(math.Round(sub.RecommendedHours * 60))
		out = append(out, model.SubjectProgress{
			Subject:          sub.Name,
			TotalMinutes:     total,
			CompletedMinutes: int(math.Round(float64(total) * float64(sub.Progress) / 100)),
			Progress:         sub.Progress,
			LastStudied:      profile.LastActive,
		})
	}
	return out
}

func (s *ProgressService) SetProgress(store *repository.PerformanceStore, name string, progress int) (model.StudentProfile, error) {
	return store.SetProgress(name, progress)
}

func (s *ProgressService) CompleteSession(store *repository.PerformanceStore, name string) (model.StudentProfile, error) {
	return store.CompleteSession(name)
}
