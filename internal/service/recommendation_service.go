package service

import (
	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
)

// RecommendationService 合并通用推荐与薄弱项推荐
type RecommendationService struct {
	Catalog *repository.RecommendationCatalog
}

func NewRecommendationService(catalog *repository.RecommendationCatalog) *RecommendationService {
	return &RecommendationService{Catalog: catalog}
}

// ForSubject resolves the recommendations for a subject: general items first
// in catalog order, then items for each of the subject's weaknesses in their
// declared order. A subject missing from the catalog yields an empty list,
// a weakness with no catalog entry is skipped. Never fails.
func (s *RecommendationService) ForSubject(store *repository.PerformanceStore, name string) []model.RecommendationItem {
	entry, ok := s.Catalog.Subject(name)
	if !ok {
		return []model.RecommendationItem{}
	}

	items := make([]model.RecommendationItem, 0, len(entry.General))
	items = append(items, entry.General...)

	sub, err := store.Subject(name)
	if err != nil {
		// 目录里有但快照里没有的科目：只能给通用推荐
		return items
	}

	for _, weakness := range sub.Weaknesses {
		if extra, ok := entry.Weaknesses[weakness]; ok {
			items = append(items, extra...)
		}
	}
	return items
}
