package repository

import (
	"fmt"
	"math"
	"sync"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/util"
)

// PerformanceStore 持有当前会话唯一的学生画像，所有性能数据读写都经过它。
// Gin handler 并发访问同一个 store，因此用读写锁串行化变更。
type PerformanceStore struct {
	mu      sync.RWMutex
	profile model.StudentProfile
	index   map[string]int // subject name -> position, iteration keeps snapshot order
	now     func() time.Time
}

// NewPerformanceStore validates the snapshot and takes ownership of a deep
// copy. OverallProgress is always recomputed here: it is derived state and a
// snapshot value that disagrees with the subject means is a fixture bug.
func NewPerformanceStore(profile model.StudentProfile) (*PerformanceStore, error) {
	index := make(map[string]int, len(profile.Subjects))
	for i := range profile.Subjects {
		s := &profile.Subjects[i]
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := index[s.Name]; dup {
			return nil, fmt.Errorf("duplicate subject %q in snapshot", s.Name)
		}
		index[s.Name] = i
	}

	store := &PerformanceStore{
		profile: profile.Clone(),
		index:   index,
		now:     time.Now,
	}
	store.profile.OverallProgress = AggregateProgress(store.profile.Subjects)
	return store, nil
}

// Profile returns a deep-copy snapshot of the profile.
func (ps *PerformanceStore) Profile() model.StudentProfile {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.profile.Clone()
}

// Subjects returns deep copies of all subject records in snapshot order.
func (ps *PerformanceStore) Subjects() []model.SubjectRecord {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	out := make([]model.SubjectRecord, len(ps.profile.Subjects))
	for i := range ps.profile.Subjects {
		out[i] = ps.profile.Subjects[i].Clone()
	}
	return out
}

// Subject looks up one subject by name.
func (ps *PerformanceStore) Subject(name string) (model.SubjectRecord, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	i, ok := ps.index[name]
	if !ok {
		return model.SubjectRecord{}, util.ErrSubjectNotFound
	}
	return ps.profile.Subjects[i].Clone(), nil
}

// SetProgress stores a new progress value for the subject, recomputes the
// overall progress synchronously and stamps LastActive. The range check runs
// before any lookup so an invalid call leaves the store untouched.
func (ps *PerformanceStore) SetProgress(name string, progress int) (model.StudentProfile, error) {
	if progress < 0 || progress > 100 {
		return model.StudentProfile{}, util.ErrInvalidProgress
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()

	i, ok := ps.index[name]
	if !ok {
		return model.StudentProfile{}, util.ErrSubjectNotFound
	}

	ps.profile.Subjects[i].Progress = progress
	ps.profile.OverallProgress = AggregateProgress(ps.profile.Subjects)
	ps.profile.LastActive = ps.now().Format("2006-01-02")

	return ps.profile.Clone(), nil
}

// CompleteSession marks the subject's study session as fully done.
// Equivalent to SetProgress(name, 100).
func (ps *PerformanceStore) CompleteSession(name string) (model.StudentProfile, error) {
	return ps.SetProgress(name, 100)
}

// AggregateProgress returns the unweighted mean of all subject progress
// values rounded half-up to the nearest integer. Exposed for tests; inside
// the engine it only runs under the store's write lock.
func AggregateProgress(subjects []model.SubjectRecord) int {
	if len(subjects) == 0 {
		return 0
	}
	total := 0
	for i := range subjects {
		total += subjects[i].Progress
	}
	return int(math.Round(float64(total) / float64(len(subjects))))
}
