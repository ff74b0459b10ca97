package repository

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"study_planner_backend/internal/model"
)

// SubjectRecommendations 某一科目的推荐资源：general 永远返回，
// weaknesses 按科目声明的薄弱项顺序追加。
type SubjectRecommendations struct {
	General    []model.RecommendationItem            `yaml:"general"`
	Weaknesses map[string][]model.RecommendationItem `yaml:"weaknesses"`
}

// RecommendationCatalog 静态推荐目录，按科目名索引。
// 支持热更新：Reload 原子替换整个目录。
type RecommendationCatalog struct {
	mu       sync.RWMutex
	subjects map[string]SubjectRecommendations
}

type catalogFile struct {
	Subjects map[string]SubjectRecommendations `yaml:"subjects"`
}

// LoadRecommendationCatalog parses and validates the catalog file. A
// malformed item (unknown kind, missing title or url) is a configuration
// error and fails the load instead of silently dropping the entry.
func LoadRecommendationCatalog(path string) (*RecommendationCatalog, error) {
	subjects, err := parseCatalog(path)
	if err != nil {
		return nil, err
	}
	return &RecommendationCatalog{subjects: subjects}, nil
}

// Reload replaces the catalog contents from the same or a new file.
// On parse or validation failure the previous catalog stays in place.
func (c *RecommendationCatalog) Reload(path string) error {
	subjects, err := parseCatalog(path)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.subjects = subjects
	c.mu.Unlock()
	return nil
}

// Subject returns the recommendation set for a subject name.
func (c *RecommendationCatalog) Subject(name string) (SubjectRecommendations, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.subjects[name]
	return entry, ok
}

func parseCatalog(path string) (map[string]SubjectRecommendations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recommendation catalog: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse recommendation catalog %s: %w", path, err)
	}

	for subject, entry := range file.Subjects {
		for i := range entry.General {
			if err := entry.General[i].Validate(); err != nil {
				return nil, fmt.Errorf("catalog subject %s: %w", subject, err)
			}
		}
		for weakness, items := range entry.Weaknesses {
			for i := range items {
				if err := items[i].Validate(); err != nil {
					return nil, fmt.Errorf("catalog subject %s, weakness %s: %w", subject, weakness, err)
				}
			}
		}
	}

	if file.Subjects == nil {
		file.Subjects = map[string]SubjectRecommendations{}
	}
	return file.Subjects, nil
}
