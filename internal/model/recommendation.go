package model

import "fmt"

// ResourceKind 推荐资源类型
type ResourceKind string

const (
	ResourceDocument ResourceKind = "document"
	ResourceVideo    ResourceKind = "video"
)

// swagger:model RecommendationItem
type RecommendationItem struct {
	Kind  ResourceKind `json:"type" yaml:"kind"`
	Title string       `json:"title" yaml:"title"`
	URL   string       `json:"url" yaml:"url"`
}

// Validate 校验目录条目，加载时发现配置错误而不是使用时静默失败
func (r *RecommendationItem) Validate() error {
	if r.Kind != ResourceDocument && r.Kind != ResourceVideo {
		return fmt.Errorf("recommendation %q: unknown kind %q", r.Title, r.Kind)
	}
	if r.Title == "" {
		return fmt.Errorf("recommendation item is missing a title")
	}
	if r.URL == "" {
		return fmt.Errorf("recommendation %q: missing url", r.Title)
	}
	return nil
}

// swagger:model Reminder
type Reminder struct {
	Subject          string   `json:"subject"`
	Message          string   `json:"message"`
	Priority         Priority `json:"priority"`
	RecommendedHours float64  `json:"hours"`
}
