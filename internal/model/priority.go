package model

// Priority 学习优先级，仅由科目平均分决定
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityForScore maps an average score to a priority tier.
// Below 70 the subject needs attention, below 85 it needs practice,
// 85 and above it only needs maintenance.
func PriorityForScore(score float64) Priority {
	if score < 70 {
		return PriorityHigh
	}
	if score < 85 {
		return PriorityMedium
	}
	return PriorityLow
}
