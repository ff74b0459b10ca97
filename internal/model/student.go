package model

import "fmt"

// swagger:model TestResult
type TestResult struct {
	ID    int     `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Score float64 `json:"score" yaml:"score"`
	Date  string  `json:"date" yaml:"date"` // YYYY-MM-DD
}

// swagger:model SubjectRecord
type SubjectRecord struct {
	Name             string       `json:"name" yaml:"name"`
	TestResults      []TestResult `json:"testResults" yaml:"testResults"`
	AverageScore     float64      `json:"averageScore" yaml:"averageScore"`
	Strengths        []string     `json:"strengths" yaml:"strengths"`
	Weaknesses       []string     `json:"weaknesses" yaml:"weaknesses"`
	RecommendedHours float64      `json:"recommendedHours" yaml:"recommendedHours"`
	Progress         int          `json:"progress" yaml:"progress"`
}

// Validate 校验快照中的单个科目记录
func (s *SubjectRecord) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("subject name must not be empty")
	}
	if s.AverageScore < 0 || s.AverageScore > 100 {
		return fmt.Errorf("subject %s: averageScore %.1f out of range [0,100]", s.Name, s.AverageScore)
	}
	if s.Progress < 0 || s.Progress > 100 {
		return fmt.Errorf("subject %s: progress %d out of range [0,100]", s.Name, s.Progress)
	}
	if s.RecommendedHours <= 0 {
		return fmt.Errorf("subject %s: recommendedHours must be positive", s.Name)
	}
	for _, r := range s.TestResults {
		if r.Score < 0 || r.Score > 100 {
			return fmt.Errorf("subject %s: test %q score %.1f out of range [0,100]", s.Name, r.Name, r.Score)
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate store state.
func (s *SubjectRecord) Clone() SubjectRecord {
	out := *s
	out.TestResults = append([]TestResult(nil), s.TestResults...)
	out.Strengths = append([]string(nil), s.Strengths...)
	out.Weaknesses = append([]string(nil), s.Weaknesses...)
	return out
}

// swagger:model StudentProfile
type StudentProfile struct {
	Name            string          `json:"name" yaml:"name"`
	LearningStyle   string          `json:"learningStyle" yaml:"learningStyle"`
	AvailableHours  float64         `json:"availableHours" yaml:"availableHours"`
	LastActive      string          `json:"lastActive" yaml:"lastActive"` // YYYY-MM-DD
	OverallProgress int             `json:"overallProgress" yaml:"overallProgress"`
	Subjects        []SubjectRecord `json:"subjects" yaml:"subjects"`
}

// Clone returns a deep copy of the profile and all subject records.
func (p *StudentProfile) Clone() StudentProfile {
	out := *p
	out.Subjects = make([]SubjectRecord, len(p.Subjects))
	for i := range p.Subjects {
		out.Subjects[i] = p.Subjects[i].Clone()
	}
	return out
}

// SubjectProgress 单科进度视图（分钟维度）
// swagger:model SubjectProgress
type SubjectProgress struct {
	Subject          string `json:"subject"`
	TotalMinutes     int    `json:"totalMinutes"`
	CompletedMinutes int    `json:"completedMinutes"`
	Progress         int    `json:"progress"`
	LastStudied      string `json:"lastStudied"`
}
