package repository

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"study_planner_backend/internal/model"
)

// LoadSnapshot 读取学生画像快照（引擎唯一的外部数据来源）。
// 字段级校验在 NewPerformanceStore 中完成，这里只负责解析。
func LoadSnapshot(path string) (model.StudentProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.StudentProfile{}, fmt.Errorf("read student snapshot: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var profile model.StudentProfile
	if err := dec.Decode(&profile); err != nil {
		return model.StudentProfile{}, fmt.Errorf("parse student snapshot %s: %w", path, err)
	}
	return profile, nil
}
