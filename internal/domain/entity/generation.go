package entity

import "time"

// GenerationRequest AI 일정 생성 입력
type GenerationRequest struct {
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Priority    string
	ProjectID   string
	AssigneeID  string
}

// GeneratedTask 모델 응답에서 추출한 태스크 한 건
type GeneratedTask struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	TagName     string `json:"tag_name"`
	TagColor    string `json:"tag_color"`
}
