package entity

import "time"

// EventType 도메인 이벤트 종류
type EventType string

const (
	EventUserSignedUp   EventType = "user.signed_up"
	EventProjectCreated EventType = "project.created"
	EventProjectUpdated EventType = "project.updated"
	EventProjectDeleted EventType = "project.deleted"
	EventTaskCreated    EventType = "task.created"
	EventTaskUpdated    EventType = "task.updated"
	EventTaskDeleted    EventType = "task.deleted"
)

// Event 상태 변경 알림. 발행은 best-effort.
type Event struct {
	Type       EventType `json:"type"`
	UserID     string    `json:"user_id"`
	ProjectID  string    `json:"project_id,omitempty"`
	TaskID     string    `json:"task_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent 현재 시각으로 이벤트 생성
func NewEvent(t EventType, userID, projectID, taskID string) Event {
	return Event{Type: t, UserID: userID, ProjectID: projectID, TaskID: taskID, OccurredAt: time.Now().UTC()}
}
